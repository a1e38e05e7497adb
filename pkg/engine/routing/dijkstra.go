package routing

import (
	"context"
	"sort"

	"github.com/lintang-b-s/Flightx/pkg"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/util"
)

type ShortestPathEngine struct {
	graph *da.Graph
}

func NewShortestPathEngine(graph *da.Graph) *ShortestPathEngine {
	return &ShortestPathEngine{graph: graph}
}

func codeTieBreak(a, b string) bool {
	return a < b
}

// Dijkstra single-source shortest paths from start to every vertex.
// unreachable vertices keep distance pkg.INF_WEIGHT, and a predecessor of "" means none.
// stale heap entries are skipped on extraction instead of being decreased in place. O((V+E) log V).
func (sp *ShortestPathEngine) Dijkstra(start string) (map[string]float64, map[string]string) {
	distances, predecessors, _ := sp.DijkstraContext(context.Background(), start)
	return distances, predecessors
}

func (sp *ShortestPathEngine) DijkstraContext(ctx context.Context, start string) (map[string]float64,
	map[string]string, error) {
	n := sp.graph.NumberOfVertices()
	distances := make(map[string]float64, n+1)
	predecessors := make(map[string]string, n+1)
	for _, v := range sp.graph.GetAllVertexCodes() {
		distances[v] = pkg.INF_WEIGHT
		predecessors[v] = ""
	}
	distances[start] = 0

	pq := da.NewdAryHeapWithTieBreak[string](4, codeTieBreak)
	pq.Insert(da.NewPriorityQueueNode(0, start))

	pops := 0
	for !pq.IsEmpty() {
		if pops%pkg.CONTEXT_CHECK_INTERVAL == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		pops++

		node, _ := pq.ExtractMin()
		u := node.GetItem()
		uDist := node.GetRank()
		if uDist > distances[u] {
			// stale entry
			continue
		}

		sp.graph.ForNeighborsOf(u, func(v string, weight float64) {
			newDist := uDist + weight
			if newDist < distances[v] {
				distances[v] = newDist
				predecessors[v] = u
				pq.Insert(da.NewPriorityQueueNode(newDist, v))
			}
		})
	}

	return distances, predecessors, nil
}

// GetShortestPath returns the start-to-end sequence of airport codes and its length in km.
// (nil, pkg.INF_WEIGHT) means no route exists.
func (sp *ShortestPathEngine) GetShortestPath(start, end string) ([]string, float64) {
	path, dist, _ := sp.GetShortestPathContext(context.Background(), start, end)
	return path, dist
}

func (sp *ShortestPathEngine) GetShortestPathContext(ctx context.Context, start, end string) ([]string, float64, error) {
	distances, predecessors, err := sp.DijkstraContext(ctx, start)
	if err != nil {
		return nil, pkg.INF_WEIGHT, err
	}

	dist, ok := distances[end]
	if !ok || dist == pkg.INF_WEIGHT {
		return nil, pkg.INF_WEIGHT, nil
	}

	path := make([]string, 0)
	for current := end; ; current = predecessors[current] {
		path = append(path, current)
		if current == start {
			break
		}
	}

	return util.ReverseG(path), dist, nil
}

// GetFarthestAirports returns at most k reachable airports ranked by shortest path distance from start,
// farthest first. ties are ordered by code ascending. start itself is excluded.
func (sp *ShortestPathEngine) GetFarthestAirports(start string, k int) []RankedAirport {
	ranked, _ := sp.GetFarthestAirportsContext(context.Background(), start, k)
	return ranked
}

func (sp *ShortestPathEngine) GetFarthestAirportsContext(ctx context.Context, start string, k int) ([]RankedAirport, error) {
	if k <= 0 {
		return []RankedAirport{}, nil
	}

	distances, _, err := sp.DijkstraContext(ctx, start)
	if err != nil {
		return nil, err
	}

	reachable := make([]RankedAirport, 0, len(distances))
	for code, dist := range distances {
		if code == start || dist == pkg.INF_WEIGHT {
			continue
		}
		reachable = append(reachable, NewRankedAirport(code, dist))
	}

	sort.Slice(reachable, func(i, j int) bool {
		if reachable[i].distance != reachable[j].distance {
			return reachable[i].distance > reachable[j].distance
		}
		return reachable[i].code < reachable[j].code
	})

	if len(reachable) > k {
		reachable = reachable[:k]
	}
	return reachable, nil
}
