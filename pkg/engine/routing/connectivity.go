package routing

import (
	"context"

	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
)

type ConnectivityAnalyzer struct {
	graph *da.Graph
}

func NewConnectivityAnalyzer(graph *da.Graph) *ConnectivityAnalyzer {
	return &ConnectivityAnalyzer{graph: graph}
}

// BFS returns every vertex reachable from start, start included.
// only the adjacency is consulted, so a start that is not a vertex of the graph yields {start}.
func (ca *ConnectivityAnalyzer) BFS(start string) VertexSet {
	visited := NewVertexSet(start)
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		ca.graph.ForNeighborsOf(current, func(neighbor string, _ float64) {
			if visited.Contains(neighbor) {
				return
			}
			visited.Add(neighbor)
			queue = append(queue, neighbor)
		})
	}

	return visited
}

// IsConnected partitions the vertices into maximal connected components.
// components are discovered in vertex insertion order. an empty graph is connected and has no components.
func (ca *ConnectivityAnalyzer) IsConnected() (bool, []VertexSet) {
	connected, components, _ := ca.IsConnectedContext(context.Background())
	return connected, components
}

func (ca *ConnectivityAnalyzer) IsConnectedContext(ctx context.Context) (bool, []VertexSet, error) {
	components := make([]VertexSet, 0)
	assigned := make(VertexSet, ca.graph.NumberOfVertices())

	for _, v := range ca.graph.GetAllVertexCodes() {
		if assigned.Contains(v) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return false, nil, err
		}

		component := ca.BFS(v)
		for code := range component {
			assigned.Add(code)
		}
		components = append(components, component)
	}

	if len(components) == 0 {
		return true, components, nil
	}
	return len(components) == 1, components, nil
}
