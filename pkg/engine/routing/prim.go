package routing

import (
	"context"

	"github.com/lintang-b-s/Flightx/pkg"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
)

type SpanningTreeBuilder struct {
	graph *da.Graph
}

func NewSpanningTreeBuilder(graph *da.Graph) *SpanningTreeBuilder {
	return &SpanningTreeBuilder{graph: graph}
}

type frontierEdge struct {
	source string
	dest   string
}

func frontierTieBreak(a, b frontierEdge) bool {
	if a.source != b.source {
		return a.source < b.source
	}
	return a.dest < b.dest
}

// PrimMST builds a minimum spanning tree over the subgraph induced by subset (nil means every vertex).
// the tree grows from the lexicographically smallest code of subset. if the induced subgraph is
// disconnected, only the part reachable from that start vertex is spanned.
// O(E log E).
func (st *SpanningTreeBuilder) PrimMST(subset VertexSet) (float64, []MSTEdge) {
	totalWeight, edges, _ := st.PrimMSTContext(context.Background(), subset)
	return totalWeight, edges
}

func (st *SpanningTreeBuilder) PrimMSTContext(ctx context.Context, subset VertexSet) (float64, []MSTEdge, error) {
	if subset == nil {
		subset = NewVertexSet(st.graph.GetAllVertexCodes()...)
	}
	if subset.Size() == 0 {
		return 0, []MSTEdge{}, nil
	}

	start := smallestCode(subset)

	inTree := NewVertexSet(start)
	mstEdges := make([]MSTEdge, 0, subset.Size()-1)
	totalWeight := 0.0

	pq := da.NewdAryHeapWithTieBreak[frontierEdge](4, frontierTieBreak)
	st.pushFrontier(pq, start, subset, inTree)

	pops := 0
	for !pq.IsEmpty() && inTree.Size() < subset.Size() {
		if pops%pkg.CONTEXT_CHECK_INTERVAL == 0 {
			if err := ctx.Err(); err != nil {
				return 0, nil, err
			}
		}
		pops++

		node, _ := pq.ExtractMin()
		edge := node.GetItem()
		if inTree.Contains(edge.dest) || !subset.Contains(edge.dest) {
			continue
		}

		inTree.Add(edge.dest)
		mstEdges = append(mstEdges, NewMSTEdge(edge.source, edge.dest, node.GetRank()))
		totalWeight += node.GetRank()

		st.pushFrontier(pq, edge.dest, subset, inTree)
	}

	return totalWeight, mstEdges, nil
}

// pushFrontier push every edge from u to a subset member not yet in the tree.
func (st *SpanningTreeBuilder) pushFrontier(pq *da.MinHeap[frontierEdge], u string, subset, inTree VertexSet) {
	st.graph.ForNeighborsOf(u, func(v string, weight float64) {
		if inTree.Contains(v) || !subset.Contains(v) {
			return
		}
		pq.Insert(da.NewPriorityQueueNode(weight, frontierEdge{source: u, dest: v}))
	})
}

func smallestCode(set VertexSet) string {
	smallest, first := "", true
	for code := range set {
		if first || code < smallest {
			smallest, first = code, false
		}
	}
	return smallest
}
