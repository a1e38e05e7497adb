package routing

import (
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
)

// RoutingEngine bundles one graph with its analyzers. every analyzer holds the same graph reference
// and recomputes its result on every call.
type RoutingEngine struct {
	graph        *da.Graph
	connectivity *ConnectivityAnalyzer
	spanningTree *SpanningTreeBuilder
	shortestPath *ShortestPathEngine
}

func NewRoutingEngine(graph *da.Graph) *RoutingEngine {
	return &RoutingEngine{
		graph:        graph,
		connectivity: NewConnectivityAnalyzer(graph),
		spanningTree: NewSpanningTreeBuilder(graph),
		shortestPath: NewShortestPathEngine(graph),
	}
}

func (re *RoutingEngine) GetGraph() *da.Graph {
	return re.graph
}

func (re *RoutingEngine) GetConnectivityAnalyzer() *ConnectivityAnalyzer {
	return re.connectivity
}

func (re *RoutingEngine) GetSpanningTreeBuilder() *SpanningTreeBuilder {
	return re.spanningTree
}

func (re *RoutingEngine) GetShortestPathEngine() *ShortestPathEngine {
	return re.shortestPath
}
