package flightparser

import (
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/geo"
)

// BuildGraph adds every airport first, then one edge per route weighted by the great-circle distance
// between the two airports. the first record that mentions an airport code defines its metadata.
func BuildGraph(records []RouteRecord) *datastructure.Graph {
	graph := datastructure.NewGraphWithSize(len(records) / 4)

	for _, r := range records {
		addAirport(graph, r.Source)
		addAirport(graph, r.Destination)
	}

	for _, r := range records {
		dist := geo.CalculateHaversineDistance(r.Source.Lat, r.Source.Lon, r.Destination.Lat, r.Destination.Lon)
		// haversine distance is never negative
		_ = graph.AddEdge(r.Source.Code, r.Destination.Code, dist)
	}

	return graph
}

func addAirport(graph *datastructure.Graph, a AirportRecord) {
	graph.AddVertex(a.Code, a.Name, a.City, a.Country, a.Lat, a.Lon)
}
