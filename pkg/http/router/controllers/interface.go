package controllers

import (
	"context"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/http/usecases"
)

type RoutingService interface {
	GetAirport(code string) (datastructure.Vertex, error)
	ShortestPath(ctx context.Context, origin, destination string) (usecases.Route, error)
	FarthestAirports(ctx context.Context, code string, k int) ([]usecases.FarthestAirport, error)
	GraphAnalysis(ctx context.Context) (usecases.GraphAnalysis, error)
	NearbyAirports(lat, lon, radius float64) []usecases.NearbyAirport
	ReloadGraph(ctx context.Context) (usecases.ReloadResult, error)
}
