package usecases

import (
	"time"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/geo"
)

type Route struct {
	Stops    []datastructure.Vertex
	Distance float64
	Polyline string
	Bounds   geo.BoundingBox
}

type FarthestAirport struct {
	Airport  datastructure.Vertex
	Distance float64
}

type NearbyAirport struct {
	Airport  datastructure.Vertex
	Distance float64
}

type ComponentMST struct {
	Component int
	Vertices  int
	Weight    float64
}

type GraphAnalysis struct {
	IsConnected     bool
	TotalComponents int
	TotalAirports   int
	TotalRoutes     int
	MST             []ComponentMST
	TotalMSTWeight  float64
}

type ReloadResult struct {
	Airports int
	Routes   int
	LoadedAt time.Time
}
