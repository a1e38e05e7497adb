package controllers

import (
	"time"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/lintang-b-s/Flightx/pkg/http/usecases"
)

type airportRequest struct {
	Code string `json:"code" validate:"required,alphanum,min=3,max=4"`
}

type farthestRequest struct {
	Code string `json:"code" validate:"required,alphanum,min=3,max=4"`
	K    int    `json:"k" validate:"min=1,max=100"`
}

type shortestPathRequest struct {
	Origin      string `json:"origin" validate:"required,alphanum,min=3,max=4"`
	Destination string `json:"destination" validate:"required,alphanum,min=3,max=4"`
}

type nearbyRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
	Radius float64 `json:"radius" validate:"gt=0,max=20016"`
}

type airportResponse struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func NewAirportResponse(v datastructure.Vertex) airportResponse {
	return airportResponse{
		Code:    v.GetCode(),
		Name:    v.GetName(),
		City:    v.GetCity(),
		Country: v.GetCountry(),
		Lat:     v.GetLat(),
		Lon:     v.GetLon(),
	}
}

type shortestPathResponse struct {
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Stops       []airportResponse `json:"stops"`
	Distance    float64           `json:"distance"`
	Path        string            `json:"path"`
	Bounds      geo.BoundingBox   `json:"bounds"`
}

func NewShortestPathResponse(route usecases.Route) shortestPathResponse {
	stops := make([]airportResponse, 0, len(route.Stops))
	for _, s := range route.Stops {
		stops = append(stops, NewAirportResponse(s))
	}

	resp := shortestPathResponse{
		Stops:    stops,
		Distance: route.Distance,
		Path:     route.Polyline,
		Bounds:   route.Bounds,
	}
	if len(stops) > 0 {
		resp.Origin = stops[0].Code
		resp.Destination = stops[len(stops)-1].Code
	}
	return resp
}

type rankedAirportResponse struct {
	airportResponse
	Distance float64 `json:"distance"`
}

type farthestResponse struct {
	Start    string                  `json:"start"`
	Airports []rankedAirportResponse `json:"airports"`
}

func NewFarthestResponse(start string, farthest []usecases.FarthestAirport) farthestResponse {
	airports := make([]rankedAirportResponse, 0, len(farthest))
	for _, f := range farthest {
		airports = append(airports, rankedAirportResponse{
			airportResponse: NewAirportResponse(f.Airport),
			Distance:        f.Distance,
		})
	}
	return farthestResponse{Start: start, Airports: airports}
}

type nearbyResponse struct {
	Airports []rankedAirportResponse `json:"airports"`
}

func NewNearbyResponse(nearby []usecases.NearbyAirport) nearbyResponse {
	airports := make([]rankedAirportResponse, 0, len(nearby))
	for _, n := range nearby {
		airports = append(airports, rankedAirportResponse{
			airportResponse: NewAirportResponse(n.Airport),
			Distance:        n.Distance,
		})
	}
	return nearbyResponse{Airports: airports}
}

type componentMSTResponse struct {
	Component int     `json:"component"`
	Vertices  int     `json:"vertices"`
	Weight    float64 `json:"weight"`
}

type graphAnalysisResponse struct {
	IsConnected     bool                   `json:"is_connected"`
	TotalComponents int                    `json:"total_components"`
	TotalAirports   int                    `json:"total_airports"`
	TotalRoutes     int                    `json:"total_routes"`
	MST             []componentMSTResponse `json:"mst"`
	TotalMSTWeight  float64                `json:"total_mst_weight"`
}

func NewGraphAnalysisResponse(analysis usecases.GraphAnalysis) graphAnalysisResponse {
	mst := make([]componentMSTResponse, 0, len(analysis.MST))
	for _, c := range analysis.MST {
		mst = append(mst, componentMSTResponse{
			Component: c.Component,
			Vertices:  c.Vertices,
			Weight:    c.Weight,
		})
	}
	return graphAnalysisResponse{
		IsConnected:     analysis.IsConnected,
		TotalComponents: analysis.TotalComponents,
		TotalAirports:   analysis.TotalAirports,
		TotalRoutes:     analysis.TotalRoutes,
		MST:             mst,
		TotalMSTWeight:  analysis.TotalMSTWeight,
	}
}

type reloadResponse struct {
	Airports int       `json:"airports"`
	Routes   int       `json:"routes"`
	LoadedAt time.Time `json:"loaded_at"`
}

func NewReloadResponse(res usecases.ReloadResult) reloadResponse {
	return reloadResponse{
		Airports: res.Airports,
		Routes:   res.Routes,
		LoadedAt: res.LoadedAt,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
