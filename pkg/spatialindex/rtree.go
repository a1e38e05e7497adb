package spatialindex

import (
	"sort"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[AirportPoint]
}

type AirportPoint struct {
	code string
	lat  float64
	lon  float64
}

func (ap AirportPoint) GetCode() string {
	return ap.code
}

func (ap AirportPoint) GetLat() float64 {
	return ap.lat
}

func (ap AirportPoint) GetLon() float64 {
	return ap.lon
}

// NearbyAirport is a search hit with its great-circle distance (km) to the query point.
type NearbyAirport struct {
	AirportPoint
	distance float64
}

func (na NearbyAirport) GetDistance() float64 {
	return na.distance
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[AirportPoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every airport of the graph as a point.
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	graph.ForVertices(func(v datastructure.Vertex) {
		point := [2]float64{v.GetLon(), v.GetLat()}
		rt.tr.Insert(point, point, AirportPoint{code: v.GetCode(), lat: v.GetLat(), lon: v.GetLon()})
	})
	log.Info("R-tree spatial index built.", zap.Int("airports", rt.tr.Len()))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius returns at most maxResults airports within radius (km) from (qLat, qLon), nearest first.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64, maxResults int) []NearbyAirport {
	lowerLat, westLon, upperLat, eastLon := geo.RadiusBounds(qLat, qLon, radius)

	results := make([]NearbyAirport, 0, 10)
	collect := func(min, max [2]float64, data AirportPoint) bool {
		dist := geo.CalculateHaversineDistance(qLat, qLon, data.lat, data.lon)
		if dist <= radius {
			results = append(results, NearbyAirport{AirportPoint: data, distance: dist})
		}
		return true
	}

	if westLon <= eastLon {
		rt.tr.Search([2]float64{westLon, lowerLat}, [2]float64{eastLon, upperLat}, collect)
	} else {
		// box crosses the antimeridian
		rt.tr.Search([2]float64{westLon, lowerLat}, [2]float64{180, upperLat}, collect)
		rt.tr.Search([2]float64{-180, lowerLat}, [2]float64{eastLon, upperLat}, collect)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].distance != results[j].distance {
			return results[i].distance < results[j].distance
		}
		return results[i].code < results[j].code
	})
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
