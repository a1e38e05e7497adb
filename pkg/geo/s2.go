package geo

import (
	"github.com/golang/geo/s2"
)

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// RouteBounds returns the smallest lat/lon rectangle containing every great-circle leg of the route.
// legs that cross the antimeridian give a rectangle with MinLon > MaxLon.
func RouteBounds(coords []Coordinate) BoundingBox {
	if len(coords) == 0 {
		return BoundingBox{}
	}

	bounder := s2.NewRectBounder()
	for _, c := range coords {
		bounder.AddPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon)))
	}
	rect := bounder.RectBound()

	return BoundingBox{
		MinLat: rect.Lo().Lat.Degrees(),
		MinLon: rect.Lo().Lng.Degrees(),
		MaxLat: rect.Hi().Lat.Degrees(),
		MaxLon: rect.Hi().Lng.Degrees(),
	}
}
