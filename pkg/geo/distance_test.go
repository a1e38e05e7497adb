package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHaversineDistance(t *testing.T) {
	testCases := []struct {
		name           string
		latOne, lonOne float64
		latTwo, lonTwo float64
		want           float64
		tolerance      float64
	}{
		{
			name:      "same point",
			want:      0,
			tolerance: 1e-9,
		},
		{
			name:      "london to new york",
			latOne:    51.5074,
			lonOne:    -0.1278,
			latTwo:    40.7128,
			lonTwo:    -74.0060,
			want:      5570,
			tolerance: 20,
		},
		{
			name:      "quarter of the equator",
			latOne:    0,
			lonOne:    0,
			latTwo:    0,
			lonTwo:    90,
			want:      10007.54,
			tolerance: 0.1,
		},
		{
			name:      "antipodal points",
			latOne:    0,
			lonOne:    0,
			latTwo:    0,
			lonTwo:    180,
			want:      20015.09,
			tolerance: 0.1,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHaversineDistance(tt.latOne, tt.lonOne, tt.latTwo, tt.lonTwo)
			assert.InDelta(t, tt.want, got, tt.tolerance)

			reversed := CalculateHaversineDistance(tt.latTwo, tt.lonTwo, tt.latOne, tt.lonOne)
			assert.InDelta(t, got, reversed, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestGetDestinationPoint(t *testing.T) {
	lat, lon := GetDestinationPoint(-7.7956, 110.3695, 45, 10)
	got := CalculateHaversineDistance(-7.7956, 110.3695, lat, lon)
	assert.InDelta(t, 10.0, got, 0.01)
}

func TestRouteBounds(t *testing.T) {
	coords := []Coordinate{
		NewCoordinate(51.4700, -0.4543),
		NewCoordinate(40.6413, -73.7781),
		NewCoordinate(33.9416, -118.4085),
	}

	box := RouteBounds(coords)
	for _, c := range coords {
		assert.LessOrEqual(t, box.MinLat, c.Lat+1e-6)
		assert.GreaterOrEqual(t, box.MaxLat, c.Lat-1e-6)
		assert.LessOrEqual(t, box.MinLon, c.Lon+1e-6)
		assert.GreaterOrEqual(t, box.MaxLon, c.Lon-1e-6)
	}

	assert.Equal(t, BoundingBox{}, RouteBounds(nil))
}

func TestPolylineRoundTrip(t *testing.T) {
	coords := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}

	line := PolylineFromCoords(coords)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", line)

	decoded, err := CoordsFromPolyline(line)
	require.NoError(t, err)
	require.Len(t, decoded, len(coords))
	for i := range coords {
		assert.InDelta(t, coords[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, coords[i].Lon, decoded[i].Lon, 1e-5)
	}
}

func TestRadiusBounds(t *testing.T) {
	testCases := []struct {
		name     string
		lat, lon float64
		radius   float64
	}{
		{name: "equator", lat: 0, lon: 0, radius: 500},
		{name: "high latitude", lat: 64.13, lon: -21.94, radius: 800},
		{name: "antimeridian", lat: -17.75, lon: 179.9, radius: 300},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			minLat, minLon, maxLat, maxLon := RadiusBounds(tt.lat, tt.lon, tt.radius)
			for bearing := 0.0; bearing < 360; bearing += 5 {
				pLat, pLon := GetDestinationPoint(tt.lat, tt.lon, bearing, tt.radius*0.999)
				assert.GreaterOrEqual(t, pLat, minLat)
				assert.LessOrEqual(t, pLat, maxLat)
				if minLon <= maxLon {
					assert.GreaterOrEqual(t, pLon, minLon)
					assert.LessOrEqual(t, pLon, maxLon)
				} else {
					assert.True(t, pLon >= minLon || pLon <= maxLon)
				}
			}
		})
	}

	_, minLon, maxLat, maxLon := RadiusBounds(89.5, 0, 200)
	assert.Equal(t, -180.0, minLon)
	assert.Equal(t, 180.0, maxLon)
	assert.Equal(t, 90.0, maxLat)
}
