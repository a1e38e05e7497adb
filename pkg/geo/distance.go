package geo

import (
	"math"

	"github.com/lintang-b-s/Flightx/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

// CalculateHaversineDistance. great-circle distance in km between two points given in degrees.
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	sinDLat := math.Sin((latTwo - latOne) / 2.0)
	sinDLon := math.Sin((longTwo - longOne) / 2.0)

	a := sinDLat*sinDLat + math.Cos(latOne)*math.Cos(latTwo)*sinDLon*sinDLon
	c := 2.0 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in km
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / earthRadiusKM

	bearing = util.DegreeToRadians(bearing)

	lat1 = util.DegreeToRadians(lat1)
	lon1 = util.DegreeToRadians(lon1)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)

	return radToDeg(lat2), normalizeLongitude(radToDeg(lon2))
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}

// RadiusBounds returns the lat/lon rectangle (degrees) that contains every point within radius km of (lat, lon).
// minLon > maxLon means the rectangle crosses the antimeridian.
func RadiusBounds(lat, lon, radius float64) (minLat, minLon, maxLat, maxLon float64) {
	angular := radius / earthRadiusKM
	minLat = lat - radToDeg(angular)
	maxLat = lat + radToDeg(angular)

	if minLat <= -90 || maxLat >= 90 || angular >= math.Pi/2 {
		// cap contains a pole
		return math.Max(minLat, -90), -180, math.Min(maxLat, 90), 180
	}

	dLon := radToDeg(math.Asin(math.Sin(angular) / math.Cos(util.DegreeToRadians(lat))))
	return minLat, normalizeLongitude(lon - dLon), maxLat, normalizeLongitude(lon + dLon)
}
