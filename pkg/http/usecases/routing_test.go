package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine"
	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type airport struct {
	code, name, city, country string
	lat, lon                  float64
}

var airports = []airport{
	{"CGK", "Soekarno-Hatta International Airport", "Jakarta", "Indonesia", -6.1256, 106.6559},
	{"DPS", "Ngurah Rai International Airport", "Denpasar", "Indonesia", -8.7482, 115.1672},
	{"SIN", "Singapore Changi Airport", "Singapore", "Singapore", 1.3644, 103.9915},
	{"KUL", "Kuala Lumpur International Airport", "Kuala Lumpur", "Malaysia", 2.7456, 101.7099},
	{"SUV", "Nausori International Airport", "Nausori", "Fiji", -18.0433, 178.5592},
	{"NAN", "Nadi International Airport", "Nadi", "Fiji", -17.7554, 177.4434},
}

func buildTestService(t *testing.T, allowReload bool) (*RoutingService, *datastructure.Graph) {
	t.Helper()
	g := datastructure.NewGraph()
	for _, a := range airports {
		g.AddVertex(a.code, a.name, a.city, a.country, a.lat, a.lon)
	}
	connect := func(u, v string) {
		a, _ := g.GetVertexInfo(u)
		b, _ := g.GetVertexInfo(v)
		require.NoError(t, g.AddEdge(u, v, geo.CalculateHaversineDistance(a.GetLat(), a.GetLon(), b.GetLat(), b.GetLon())))
	}
	connect("CGK", "DPS")
	connect("CGK", "SIN")
	connect("SIN", "KUL")
	connect("SUV", "NAN")

	e := engine.NewEngineDirect(g, zap.NewNop())
	return NewRoutingService(zap.NewNop(), e, 2, 5, allowReload), g
}

func assertErrorCode(t *testing.T, err error, wantCode error) {
	t.Helper()
	require.Error(t, err)
	var appErr *util.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, wantCode, appErr.Code())
}

func TestGetAirport(t *testing.T) {
	rs, _ := buildTestService(t, false)

	a, err := rs.GetAirport(" cgk ")
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", a.GetCity())

	_, err = rs.GetAirport("XXX")
	assertErrorCode(t, err, util.ErrNotFound)
	assert.ErrorIs(t, err, ErrAirportNotFound)
}

func TestShortestPath(t *testing.T) {
	rs, g := buildTestService(t, false)

	route, err := rs.ShortestPath(context.Background(), "dps", "KUL")
	require.NoError(t, err)

	codes := make([]string, 0, len(route.Stops))
	for _, s := range route.Stops {
		codes = append(codes, s.GetCode())
	}
	assert.Equal(t, []string{"DPS", "CGK", "SIN", "KUL"}, codes)

	want := 0.0
	for i := 1; i < len(codes); i++ {
		w, _ := g.GetWeight(codes[i-1], codes[i])
		want += w
	}
	assert.InDelta(t, want, route.Distance, 0.005)

	decoded, err := geo.CoordsFromPolyline(route.Polyline)
	require.NoError(t, err)
	assert.Len(t, decoded, 4)
	assert.LessOrEqual(t, route.Bounds.MinLat, -8.7482)
	assert.GreaterOrEqual(t, route.Bounds.MaxLat, 2.7456)

	_, err = rs.ShortestPath(context.Background(), "CGK", "SUV")
	assertErrorCode(t, err, util.ErrNotFound)
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = rs.ShortestPath(context.Background(), "CGK", "XXX")
	assert.ErrorIs(t, err, ErrAirportNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = rs.ShortestPath(ctx, "CGK", "KUL")
	assertErrorCode(t, err, util.ErrInternalServerError)
}

func TestFarthestAirports(t *testing.T) {
	rs, _ := buildTestService(t, false)

	farthest, err := rs.FarthestAirports(context.Background(), "CGK", 10)
	require.NoError(t, err)
	require.Len(t, farthest, 3)
	assert.Equal(t, "KUL", farthest[0].Airport.GetCode())
	for i := 1; i < len(farthest); i++ {
		assert.LessOrEqual(t, farthest[i].Distance, farthest[i-1].Distance)
	}

	farthest, err = rs.FarthestAirports(context.Background(), "CGK", 1)
	require.NoError(t, err)
	assert.Len(t, farthest, 1)

	_, err = rs.FarthestAirports(context.Background(), "XXX", 10)
	assertErrorCode(t, err, util.ErrNotFound)
}

func TestGraphAnalysis(t *testing.T) {
	rs, g := buildTestService(t, false)

	analysis, err := rs.GraphAnalysis(context.Background())
	require.NoError(t, err)

	assert.False(t, analysis.IsConnected)
	assert.Equal(t, 2, analysis.TotalComponents)
	assert.Equal(t, 6, analysis.TotalAirports)
	assert.Equal(t, 4, analysis.TotalRoutes)
	require.Len(t, analysis.MST, 2)

	// components are discovered in insertion order, CGK first
	assert.Equal(t, ComponentMST{Component: 1, Vertices: 4, Weight: analysis.MST[0].Weight}, analysis.MST[0])
	assert.Equal(t, 2, analysis.MST[1].Component)
	assert.Equal(t, 2, analysis.MST[1].Vertices)

	suvNan, _ := g.GetWeight("SUV", "NAN")
	assert.InDelta(t, suvNan, analysis.MST[1].Weight, 0.005)

	sum := 0.0
	for _, code := range [][2]string{{"CGK", "DPS"}, {"CGK", "SIN"}, {"SIN", "KUL"}, {"SUV", "NAN"}} {
		w, _ := g.GetWeight(code[0], code[1])
		sum += w
	}
	assert.InDelta(t, sum, analysis.TotalMSTWeight, 0.01)
}

func TestNearbyAirports(t *testing.T) {
	rs, _ := buildTestService(t, false)

	nearby := rs.NearbyAirports(-17.9, 178.0, 100)
	require.Len(t, nearby, 2)
	assert.ElementsMatch(t, []string{"SUV", "NAN"}, []string{nearby[0].Airport.GetCode(), nearby[1].Airport.GetCode()})
	assert.Empty(t, rs.NearbyAirports(51.47, -0.45, 50))
}

func TestReloadGraph(t *testing.T) {
	rs, _ := buildTestService(t, false)
	_, err := rs.ReloadGraph(context.Background())
	assertErrorCode(t, err, util.ErrForbidden)

	// engine built from an in-memory graph has no dataset to reload from
	rs, _ = buildTestService(t, true)
	_, err = rs.ReloadGraph(context.Background())
	assertErrorCode(t, err, util.ErrInternalServerError)
	assert.ErrorIs(t, err, engine.ErrNoDataset)
}
