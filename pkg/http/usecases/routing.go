package usecases

import (
	"context"
	"time"

	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/concurrent"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
	"github.com/lintang-b-s/Flightx/pkg/geo"
	"github.com/lintang-b-s/Flightx/pkg/metrics"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log              *zap.Logger
	engine           RoutingEngine
	mstWorkers       int
	nearbyMaxResults int
	allowReload      bool
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, mstWorkers, nearbyMaxResults int,
	allowReload bool) *RoutingService {
	return &RoutingService{
		log:              log,
		engine:           engine,
		mstWorkers:       mstWorkers,
		nearbyMaxResults: nearbyMaxResults,
		allowReload:      allowReload,
	}
}

func (rs *RoutingService) GetAirport(code string) (datastructure.Vertex, error) {
	code = util.NormalizeCode(code)
	graph := rs.engine.Snapshot().GetRoutingEngine().GetGraph()

	airport, ok := graph.GetVertexInfo(code)
	if !ok {
		return datastructure.Vertex{}, util.WrapErrorf(ErrAirportNotFound, util.ErrNotFound, "airport %s not found", code)
	}
	return airport, nil
}

func (rs *RoutingService) ShortestPath(ctx context.Context, origin, destination string) (Route, error) {
	origin, destination = util.NormalizeCode(origin), util.NormalizeCode(destination)
	re := rs.engine.Snapshot().GetRoutingEngine()
	graph := re.GetGraph()

	for _, code := range []string{origin, destination} {
		if !graph.HasVertex(code) {
			return Route{}, util.WrapErrorf(ErrAirportNotFound, util.ErrNotFound, "airport %s not found", code)
		}
	}

	start := time.Now()
	path, dist, err := re.GetShortestPathEngine().GetShortestPathContext(ctx, origin, destination)
	metrics.ObserveQuery(metrics.ALGORITHM_SHORTEST_PATH, time.Since(start).Seconds())
	if err != nil {
		return Route{}, util.WrapErrorf(err, util.ErrInternalServerError, "shortest path search from %s to %s interrupted",
			origin, destination)
	}
	if path == nil {
		return Route{}, util.WrapErrorf(ErrPathNotFound, util.ErrNotFound, "no route exists between %s and %s",
			origin, destination)
	}

	stops := make([]datastructure.Vertex, 0, len(path))
	coords := make([]geo.Coordinate, 0, len(path))
	for _, code := range path {
		airport, _ := graph.GetVertexInfo(code)
		stops = append(stops, airport)
		coords = append(coords, geo.NewCoordinate(airport.GetLat(), airport.GetLon()))
	}

	rs.log.Debug("shortest path found", zap.String("origin", origin), zap.String("destination", destination),
		zap.Int("stops", len(stops)), zap.Float64("distance", dist))

	return Route{
		Stops:    stops,
		Distance: util.RoundFloat(dist, pkg.DISTANCE_PRECISION),
		Polyline: geo.PolylineFromCoords(coords),
		Bounds:   geo.RouteBounds(coords),
	}, nil
}

func (rs *RoutingService) FarthestAirports(ctx context.Context, code string, k int) ([]FarthestAirport, error) {
	code = util.NormalizeCode(code)
	re := rs.engine.Snapshot().GetRoutingEngine()
	graph := re.GetGraph()

	if !graph.HasVertex(code) {
		return nil, util.WrapErrorf(ErrAirportNotFound, util.ErrNotFound, "airport %s not found", code)
	}
	k = util.Clamp(k, 1, pkg.MAX_FARTHEST_K)

	start := time.Now()
	ranked, err := re.GetShortestPathEngine().GetFarthestAirportsContext(ctx, code, k)
	metrics.ObserveQuery(metrics.ALGORITHM_FARTHEST, time.Since(start).Seconds())
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "farthest airports search from %s interrupted", code)
	}

	farthest := make([]FarthestAirport, 0, len(ranked))
	for _, r := range ranked {
		airport, _ := graph.GetVertexInfo(r.GetCode())
		farthest = append(farthest, FarthestAirport{
			Airport:  airport,
			Distance: util.RoundFloat(r.GetDistance(), pkg.DISTANCE_PRECISION),
		})
	}
	return farthest, nil
}

// GraphAnalysis reports connectivity and the minimum spanning tree weight of every connected component.
// a separate Prim run per component, spread over the worker pool.
func (rs *RoutingService) GraphAnalysis(ctx context.Context) (GraphAnalysis, error) {
	re := rs.engine.Snapshot().GetRoutingEngine()
	graph := re.GetGraph()

	start := time.Now()
	connected, components, err := re.GetConnectivityAnalyzer().IsConnectedContext(ctx)
	metrics.ObserveQuery(metrics.ALGORITHM_CONNECTIVITY, time.Since(start).Seconds())
	if err != nil {
		return GraphAnalysis{}, util.WrapErrorf(err, util.ErrInternalServerError, "connectivity analysis interrupted")
	}

	type mstResult struct {
		weight float64
		err    error
	}

	start = time.Now()
	results := concurrent.Run(rs.mstWorkers, components, func(component routing.VertexSet) mstResult {
		weight, _, err := re.GetSpanningTreeBuilder().PrimMSTContext(ctx, component)
		return mstResult{weight: weight, err: err}
	})
	metrics.ObserveQuery(metrics.ALGORITHM_PRIM, time.Since(start).Seconds())

	analysis := GraphAnalysis{
		IsConnected:     connected,
		TotalComponents: len(components),
		TotalAirports:   graph.NumberOfVertices(),
		TotalRoutes:     graph.NumberOfEdges(),
		MST:             make([]ComponentMST, 0, len(components)),
	}

	totalWeight := 0.0
	for i, res := range results {
		if res.err != nil {
			return GraphAnalysis{}, util.WrapErrorf(res.err, util.ErrInternalServerError, "minimum spanning tree interrupted")
		}
		totalWeight += res.weight
		analysis.MST = append(analysis.MST, ComponentMST{
			Component: i + 1,
			Vertices:  components[i].Size(),
			Weight:    util.RoundFloat(res.weight, pkg.DISTANCE_PRECISION),
		})
	}
	analysis.TotalMSTWeight = util.RoundFloat(totalWeight, pkg.DISTANCE_PRECISION)

	rs.log.Debug("graph analysis done", zap.Bool("connected", connected), zap.Int("components", len(components)))
	return analysis, nil
}

func (rs *RoutingService) NearbyAirports(lat, lon, radius float64) []NearbyAirport {
	snapshot := rs.engine.Snapshot()
	graph := snapshot.GetRoutingEngine().GetGraph()

	hits := snapshot.GetSpatialIndex().SearchWithinRadius(lat, lon, radius, rs.nearbyMaxResults)
	nearby := make([]NearbyAirport, 0, len(hits))
	for _, hit := range hits {
		airport, _ := graph.GetVertexInfo(hit.GetCode())
		nearby = append(nearby, NearbyAirport{
			Airport:  airport,
			Distance: util.RoundFloat(hit.GetDistance(), pkg.DISTANCE_PRECISION),
		})
	}
	return nearby
}

func (rs *RoutingService) ReloadGraph(ctx context.Context) (ReloadResult, error) {
	if !rs.allowReload {
		return ReloadResult{}, util.WrapErrorf(ErrReloadDisabled, util.ErrForbidden, "graph reload is disabled")
	}

	if err := rs.engine.Reload(ctx); err != nil {
		rs.log.Error("graph reload failed", zap.Error(err))
		return ReloadResult{}, util.WrapErrorf(err, util.ErrInternalServerError, "graph reload failed")
	}

	snapshot := rs.engine.Snapshot()
	graph := snapshot.GetRoutingEngine().GetGraph()
	return ReloadResult{
		Airports: graph.NumberOfVertices(),
		Routes:   graph.NumberOfEdges(),
		LoadedAt: snapshot.GetLoadedAt(),
	}, nil
}
