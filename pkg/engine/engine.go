package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
	"github.com/lintang-b-s/Flightx/pkg/flightparser"
	"github.com/lintang-b-s/Flightx/pkg/metrics"
	"github.com/lintang-b-s/Flightx/pkg/spatialindex"
	"go.uber.org/zap"
)

// Snapshot is one immutable, fully built graph with everything derived from it.
type Snapshot struct {
	routingEngine *routing.RoutingEngine
	spatialIndex  *spatialindex.Rtree
	loadedAt      time.Time
}

func (s *Snapshot) GetRoutingEngine() *routing.RoutingEngine {
	return s.routingEngine
}

func (s *Snapshot) GetSpatialIndex() *spatialindex.Rtree {
	return s.spatialIndex
}

func (s *Snapshot) GetLoadedAt() time.Time {
	return s.loadedAt
}

// Engine serves the current snapshot. Reload builds a new graph off to the side and swaps it in atomically,
// requests that already hold the previous snapshot finish on it.
type Engine struct {
	current     atomic.Pointer[Snapshot]
	reloadMu    sync.Mutex
	datasetPath string
	parser      *flightparser.FlightParser
	logger      *zap.Logger
}

func NewEngine(datasetPath string, logger *zap.Logger) (*Engine, error) {
	e := &Engine{
		datasetPath: datasetPath,
		parser:      flightparser.NewFlightParser(),
		logger:      logger,
	}
	if err := e.Reload(context.Background()); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEngineDirect serves an already built graph. Reload is not available without a dataset path.
func NewEngineDirect(graph *datastructure.Graph, logger *zap.Logger) *Engine {
	e := &Engine{
		parser: flightparser.NewFlightParser(),
		logger: logger,
	}
	e.publish(graph)
	return e
}

func (e *Engine) Snapshot() *Snapshot {
	return e.current.Load()
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.Snapshot().GetRoutingEngine()
}

// Reload parses the dataset again and publishes the new graph. concurrent reloads are serialized,
// the served snapshot is untouched when parsing fails.
func (e *Engine) Reload(ctx context.Context) error {
	if e.datasetPath == "" {
		return fmt.Errorf("reload graph: %w", ErrNoDataset)
	}

	e.reloadMu.Lock()
	defer e.reloadMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	e.logger.Info("Loading flight routes graph...", zap.String("datasetPath", e.datasetPath))
	graph, err := e.parser.Parse(e.datasetPath, e.logger)
	if err != nil {
		metrics.GraphReloadTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("reload graph: %w", err)
	}

	e.publish(graph)
	metrics.GraphReloadTotal.WithLabelValues("success").Inc()
	return nil
}

func (e *Engine) publish(graph *datastructure.Graph) {
	rtree := spatialindex.NewRtree()
	rtree.Build(graph, e.logger)

	e.current.Store(&Snapshot{
		routingEngine: routing.NewRoutingEngine(graph),
		spatialIndex:  rtree,
		loadedAt:      time.Now(),
	})

	metrics.GraphVertices.Set(float64(graph.NumberOfVertices()))
	metrics.GraphEdges.Set(float64(graph.NumberOfEdges()))
	e.logger.Info("Flight routes graph published",
		zap.Int("airports", graph.NumberOfVertices()),
		zap.Int("routes", graph.NumberOfEdges()))
}
