package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts api requests by method, matched route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightx_http_requests_total",
		Help: "Total api requests by method, route and status",
	}, []string{"method", "route", "status"})

	// QueryDuration tracks graph algorithm latency
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flightx_query_duration_seconds",
		Help:    "Graph query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	}, []string{"algorithm"})

	GraphVertices = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "flightx_graph_vertices",
		Help: "Number of airports in the loaded graph",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "flightx_graph_edges",
		Help: "Number of undirected routes in the loaded graph",
	})

	// GraphReloadTotal counts dataset reloads by result (success/failure)
	GraphReloadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightx_graph_reload_total",
		Help: "Total graph reloads by result",
	}, []string{"result"})
)

const (
	ALGORITHM_CONNECTIVITY  = "connectivity"
	ALGORITHM_PRIM          = "prim"
	ALGORITHM_SHORTEST_PATH = "shortest_path"
	ALGORITHM_FARTHEST      = "farthest"
)

func ObserveQuery(algorithm string, seconds float64) {
	QueryDuration.WithLabelValues(algorithm).Observe(seconds)
}
