package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine"
	"github.com/lintang-b-s/Flightx/pkg/http/usecases"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestEnforceJSONHandler(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
	}{
		{"no body", "", "", http.StatusOK},
		{"json body", `{"a":1}`, "application/json; charset=utf-8", http.StatusOK},
		{"text body", "hello", "text/plain", http.StatusUnsupportedMediaType},
		{"missing content type", "hello", "", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/graph/reload", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			EnforceJSONHandler(okHandler).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	api := NewAPI(zap.NewNop())
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	api.recoverPanic(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
	assert.Contains(t, rec.Body.String(), "internal_server_error")
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"x real ip", map[string]string{"X-Real-IP": "10.0.0.1"}, "10.0.0.1"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "10.0.0.2, 10.0.0.3"}, "10.0.0.2"},
		{"invalid header keeps remote addr", map[string]string{"X-Real-IP": "nope"}, "192.0.2.1:1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			var got string
			RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			})).ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeartbeat(t *testing.T) {
	h := Heartbeat("healthz")(http.NotFoundHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/api/airport/:code", routeLabel("/api/airport/CGK"))
	assert.Equal(t, "/api/farthest/:code", routeLabel("/api/farthest/SIN"))
	assert.Equal(t, "/api/shortest-path", routeLabel("/api/shortest-path"))
	assert.Equal(t, "/doc", routeLabel("/doc/index.html"))
	assert.Equal(t, "other", routeLabel("/favicon.ico"))
}

func TestLimit(t *testing.T) {
	viper.Set("RATE_LIMIT_RPS", 0.001)
	viper.Set("RATE_LIMIT_BURST", 2)
	t.Cleanup(func() {
		viper.Set("RATE_LIMIT_RPS", nil)
		viper.Set("RATE_LIMIT_BURST", nil)
	})

	h := Limit(okHandler)
	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		statuses = append(statuses, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestHandler(t *testing.T) {
	g := datastructure.NewGraph()
	g.AddVertex("CGK", "Soekarno-Hatta International Airport", "Jakarta", "Indonesia", -6.1256, 106.6559)
	g.AddVertex("SIN", "Singapore Changi Airport", "Singapore", "Singapore", 1.3644, 103.9915)
	require.NoError(t, g.AddEdge("CGK", "SIN", 884))
	service := usecases.NewRoutingService(zap.NewNop(), engine.NewEngineDirect(g, zap.NewNop()), 1, 10, false)

	h := NewAPI(zap.NewNop()).Handler(false, service)

	tests := []struct {
		target     string
		wantStatus int
	}{
		{"/healthz", http.StatusOK},
		{"/api/airport/CGK", http.StatusOK},
		{"/api/shortest-path?origin=CGK&destination=SIN", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
