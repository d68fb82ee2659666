package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	path   string
	status int
}

type recordingRecorder struct {
	mu   sync.Mutex
	seen []observation
}

func (r *recordingRecorder) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observation{method: method, path: path, status: status})
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &recordingRecorder{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.HandleFunc("/api/v1/businesses/{businessId}/available-slots", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}).Methods(http.MethodGet)
	r.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/v1/businesses/1/available-slots", "/api/v1/businesses/2/available-slots", "/ok"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, recorder.seen, 3)
	assert.Equal(t, observation{method: "GET", path: "/api/v1/businesses/{businessId}/available-slots", status: 400}, recorder.seen[0])
	assert.Equal(t, recorder.seen[0], recorder.seen[1])
	// без явного WriteHeader код ответа 200
	assert.Equal(t, observation{method: "GET", path: "/ok", status: 200}, recorder.seen[2])
}

func TestMetricsMiddleware_WithoutRoute(t *testing.T) {
	recorder := &recordingRecorder{}
	h := MetricsMiddleware(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/anything", nil))

	require.Len(t, recorder.seen, 1)
	assert.Equal(t, observation{method: "POST", path: unmatchedRoute, status: http.StatusTeapot}, recorder.seen[0])
}

func TestLoggingMiddleware(t *testing.T) {
	log := &recordingLogger{}
	h := LoggingMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/businesses/1/bookings/2/cancellation-fee", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, log.lines, 1)
	assert.Contains(t, log.lines[0], "GET /api/v1/businesses/1/bookings/2/cancellation-fee - 404")
}
