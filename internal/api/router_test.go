package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/service"
)

type noopSink struct{}

func (noopSink) Enqueue(_ ports.AuditEvent) {}

// newTestRouter assembles the full route table without connecting to any
// backing store. Requests that never reach a repository exercise the real
// guard wiring.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	// NewRouter registers echoprometheus collectors into the process-global
	// default registry; a fresh registry per router keeps a second call in
	// the same test binary from panicking on duplicate registration.
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg

	// Connect is lazy: no server has to be listening for the client to
	// materialise, which is all the route table needs.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return NewRouter(Dependencies{
		Mongo:  client.Database("manalynx_test"),
		Redis:  redis.NewClient(&redis.Options{}),
		Tokens: service.NewTokenService("test-secret", time.Hour),
		Audit:  noopSink{},
		Logger: zerolog.Nop(),
	})
}

func doRequest(e *echo.Echo, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_OperationalEndpointsAreAnonymous(t *testing.T) {
	e := newTestRouter(t)

	if rec := doRequest(e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("/health without token: expected 200, got %d", rec.Code)
	}
	if rec := doRequest(e, http.MethodGet, "/metrics", ""); rec.Code != http.StatusOK {
		t.Fatalf("/metrics without token: expected 200, got %d", rec.Code)
	}

	// Anonymous endpoints never inspect the header, so garbage must not
	// turn a probe into a 401.
	if rec := doRequest(e, http.MethodGet, "/health", "Bearer garbage"); rec.Code != http.StatusOK {
		t.Fatalf("/health with garbage token: expected 200, got %d", rec.Code)
	}
}

func TestRouter_ReadinessPassesTheGate(t *testing.T) {
	e := newTestRouter(t)

	// No store is reachable, so readiness reports degraded. The point is
	// that the gate let the probe through instead of demanding a token.
	rec := doRequest(e, http.MethodGet, "/health/ready", "")
	if rec.Code == http.StatusUnauthorized || rec.Code == http.StatusForbidden {
		t.Fatalf("/health/ready was blocked by the gate: %d", rec.Code)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with stores down, got %d", rec.Code)
	}
}

func TestRouter_ProtectedRoutesFailClosed(t *testing.T) {
	e := newTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/policies"},
		{http.MethodGet, "/policies/abc"},
		{http.MethodGet, "/vehicle-categories"},
		{http.MethodGet, "/diseases"},
		{http.MethodGet, "/teams"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/audit"},
	}
	for _, route := range protected {
		rec := doRequest(e, route.method, route.path, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", route.method, route.path, rec.Code)
		}
	}
}
