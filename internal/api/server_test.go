package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"phishguard/internal/api"
	"phishguard/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T, deps api.Deps) *http.Server {
	t.Helper()

	srv, err := api.NewServer(deps, api.Options{
		Addr:           ":0",
		RequestTimeout: time.Second,
		MetricsPath:    "/metrics",
	})
	require.NoError(t, err)

	return srv
}

func TestServer_Healthz(t *testing.T) {
	srv := newTestServer(t, api.Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "ok", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t, api.Deps{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, rec.Body.String())
}

func TestServer_JobsUIMountedWhenProvided(t *testing.T) {
	called := false
	ui := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	srv := newTestServer(t, api.Deps{JobsUI: ui})

	req := httptest.NewRequest(http.MethodGet, "/riverui/jobs", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.True(t, called, "jobs UI handler should receive /riverui/ requests")
}

func TestServer_JobsUIAbsentWhenNil(t *testing.T) {
	srv := newTestServer(t, api.Deps{})

	req := httptest.NewRequest(http.MethodGet, "/riverui/jobs", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Result().StatusCode)
}
