package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dnalab/internal/config"
	"dnalab/internal/resource"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockingSource never answers until the caller gives up
type blockingSource struct{}

func (blockingSource) Fetch(ctx context.Context, p string) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Env: "development"},
		Resources: config.ResourceConfig{
			PublicDir:         "/",
			DietaryImagesPath: "/dietary-images.json",
			AuthCodesPath:     "/auth-codes.json",
			Timeout:           time.Second,
		},
		RateLimit: config.RateLimitConfig{Requests: 2, Window: time.Minute},
	}
}

func publicFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dietary-images.json", []byte(`["/assets/dietary/ecaburn.jpg"]`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/auth-codes.json", []byte(`{"codes":["ABC123"]}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/assets/dietary/ecaburn.jpg", []byte("jpeg"), 0o644))
	return fs
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	fs := publicFs(t)
	if opts.Public == nil {
		opts.Public = fs
	}
	if opts.Source == nil {
		opts.Source = resource.NewFileSource(fs, "/")
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	srv, err := NewServerWithOptions(testConfig(), zap.NewNop(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	select {
	case <-srv.Loaded():
	case <-time.After(5 * time.Second):
		t.Fatal("verification dataset never loaded")
	}
	return srv
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, Options{})

	w := get(t, srv, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ready", body["auth_codes"])
}

func TestServer_PublicFiles(t *testing.T) {
	srv := newTestServer(t, Options{})

	w := get(t, srv, "/dietary-images.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["/assets/dietary/ecaburn.jpg"]`, w.Body.String())

	w = get(t, srv, "/auth-codes.json")
	require.Equal(t, http.StatusOK, w.Code)

	w = get(t, srv, "/assets/dietary/ecaburn.jpg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg", w.Body.String())

	w = get(t, srv, "/static/site.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".modal:target")
}

func TestServer_PagesAndAPI(t *testing.T) {
	srv := newTestServer(t, Options{})

	w := get(t, srv, "/products/dietary-supplements")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h2>ECA Burn</h2>")

	w = get(t, srv, "/api/auth-codes/status")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"ready"}`, w.Body.String())

	w = get(t, srv, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, Options{})

	req := httptest.NewRequest(http.MethodOptions, "/api/auth-codes/verify", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_VerifyRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	srv := newTestServer(t, Options{Redis: client})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth-codes/verify", strings.NewReader(`{"code":"ABC123"}`))
		req.RemoteAddr = "203.0.113.7:4321"
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t, Options{})

	get(t, srv, "/api/categories")
	get(t, srv, "/products/dietary-supplements")

	w := get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `dnalab_http_requests_total{method="GET",route="/api/categories",status="200"} 1`)
	assert.Contains(t, text, `dnalab_resource_fetches_total{outcome="ok",resource="/auth-codes.json"} 1`)
	assert.Contains(t, text, `dnalab_resource_fetches_total{outcome="ok",resource="/dietary-images.json"} 1`)
}

func TestServer_CloseStopsLoader(t *testing.T) {
	fs := afero.NewMemMapFs()
	srv, err := NewServerWithOptions(testConfig(), zap.NewNop(), Options{
		Source:   blockingSource{},
		Public:   fs,
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	state, _ := srv.verifier.State()
	assert.Equal(t, "loading", string(state))

	require.NoError(t, srv.Close())
	select {
	case <-srv.Loaded():
	default:
		t.Fatal("loader still running after Close")
	}
}
