package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"dnalab/internal/catalog"
	"dnalab/internal/dietary"
	"dnalab/internal/domain"
	"dnalab/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubVerifier answers from a fixed set of valid codes
type stubVerifier struct {
	state  domain.LoadState
	errMsg string
	valid  map[string]bool
}

func (s *stubVerifier) Load(ctx context.Context) error { return nil }

func (s *stubVerifier) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}

func (s *stubVerifier) State() (domain.LoadState, string) { return s.state, s.errMsg }

func (s *stubVerifier) Verify(ctx context.Context, input string) domain.Verdict {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return domain.VerdictNone
	}
	if s.valid[trimmed] {
		return domain.VerdictValid
	}
	return domain.VerdictInvalid
}

type stubDietary struct {
	images []string
}

func (s *stubDietary) Entries(ctx context.Context) []domain.DietaryEntry {
	return dietary.ResolveAll(s.images)
}

type recordingObserver struct {
	mu       sync.Mutex
	verdicts []string
}

func (o *recordingObserver) ObserveVerdict(v string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.verdicts = append(o.verdicts, v)
}

func (o *recordingObserver) seen() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.verdicts...)
}

func passthrough(next http.Handler) http.Handler { return next }

type testEnv struct {
	router   http.Handler
	verifier *stubVerifier
	observer *recordingObserver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	v := &stubVerifier{
		state: domain.LoadStateReady,
		valid: map[string]bool{"ABC123": true},
	}
	d := &stubDietary{images: []string{"/assets/dietary/ecaburn.jpg", "/assets/dietary/omega-3.png"}}
	obs := &recordingObserver{}
	logger := zap.NewNop()
	cat := catalog.Default()

	site := NewSiteHandler(cat, d, v, renderer, obs, logger)
	api := NewAPIHandler(cat, d, v, obs, logger)

	r := chi.NewRouter()
	site.RegisterRoutes(r, passthrough)
	api.RegisterRoutes(r, passthrough)
	r.NotFound(site.NotFound)

	return &testEnv{router: r, verifier: v, observer: obs}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
