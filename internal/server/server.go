package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"dnalab/internal/catalog"
	"dnalab/internal/config"
	"dnalab/internal/dietary"
	custommiddleware "dnalab/internal/middleware"
	"dnalab/internal/resource"
	"dnalab/internal/transport"
	"dnalab/internal/verifier"
	"dnalab/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config   *config.Config
	logger   *zap.Logger
	redis    *redis.Client
	verifier verifier.CodeVerifier
	cancel   context.CancelFunc
	loaded   <-chan struct{}
}

// Options overrides the collaborators NewServer would otherwise build from config
type Options struct {
	Source   resource.Source
	Public   afero.Fs
	Redis    *redis.Client
	Registry *prometheus.Registry
}

func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	return NewServerWithOptions(cfg, logger, Options{})
}

func NewServerWithOptions(cfg *config.Config, logger *zap.Logger, opts Options) (*Server, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := custommiddleware.NewMetrics(reg)

	source := opts.Source
	if source == nil {
		source = resource.New(cfg.Resources.BaseURL, cfg.Resources.PublicDir, cfg.Resources.Timeout)
	}
	source = resource.Observed(source, func(p string, err error) {
		metrics.ObserveFetch(p, err == nil)
	})

	public := opts.Public
	if public == nil {
		public = afero.NewBasePathFs(afero.NewOsFs(), cfg.Resources.PublicDir)
	}

	redisClient := opts.Redis
	if redisClient == nil && cfg.RedisEnabled() {
		redisClient = newRedisClient(cfg, logger)
	}

	cat := catalog.Default()
	images := dietary.NewImageList(source, cfg.Resources.DietaryImagesPath, cfg.Resources.DietaryCacheTTL, logger)
	codes := verifier.NewCodeVerifier(source, cfg.Resources.AuthCodesPath, logger)

	// The dataset loads in the background for the lifetime of the server
	lifetime, cancel := context.WithCancel(context.Background())
	loaded := codes.Start(lifetime)

	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(metrics.Middleware)
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		state, _ := codes.State()
		custommiddleware.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"status":     "ok",
			"auth_codes": string(state),
		})
	})
	router.Handle("/metrics", metrics.Handler())

	verifyLimit := custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimit.Requests,
		Window:            cfg.RateLimit.Window,
		KeyPrefix:         "ratelimit:verify",
	}, logger)

	// Initialize handlers
	siteHandler := transport.NewSiteHandler(cat, images, codes, renderer, metrics, logger)
	apiHandler := transport.NewAPIHandler(cat, images, codes, metrics, logger)

	// Register routes
	siteHandler.RegisterRoutes(router, verifyLimit)
	apiHandler.RegisterRoutes(router, verifyLimit,
		custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.IsDevelopment()))

	// Files published alongside the pages
	files := http.FileServer(afero.NewHttpFs(public).Dir("/"))
	router.Handle("/assets/*", files)
	for _, p := range []string{cfg.Resources.DietaryImagesPath, cfg.Resources.AuthCodesPath, "/favicon.ico", "/logo192.png"} {
		router.Handle(p, files)
	}
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	router.NotFound(siteHandler.NotFound)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:   cfg,
		logger:   logger,
		redis:    redisClient,
		verifier: codes,
		cancel:   cancel,
		loaded:   loaded,
	}

	return server, nil
}

func newRedisClient(cfg *config.Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// Requests still pass; the limiter fails open
		logger.Warn("Redis not reachable, rate limiting degraded", zap.Error(err))
	}

	return client
}

// Loaded closes once the verification dataset load has finished
func (s *Server) Loaded() <-chan struct{} {
	return s.loaded
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	s.cancel()
	<-s.loaded

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	_ = s.logger.Sync()
	return nil
}
