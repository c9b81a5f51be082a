package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/api"
	"github.com/pageza/recipe-finder/backend/internal/cache"
	"github.com/pageza/recipe-finder/backend/internal/router"
	"github.com/pageza/recipe-finder/backend/internal/service"
	"github.com/pageza/recipe-finder/backend/internal/upstream"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	cache  *cache.Cache
	logger *zap.Logger
}

// New wires the cache, upstream client, services and routes described by cfg
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	store, err := cache.NewStore(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache store: %w", err)
	}
	c := cache.New(store, cfg.CacheDuration, logger)

	client := upstream.NewClient(upstream.ConfigFrom(cfg), logger)
	recipes := service.NewRecipeService(client, c, cfg.RecipePageSize, logger)
	jokes := service.NewJokeService(client, logger)

	r := router.SetupRouter(cfg, logger, api.NewRecipeHandler(recipes), api.NewJokeHandler(jokes))

	return &Server{
		cfg:    cfg,
		router: r,
		cache:  c,
		logger: logger,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("Starting server",
		zap.String("addr", s.http.Addr),
		zap.String("cache_backend", s.cfg.CacheBackend),
		zap.Duration("cache_duration", s.cfg.CacheDuration),
		zap.Bool("api_key_configured", s.cfg.SpoonacularAPIKey != ""))

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and releases the cache
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if cerr := s.cache.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("failed to close cache: %w", cerr))
	}
	return err
}
