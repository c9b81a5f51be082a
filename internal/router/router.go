package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/api"
	"github.com/pageza/recipe-finder/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	recipeHandler *api.RecipeHandler,
	jokeHandler *api.JokeHandler,
) *gin.Engine {
	if !cfg.Environment.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.Recovery(logger),
		middleware.CORS(),
	)

	router.GET("/health", api.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	apiGroup.GET("/health", api.HealthCheck)
	recipeHandler.RegisterRoutes(apiGroup)
	jokeHandler.RegisterRoutes(apiGroup)

	// Everything else is the front-end
	router.NoRoute(Static(cfg.StaticDir), middleware.NotFound)

	return router
}
