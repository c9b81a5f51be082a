package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-finder/backend/internal/service"
)

// Version is reported by the health endpoints
const Version = "v1.0.0"

// SourceHeader tells clients whether a body came from the provider, the cache
// or fallback data.
const SourceHeader = "X-Data-Source"

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recipe Finder API is running",
		"version": Version,
	})
}

func setSource(c *gin.Context, source service.Source) {
	c.Header(SourceHeader, string(source))
}
