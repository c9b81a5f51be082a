package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-finder/backend/internal/service"
)

// JokeHandler serves the random joke shown above the results
type JokeHandler struct {
	jokes service.IJokeService
}

// NewJokeHandler creates a new joke handler
func NewJokeHandler(jokes service.IJokeService) *JokeHandler {
	return &JokeHandler{jokes: jokes}
}

// RegisterRoutes mounts GET /joke on router
func (h *JokeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/joke", h.GetJoke)
}

// GetJoke always answers with a renderable joke
func (h *JokeHandler) GetJoke(c *gin.Context) {
	res := h.jokes.GetJoke(c.Request.Context())
	setSource(c, res.Source)
	c.JSON(http.StatusOK, res.Data)
}
