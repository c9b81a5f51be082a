package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/api"
	"github.com/pageza/recipe-finder/backend/internal/middleware"
	"github.com/pageza/recipe-finder/backend/internal/mocks"
	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/service"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Recipe Finder</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.js"), []byte("console.log('hi')"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "empty"), 0o755))

	cfg := config.Default()
	cfg.Environment = config.Test
	cfg.StaticDir = dir

	recipes := new(mocks.MockRecipeService)
	recipes.On("ListCuisines", mock.Anything).Return(service.Result[[]string]{Data: []string{"Thai"}, Source: service.SourceUpstream})
	jokes := new(mocks.MockJokeService)
	jokes.On("GetJoke", mock.Anything).Return(service.Result[*model.Joke]{Data: model.FallbackJoke(), Source: service.SourceFallback})

	return SetupRouter(cfg, zap.NewNop(), api.NewRecipeHandler(recipes), api.NewJokeHandler(jokes))
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestRoutes(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{"/health", "/api/health", "/api/cuisines", "/api/joke", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rr := serve(router, http.MethodGet, path)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestStatic(t *testing.T) {
	router := setupTestRouter(t)

	rr := serve(router, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Recipe Finder")

	rr = serve(router, http.MethodGet, "/script.js")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "console.log('hi')", rr.Body.String())

	rr = serve(router, http.MethodHead, "/script.js")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStatic_NotFound(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/missing.css"},
		{http.MethodGet, "/empty/"},
		{http.MethodGet, "/api/unknown"},
		{http.MethodGet, "/../../etc/passwd"},
		{http.MethodPost, "/script.js"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, tt.method, tt.path)
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
		})
	}
}
