package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pageza/recipe-finder/backend/internal/cache"
	"github.com/pageza/recipe-finder/backend/internal/metrics"
	"github.com/pageza/recipe-finder/backend/internal/model"
)

var _ IRecipeService = (*RecipeService)(nil)

// RecipeService serves transformed recipes, from cache while fresh and from
// the provider otherwise. Listing failures fall back to sample data.
type RecipeService struct {
	provider RecipeProvider
	cache    *cache.Cache
	pageSize int
	logger   *zap.Logger
	group    singleflight.Group
}

// NewRecipeService creates a new recipe service
func NewRecipeService(provider RecipeProvider, c *cache.Cache, pageSize int, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		provider: provider,
		cache:    c,
		pageSize: pageSize,
		logger:   logger,
	}
}

// GetRecipes returns one page of recipes matching filter. The unfiltered page
// is what gets cached, so changing only the difficulty never reaches upstream.
func (s *RecipeService) GetRecipes(ctx context.Context, filter model.RecipeFilter) Result[*model.RecipeList] {
	offset := max(filter.Offset, 0)
	cuisine := filter.Cuisine
	if strings.EqualFold(cuisine, "all") {
		cuisine = ""
	}
	key := cache.SearchKey(filter.Search, cuisine, offset)

	var recipes []model.Recipe
	source := SourceCache
	if !s.cache.Load(ctx, key, &recipes) {
		v, err, _ := s.group.Do(key, func() (any, error) {
			// Shared by every caller waiting on key, so one caller going away
			// must not cancel it for the rest.
			ctx := context.WithoutCancel(ctx)

			res, err := s.provider.SearchRecipes(ctx, filter.Search, cuisine, offset)
			if err != nil {
				return nil, err
			}
			page := TransformRecipes(res.Results)
			s.logger.Debug("Fetched recipe page",
				zap.String("key", key),
				zap.Int("count", len(page)),
				zap.Int("totalResults", res.TotalResults))

			s.cache.Save(ctx, key, page)
			return page, nil
		})
		if err != nil {
			s.logger.Warn("Serving fallback recipes", zap.String("key", key), zap.Error(err))
			metrics.RecordDegraded("recipes")
			return Result[*model.RecipeList]{
				Data: &model.RecipeList{
					Recipes:    model.FallbackRecipes(),
					Pagination: model.Pagination{Offset: offset, Limit: s.pageSize, HasMore: false},
				},
				Source: SourceFallback,
				Reason: err,
			}
		}
		recipes = v.([]model.Recipe)
		source = SourceUpstream
	}

	return Result[*model.RecipeList]{
		Data: &model.RecipeList{
			Recipes: FilterByDifficulty(recipes, filter.Difficulty),
			Pagination: model.Pagination{
				Offset:  offset,
				Limit:   s.pageSize,
				HasMore: len(recipes) == s.pageSize,
			},
		},
		Source: source,
	}
}

// GetRecipe returns a single recipe. Any upstream failure is reported as
// ErrRecipeNotFound wrapping the cause.
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (Result[*model.Recipe], error) {
	key := cache.RecipeKey(id)

	var recipe model.Recipe
	if s.cache.Load(ctx, key, &recipe) {
		return Result[*model.Recipe]{Data: &recipe, Source: SourceCache}, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		ctx := context.WithoutCancel(ctx)

		raw, err := s.provider.GetRecipeByID(ctx, id)
		if err != nil {
			return nil, err
		}
		r := TransformRecipe(raw)
		s.cache.Save(ctx, key, r)
		return r, nil
	})
	if err != nil {
		s.logger.Info("Recipe lookup failed", zap.String("id", id), zap.Error(err))
		return Result[*model.Recipe]{}, fmt.Errorf("%w: %w", ErrRecipeNotFound, err)
	}

	r := v.(model.Recipe)
	return Result[*model.Recipe]{Data: &r, Source: SourceUpstream}, nil
}

// ListCuisines returns the provider's cuisine list, never cached
func (s *RecipeService) ListCuisines(ctx context.Context) Result[[]string] {
	cuisines, err := s.provider.ListCuisines(ctx)
	if err != nil {
		s.logger.Warn("Serving fallback cuisines", zap.Error(err))
		metrics.RecordDegraded("cuisines")
		return Result[[]string]{Data: model.FallbackCuisines(), Source: SourceFallback, Reason: err}
	}
	if cuisines == nil {
		cuisines = []string{}
	}
	return Result[[]string]{Data: cuisines, Source: SourceUpstream}
}
