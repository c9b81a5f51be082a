package service

import (
	"context"
	"encoding/json"

	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/upstream"
)

// RecipeProvider is the part of the upstream client the recipe service uses
type RecipeProvider interface {
	SearchRecipes(ctx context.Context, query, cuisine string, offset int) (*upstream.SearchResult, error)
	GetRecipeByID(ctx context.Context, id string) (json.RawMessage, error)
	ListCuisines(ctx context.Context) ([]string, error)
}

// JokeProvider is the part of the upstream client the joke service uses
type JokeProvider interface {
	GetJoke(ctx context.Context) (json.RawMessage, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	GetRecipes(ctx context.Context, filter model.RecipeFilter) Result[*model.RecipeList]
	GetRecipe(ctx context.Context, id string) (Result[*model.Recipe], error)
	ListCuisines(ctx context.Context) Result[[]string]
}

// IJokeService defines the interface for joke operations
type IJokeService interface {
	GetJoke(ctx context.Context) Result[*model.Joke]
}
