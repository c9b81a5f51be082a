package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/service"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// GetRecipes mocks the GetRecipes method
func (m *MockRecipeService) GetRecipes(ctx context.Context, filter model.RecipeFilter) service.Result[*model.RecipeList] {
	args := m.Called(ctx, filter)
	return args.Get(0).(service.Result[*model.RecipeList])
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, id string) (service.Result[*model.Recipe], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.Result[*model.Recipe]), args.Error(1)
}

// ListCuisines mocks the ListCuisines method
func (m *MockRecipeService) ListCuisines(ctx context.Context) service.Result[[]string] {
	args := m.Called(ctx)
	return args.Get(0).(service.Result[[]string])
}
