package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-finder/backend/internal/upstream"
)

// MockUpstreamClient is a mock implementation of the upstream client
type MockUpstreamClient struct {
	mock.Mock
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockUpstreamClient) SearchRecipes(ctx context.Context, query, cuisine string, offset int) (*upstream.SearchResult, error) {
	args := m.Called(ctx, query, cuisine, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.SearchResult), args.Error(1)
}

// GetRecipeByID mocks the GetRecipeByID method
func (m *MockUpstreamClient) GetRecipeByID(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// ListCuisines mocks the ListCuisines method
func (m *MockUpstreamClient) ListCuisines(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// GetJoke mocks the GetJoke method
func (m *MockUpstreamClient) GetJoke(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
