package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/service"
)

// MockJokeService is a mock implementation of the joke service
type MockJokeService struct {
	mock.Mock
}

// GetJoke mocks the GetJoke method
func (m *MockJokeService) GetJoke(ctx context.Context) service.Result[*model.Joke] {
	args := m.Called(ctx)
	return args.Get(0).(service.Result[*model.Joke])
}
