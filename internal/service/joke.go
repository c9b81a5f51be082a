package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/pageza/recipe-finder/backend/internal/metrics"
	"github.com/pageza/recipe-finder/backend/internal/model"
)

var _ IJokeService = (*JokeService)(nil)

// JokeService fetches a fresh joke per call and substitutes a fixed one
// whenever the provider's answer cannot be shown.
type JokeService struct {
	provider JokeProvider
	logger   *zap.Logger
}

// NewJokeService creates a new joke service
func NewJokeService(provider JokeProvider, logger *zap.Logger) *JokeService {
	return &JokeService{provider: provider, logger: logger}
}

// GetJoke always returns a usable joke
func (s *JokeService) GetJoke(ctx context.Context) Result[*model.Joke] {
	raw, err := s.provider.GetJoke(ctx)
	if err == nil {
		var joke *model.Joke
		if joke, err = ParseJoke(raw); err == nil {
			return Result[*model.Joke]{Data: joke, Source: SourceUpstream}
		}
	}

	s.logger.Warn("Serving fallback joke", zap.Error(err))
	metrics.RecordDegraded("joke")
	return Result[*model.Joke]{Data: model.FallbackJoke(), Source: SourceFallback, Reason: err}
}
