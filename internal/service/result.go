package service

import "errors"

var (
	// ErrRecipeNotFound is returned when a single recipe cannot be produced
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrJokeRejected means the joke provider flagged its own answer as an error
	ErrJokeRejected = errors.New("joke provider returned an error")
	// ErrUnusableJoke means the joke lacks the text its type requires
	ErrUnusableJoke = errors.New("joke is missing its text")
)

// Source tells where the data of a Result came from
type Source string

const (
	SourceUpstream Source = "upstream"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Result carries data together with its origin. Reason is set when the data
// is fallback data and holds the failure that caused it.
type Result[T any] struct {
	Data   T
	Source Source
	Reason error
}

// Degraded reports whether the data was substituted for a failed upstream call
func (r Result[T]) Degraded() bool {
	return r.Source == SourceFallback
}
