package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed means the provider could not be reached at all
	ErrRequestFailed = errors.New("upstream request failed")
	// ErrUnexpectedStatus means the provider answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	// ErrMalformedResponse means the body was not JSON of the expected shape
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// Error describes a failed provider call. It matches one of the sentinel
// errors above through errors.Is.
type Error struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Kind       error
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Provider, e.Endpoint, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// outcome is the metrics label for err
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnexpectedStatus):
		return "unexpected_status"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	default:
		return "request_failed"
	}
}
