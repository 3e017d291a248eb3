package artwork

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the silent outcomes of a page load.
var (
	// ErrTimeout is the cancellation cause when a page load exceeds its deadline.
	ErrTimeout = errors.New("page load timed out")

	// ErrSuperseded is the cancellation cause when a newer navigation replaces a load.
	ErrSuperseded = errors.New("page load superseded by newer navigation")
)

// ErrorClass represents a classification of fetch failures.
type ErrorClass string

const (
	// ErrorClassNetwork represents transport failures (DNS, connection reset, ...).
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassStatus represents non-2xx HTTP responses.
	ErrorClassStatus ErrorClass = "status"

	// ErrorClassParse represents response bodies that could not be decoded.
	ErrorClassParse ErrorClass = "parse"
)

// FetchError is a network, status, or decode failure for a single page request.
type FetchError struct {
	Class      ErrorClass
	Page       int
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("artworks page %d: %s error (status %d): %v", e.Page, e.Class, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("artworks page %d: %s error: %v", e.Page, e.Class, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Outcome is the terminal result of one page-load cycle.
type Outcome string

// Page-load outcomes.
const (
	OutcomeSuccess   Outcome = "success"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// Classify maps a page-load error to its outcome. Timeout and supersede are
// recognised both as sentinel errors and as the cause recorded on ctx, since
// net/http reports a cancelled request as a plain context error.
func Classify(ctx context.Context, err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}

	cause := err
	if ctx != nil && ctx.Err() != nil {
		if c := context.Cause(ctx); c != nil {
			cause = c
		}
	}

	switch {
	case errors.Is(cause, ErrTimeout) || errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	case errors.Is(cause, ErrSuperseded) || errors.Is(err, ErrSuperseded):
		return OutcomeCancelled
	case errors.Is(cause, context.DeadlineExceeded):
		return OutcomeTimeout
	case errors.Is(cause, context.Canceled):
		return OutcomeCancelled
	default:
		return OutcomeFailed
	}
}
