package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ProviderError classifies a failed provider call. Transient failures
// (timeouts, rate limits, 5xx) are retried by the orchestrator;
// non-transient failures (malformed response, content-policy rejection)
// degrade the chunk without retry.
type ProviderError struct {
	StatusCode int
	Transient  bool
	Err        error
}

func (e *ProviderError) Error() string {
	kind := "non-transient"
	if e.Transient {
		kind = "transient"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider error (%s, status %d): %v", kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider error (%s): %v", kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps err as retryable.
func NewTransientError(status int, err error) *ProviderError {
	return &ProviderError{StatusCode: status, Transient: true, Err: err}
}

// NewPermanentError wraps err as not retryable.
func NewPermanentError(status int, err error) *ProviderError {
	return &ProviderError{StatusCode: status, Transient: false, Err: err}
}

// IsTransient reports whether err should be retried. Network-level timeouts
// and context deadline expiry count as transient even when not wrapped in a
// ProviderError.
func IsTransient(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Transient
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

// ClassifyStatus maps an HTTP status to retryability: 408, 429 and 5xx are
// transient, every other non-2xx status is permanent.
func ClassifyStatus(status int, err error) *ProviderError {
	if status == 408 || status == 429 || status >= 500 {
		return NewTransientError(status, err)
	}
	return NewPermanentError(status, err)
}
