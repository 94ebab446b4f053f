package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrNotFound is matched by 404 responses.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the platform.
type APIError struct {
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s: %d %s", e.Op, e.Status, http.StatusText(e.Status))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// InvalidDocumentError means the platform returned a body that failed
// schema validation or decoding.
type InvalidDocumentError struct {
	Op  string
	Err error
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("%s: invalid response document: %v", e.Op, e.Err)
}

func (e *InvalidDocumentError) Unwrap() error { return e.Err }

// IsRetryable reports whether repeating the request could succeed:
// transport failures, timeouts, 429 and 5xx. Cancellation is never
// retryable.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests || apiErr.Status >= 500
	}
	var invalid *InvalidDocumentError
	if errors.As(err, &invalid) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
