package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Code classifies a provider failure.
type Code int

const (
	CodeUnavailable   Code = iota // Network failure or 5xx
	CodeRateLimited               // 429
	CodeAuth                      // Bad or missing credentials
	CodeInvalidOutput             // Output did not match the requested schema
	CodeTruncated                 // Output hit MaxTokens
)

func (c Code) String() string {
	switch c {
	case CodeUnavailable:
		return "unavailable"
	case CodeRateLimited:
		return "rate_limited"
	case CodeAuth:
		return "auth"
	case CodeInvalidOutput:
		return "invalid_output"
	case CodeTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Error is returned by every provider for failures it could classify.
type Error struct {
	Code Code

	// RetryAfter is the server-suggested wait, set only for CodeRateLimited.
	RetryAfter time.Duration

	// Content holds the raw output for CodeInvalidOutput and CodeTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeRateLimited:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("llm rate limited (retry after %s): %v", e.RetryAfter, e.Err)
		}
		return fmt.Sprintf("llm rate limited: %v", e.Err)
	case CodeTruncated:
		return "llm response truncated: max tokens reached"
	}
	if e.Err == nil {
		return "llm " + e.Code.String()
	}
	return fmt.Sprintf("llm %s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether sending the same request again may succeed.
// Invalid output is retryable; RetryProvider limits it to one retry.
func (e *Error) Retryable() bool {
	switch e.Code {
	case CodeAuth, CodeTruncated:
		return false
	}
	return true
}

// CodeOf returns the classification of err, and false when err is not an
// *Error.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// fromStatus classifies an SDK error by the HTTP status it carried.
// A zero status means the request never got a response.
func fromStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Code: CodeRateLimited, Err: err}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Code: CodeAuth, Err: err}
	default:
		return &Error{Code: CodeUnavailable, Err: err}
	}
}

func invalidOutput(content json.RawMessage, format string, args ...any) *Error {
	return &Error{Code: CodeInvalidOutput, Content: content, Err: fmt.Errorf(format, args...)}
}
