package marketplace

import (
	"errors"
	"fmt"
)

// APIError is an application-level failure: the backend answered, but with a
// non-success status or envelope. Message carries the server-provided text
// when one was present ("msg" or "error.message"), otherwise it is empty and
// callers supply their per-action default.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error (%d)", e.Status)
}

// UserMessage returns the server-provided message for err when it is an
// APIError carrying one, else the fallback. Transport failures always map to
// the fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
