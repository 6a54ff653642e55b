package practicum

import (
	"errors"
	"fmt"
)

var (
	ErrTransport     = errors.New("status API is unreachable")
	ErrRemoteAPI     = errors.New("status API returned an unexpected status")
	ErrDecode        = errors.New("status API response is not valid JSON")
	ErrInvalidCursor = errors.New("from_date cursor must be non-negative")
)

// APIError carries the HTTP status of a non-200 response.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d", ErrRemoteAPI, e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	return target == ErrRemoteAPI
}
