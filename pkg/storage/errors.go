package storage

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("storage: unauthorized")
	ErrNotFound     = errors.New("storage: not found")
	ErrForbidden    = errors.New("storage: forbidden")
)

// StatusError reports a non-2xx response that is not covered by one of the
// sentinel errors above.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("storage: unexpected status %d for %s", e.StatusCode, e.Path)
}
