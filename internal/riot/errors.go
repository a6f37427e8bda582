package riot

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the API reports 404: the player is not in a game,
// or the match or account does not exist.
var ErrNotFound = errors.New("riot: not found")

// APIError is returned for any non-200 response
type APIError struct {
	StatusCode int
	Endpoint   string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("riot: %s returned status %d", e.Endpoint, e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
