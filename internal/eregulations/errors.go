package eregulations

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the upstream reports 404 for a procedure or
// step ID. Handlers match on it to suggest a recovery path to the LLM.
var ErrNotFound = errors.New("not found")

// StatusError is returned for any other non-2xx upstream response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.URL)
}
