package api

import "fmt"

// Error is a backend-reported failure: the request completed but the server
// answered with a non-2xx status. Message carries the backend's "error" field
// when one was present, so it can be shown to the user verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("server: status %d", e.Status)
}
