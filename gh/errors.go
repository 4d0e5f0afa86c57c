package gh

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Compile-time verification that APIError satisfies error.
var _ error = (*APIError)(nil)

// APIError is a classified upstream failure. StatusCode is zero when the
// request never reached the API (network or auth transport faults). Body
// holds any structured diagnostic data the upstream returned.
type APIError struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("github: %s (status %d)", e.Message, e.StatusCode)
	}

	return "github: " + e.Message
}

// IsNotFound reports whether err is an upstream 404. Handlers use this to
// tell a domain-expected absence apart from genuine failures.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
