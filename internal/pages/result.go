package pages

import (
	"encoding/json"
	"errors"

	"github.com/wagiedev/github-pages-mcp/gh"
)

// Result is the uniform outcome of one tool invocation. Payload marshals
// to the response envelope. IsError marks transport and upstream failures;
// domain-expected negative outcomes keep IsError false and signal through
// the payload's success flag instead.
type Result struct {
	Payload any
	IsError bool
}

// ErrorPayload is the envelope body for every non-success outcome.
type ErrorPayload struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

// OK wraps a success payload.
func OK(payload any) *Result {
	return &Result{Payload: payload}
}

// Rejected reports a normal negative outcome: a local precondition failure
// or a domain-expected absence. The protocol-level error flag stays unset.
func Rejected(message string) *Result {
	return &Result{Payload: ErrorPayload{Error: message}}
}

// Invalid reports rejected input. Unlike Rejected it sets the
// protocol-level error flag, matching how validation failures surface.
func Invalid(message string) *Result {
	return &Result{Payload: ErrorPayload{Error: message}, IsError: true}
}

// UpstreamFailure classifies an error returned by the GitHub client,
// carrying through any structured diagnostic body the upstream provided.
func UpstreamFailure(err error) *Result {
	payload := ErrorPayload{Error: err.Error()}

	var apiErr *gh.APIError
	if errors.As(err, &apiErr) {
		payload.Details = apiErr.Body
	}

	return &Result{Payload: payload, IsError: true}
}
