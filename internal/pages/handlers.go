package pages

import (
	"github.com/wagiedev/github-pages-mcp/gh"
)

// Handlers executes the Pages tool operations against one upstream client.
// The client is injected at construction and never reconfigured; handlers
// hold no other state, so every invocation is an independent transaction.
type Handlers struct {
	client gh.Client
}

// NewHandlers returns a Handlers bound to the given upstream client.
func NewHandlers(client gh.Client) *Handlers {
	return &Handlers{client: client}
}

// stringArg returns the validated string at key, or "" when absent.
func stringArg(raw map[string]any, key string) string {
	s, _ := raw[key].(string)

	return s
}

// optionalString reports whether key was provided alongside its value.
// A JSON null counts as provided with an empty value.
func optionalString(raw map[string]any, key string) (string, bool) {
	value, present := raw[key]
	if !present {
		return "", false
	}

	s, _ := value.(string)

	return s, true
}

// objectArg returns the validated object at key, or nil when absent.
func objectArg(raw map[string]any, key string) map[string]any {
	m, _ := raw[key].(map[string]any)

	return m
}
