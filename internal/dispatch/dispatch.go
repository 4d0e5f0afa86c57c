package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/github-pages-mcp/internal/pages"
	"github.com/wagiedev/github-pages-mcp/internal/schema"
)

// Dispatcher routes raw tool calls through validation to their handlers.
// It performs no upstream I/O of its own.
type Dispatcher struct {
	specs  []Spec
	byName map[string]int
	log    *slog.Logger
}

// New builds a Dispatcher over the standard tool registry.
func New(h *pages.Handlers, log *slog.Logger) *Dispatcher {
	specs := Specs(h)

	byName := make(map[string]int, len(specs))
	for i, spec := range specs {
		byName[spec.Name] = i
	}

	return &Dispatcher{specs: specs, byName: byName, log: log}
}

// Specs returns the registered tools in registration order.
func (d *Dispatcher) Specs() []Spec {
	return d.specs
}

// Dispatch validates raw arguments against the named tool's schema and
// invokes its handler. An unknown tool name is the only error return; the
// caller at the edge converts it into an error envelope. A validation
// failure yields an error-flagged result listing every violation, and the
// handler is never invoked.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) (*pages.Result, error) {
	i, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("Unknown tool: %s", name)
	}
	spec := d.specs[i]

	id := ulid.Make().String()
	d.log.DebugContext(ctx, "dispatching tool", "tool", name, "invocation_id", id)

	if violations := schema.Validate(spec.Schema, raw); len(violations) > 0 {
		d.log.DebugContext(ctx, "arguments rejected", "tool", name, "invocation_id", id, "violations", len(violations))

		return pages.Invalid("Invalid arguments: " + schema.Join(violations)), nil
	}

	result := spec.Handler(ctx, raw)
	if result.IsError {
		d.log.ErrorContext(ctx, "tool failed", "tool", name, "invocation_id", id)
	}

	return result, nil
}
