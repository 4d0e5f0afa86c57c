// Package dispatch routes tool calls to the Pages operation handlers.
//
// The registry declares the five supported tools in a stable order, each
// with a name, description, and input constraint tree. Dispatch looks the
// tool up by name, validates the raw arguments against its schema, and
// only then invokes the handler; an unknown name is the one condition
// reported as an error to the caller, and a validation failure never
// reaches upstream.
package dispatch
