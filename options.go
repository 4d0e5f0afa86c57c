package pagesmcp

import (
	"log/slog"
)

type config struct {
	logger  *slog.Logger
	name    string
	version string
}

// Option configures a Server during construction.
type Option func(*config)

// WithLogger sets the logger used for dispatch and failure logging.
// Defaults to NopLogger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithServerInfo overrides the implementation name and version advertised
// during MCP initialization.
func WithServerInfo(name, version string) Option {
	return func(c *config) {
		c.name = name
		c.version = version
	}
}
