package pagesmcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/github-pages-mcp/gh"
	"github.com/wagiedev/github-pages-mcp/internal/dispatch"
	"github.com/wagiedev/github-pages-mcp/internal/pages"
	"github.com/wagiedev/github-pages-mcp/internal/schema"
)

// Version is the advertised server version.
const Version = "1.0.0"

const defaultServerName = "github-pages-mcp"

// Server exposes the GitHub Pages tools over the Model Context Protocol.
// It wraps the official MCP SDK server and routes every tool call through
// schema validation before the handler runs.
type Server struct {
	mcp        *mcp.Server
	dispatcher *dispatch.Dispatcher
	config     config
}

// New builds a Server around the given upstream client. The client is the
// only shared dependency; it is never reconfigured after construction.
func New(client gh.Client, opts ...Option) *Server {
	cfg := config{
		logger:  NopLogger(),
		name:    defaultServerName,
		version: Version,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{
		dispatcher: dispatch.New(pages.NewHandlers(client), cfg.logger),
		config:     cfg,
	}

	srv := mcp.NewServer(&mcp.Implementation{Name: cfg.name, Version: cfg.version}, nil)
	for _, spec := range s.dispatcher.Specs() {
		srv.AddTool(&mcp.Tool{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: schema.JSONSchema(spec.Schema),
		}, s.toolHandler(spec.Name))
	}
	s.mcp = srv

	return s
}

// Tools returns the names of the registered tools in registration order.
func (s *Server) Tools() []string {
	specs := s.dispatcher.Specs()

	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}

	return names
}

// CallTool invokes a tool by name with the given arguments, bypassing the
// transport. This is the programmatic entry point used by tests and
// embedders; transport-delivered calls take the same path.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal arguments: %w", err)
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: data,
		},
	}

	return s.toolHandler(name)(ctx, req)
}

// Run serves MCP requests on the given transport until the context ends
// or the transport closes.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcp.Run(ctx, transport)
}

// RunStdio serves MCP requests on stdin/stdout.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

// toolHandler adapts one registered tool to the MCP SDK handler signature.
// Dispatch outcomes are encoded in the result, never returned as errors:
// the envelope JSON becomes text content and transport-level failures set
// the result's error flag.
func (s *Server) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := parseArguments(req)
		if err != nil {
			return errorResult("Failed to parse arguments: " + err.Error()), nil
		}

		result, err := s.dispatcher.Dispatch(ctx, name, args)
		if err != nil {
			// Unknown tool name; the registry and the transport
			// listing can only disagree when a caller bypasses
			// discovery.
			return errorResult(err.Error()), nil
		}

		data, err := json.Marshal(result.Payload)
		if err != nil {
			return errorResult("Failed to marshal result: " + err.Error()), nil
		}

		res := textResult(string(data))
		res.IsError = result.IsError

		return res, nil
	}
}

// textResult creates a CallToolResult with text content.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// errorResult creates a CallToolResult flagged as an error.
func errorResult(message string) *mcp.CallToolResult {
	res := textResult(message)
	res.IsError = true

	return res
}

// parseArguments unmarshals a request's raw arguments into a map.
func parseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return make(map[string]any), nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, err
	}

	return args, nil
}
