package mcpagent

import (
	"context"
	"encoding/json"

	// Packages
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// An Invoker executes named tools against a registry, either in-process or
// across one or more tool server connections.
type Invoker interface {
	// Return the advertised tool descriptors
	Tools() []schema.ToolInfo

	// Run a tool by name with JSON-encoded arguments
	Run(ctx context.Context, name string, input json.RawMessage) (any, error)

	// Release any connections held by the invoker
	Close() error
}
