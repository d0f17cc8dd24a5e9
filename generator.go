package mcpagent

import (
	"context"

	// Packages
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// A Generator produces the next message in a conversation from a reasoning
// model. The returned message carries a result type indicating whether the
// model finished, requested tool calls, or failed.
type Generator interface {
	// Return the name of the backing model
	Model() string

	// Append the message to the session, advertise the given tools, and
	// return the model response
	WithSession(ctx context.Context, session *schema.Session, message *schema.Message, tools []schema.ToolInfo) (*schema.Message, error)
}
