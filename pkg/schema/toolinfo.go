package schema

import (
	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolInfo is the descriptor advertised to the reasoning model for one tool:
// its name, what it does, and the JSON schema for its input. Descriptors are
// built once at startup and never mutated afterwards.
type ToolInfo struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	InputSchema *jsonschema.Schema `json:"input_schema,omitempty"`
}
