package tool

import (
	"context"
	"encoding/json"
	"sort"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcpagent "github.com/mcp-demos/go-mcpagent"
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
	types "github.com/mcp-demos/go-mcpagent/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is an interface for a tool with a name, description and JSON schema
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the JSON schema for the tool input
	Schema() (*jsonschema.Schema, error)

	// Run the tool with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}

// Toolkit is a collection of tools with unique names
type Toolkit struct {
	tools map[string]Tool
}

var _ mcpagent.Invoker = (*Toolkit)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the toolkit, sorted by name
func (tk *Toolkit) Tools() []schema.ToolInfo {
	result := make([]schema.ToolInfo, 0, len(tk.tools))
	for _, t := range tk.tools {
		s, err := t.Schema()
		if err != nil {
			s = nil
		}
		result = append(result, schema.ToolInfo{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: s,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Register adds one or more tools to the toolkit.
// Returns an error if any tool has an invalid or duplicate name.
func (tk *Toolkit) Register(tools ...Tool) error {
	for _, t := range tools {
		name := t.Name()
		if !types.IsIdentifier(name) {
			return mcpagent.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return mcpagent.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
	}
	return nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	return tk.tools[name]
}

// Run executes a tool by name with the given JSON input.
// Returns an error if the tool is not found, the input does not match the
// schema, or the tool execution fails. The error is never fatal to the
// caller: the agent loop folds it back into the conversation as a failed
// tool result.
func (tk *Toolkit) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, mcpagent.ErrNotFound.Withf("tool not found: %q", name)
	}

	// Validate input against schema if provided
	if len(input) > 0 {
		if err := tk.validate(tool, input); err != nil {
			return nil, err
		}
	}

	// Run the tool
	return tool.Run(ctx, input)
}

// Close releases resources held by the toolkit. In-process tools hold none.
func (tk *Toolkit) Close() error {
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// validate checks the JSON input against the tool's schema, if it has one
func (tk *Toolkit) validate(tool Tool, input json.RawMessage) error {
	s, err := tool.Schema()
	if err != nil {
		return mcpagent.ErrBadParameter.Withf("schema generation failed: %v", err)
	}
	if s == nil {
		return nil
	}

	// Unmarshal into a map for validation
	var mapInput map[string]any
	if err := json.Unmarshal(input, &mapInput); err != nil {
		return mcpagent.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
	}

	// Validate against schema
	resolved, err := s.Resolve(nil)
	if err != nil {
		return mcpagent.ErrBadParameter.Withf("schema resolution failed: %v", err)
	}
	if err := resolved.Validate(mapInput); err != nil {
		return mcpagent.ErrBadParameter.Withf("input validation failed: %v", err)
	}
	return nil
}
