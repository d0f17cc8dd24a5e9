package mcp

import (
	"context"
	"encoding/json"
	"os/exec"
	"sort"
	"strings"
	"sync"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	mcpagent "github.com/mcp-demos/go-mcpagent"
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Session is the subset of an MCP client session used by the router
type Session interface {
	ListTools(ctx context.Context, params *sdk.ListToolsParams) (*sdk.ListToolsResult, error)
	CallTool(ctx context.Context, params *sdk.CallToolParams) (*sdk.CallToolResult, error)
	Close() error
}

// Router merges the tools of several MCP servers behind a single
// invoker, routing each call to the server which advertised the tool
type Router struct {
	mu       sync.RWMutex
	sessions map[string]Session // server name -> session
	routes   map[string]string  // tool name -> server name
	tools    []schema.ToolInfo
}

var _ mcpagent.Invoker = (*Router)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	clientName    = "mcpagent"
	clientVersion = "1.0.0"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewRouter connects to each configured server and merges their tools.
// A tool name advertised by more than one server is a configuration
// error, reported here rather than silently shadowed at call time.
func NewRouter(ctx context.Context, config *Config) (*Router, error) {
	if config == nil {
		return nil, mcpagent.ErrBadParameter.With("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	router := &Router{
		sessions: make(map[string]Session, len(config.Servers)),
		routes:   make(map[string]string),
	}

	// Deterministic connection order
	names := make([]string, 0, len(config.Servers))
	for name := range config.Servers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		session, err := connect(ctx, config.Servers[name])
		if err != nil {
			router.Close()
			return nil, mcpagent.ErrInternalServerError.Withf("server %q: %v", name, err)
		}
		if err := router.AddSession(ctx, name, session); err != nil {
			session.Close()
			router.Close()
			return nil, err
		}
	}
	return router, nil
}

// AddSession merges the tools of a connected session into the router
func (r *Router) AddSession(ctx context.Context, name string, session Session) error {
	result, err := session.ListTools(ctx, nil)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessions == nil {
		r.sessions = make(map[string]Session)
	}
	if r.routes == nil {
		r.routes = make(map[string]string)
	}
	if _, exists := r.sessions[name]; exists {
		return mcpagent.ErrConflict.Withf("server %q already registered", name)
	}
	for _, tool := range result.Tools {
		if other, exists := r.routes[tool.Name]; exists {
			return mcpagent.ErrConflict.Withf("tool %q advertised by both %q and %q", tool.Name, other, name)
		}
	}
	for _, tool := range result.Tools {
		// The SDK decodes the wire schema into a map[string]any; round-trip
		// through JSON to obtain the typed schema the descriptor requires
		inputSchema, err := schemaFromAny(tool.InputSchema)
		if err != nil {
			return mcpagent.ErrInternalServerError.Withf("tool %q: %v", tool.Name, err)
		}
		r.routes[tool.Name] = name
		r.tools = append(r.tools, schema.ToolInfo{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: inputSchema,
		})
	}
	r.sessions[name] = session

	sort.Slice(r.tools, func(i, j int) bool {
		return r.tools[i].Name < r.tools[j].Name
	})
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns the merged tool descriptors, sorted by name
func (r *Router) Tools() []schema.ToolInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]schema.ToolInfo, len(r.tools))
	copy(result, r.tools)
	return result
}

// Run routes a tool call to the server which advertised it. A failed
// tool result on the wire is returned as an error.
func (r *Router) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	r.mu.RLock()
	server, exists := r.routes[name]
	session := r.sessions[server]
	r.mu.RUnlock()
	if !exists {
		return nil, mcpagent.ErrNotFound.Withf("tool %q not found", name)
	}

	result, err := session.CallTool(ctx, &sdk.CallToolParams{
		Name:      name,
		Arguments: input,
	})
	if err != nil {
		return nil, err
	}

	text := textFromContent(result.Content)
	if result.IsError {
		return nil, mcpagent.ErrInternalServerError.With(text)
	}
	return text, nil
}

// Close closes all sessions, returning the first error
func (r *Router) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result error
	for name, session := range r.sessions {
		if err := session.Close(); err != nil && result == nil {
			result = err
		}
		delete(r.sessions, name)
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// connect dials a single server over the configured transport
func connect(ctx context.Context, config ServerConfig) (*sdk.ClientSession, error) {
	client := sdk.NewClient(&sdk.Implementation{Name: clientName, Version: clientVersion}, nil)
	var transport sdk.Transport
	if config.URL != "" {
		transport = &sdk.StreamableClientTransport{Endpoint: config.URL}
	} else {
		transport = &sdk.CommandTransport{Command: exec.Command(config.Command, config.Args...)}
	}
	return client.Connect(ctx, transport, nil)
}

// schemaFromAny converts an untyped schema value into a typed schema
func schemaFromAny(value any) (*jsonschema.Schema, error) {
	if value == nil {
		return nil, nil
	}
	if typed, ok := value.(*jsonschema.Schema); ok {
		return typed, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var typed jsonschema.Schema
	if err := json.Unmarshal(data, &typed); err != nil {
		return nil, err
	}
	return &typed, nil
}

// textFromContent flattens content blocks into a single string
func textFromContent(content []sdk.Content) string {
	var parts []string
	for _, block := range content {
		if text, ok := block.(*sdk.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
