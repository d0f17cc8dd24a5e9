package mcp_test

import (
	"context"
	"testing"

	// Packages
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	mcp "github.com/mcp-demos/go-mcpagent/pkg/mcp"
	mathtool "github.com/mcp-demos/go-mcpagent/pkg/mathtool"
	tool "github.com/mcp-demos/go-mcpagent/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// connectMathServer connects an in-memory client session to a math server
func connectMathServer(t *testing.T) *sdk.ClientSession {
	t.Helper()

	toolkit, err := tool.NewToolkit(mathtool.NewTools()...)
	if err != nil {
		t.Fatal(err)
	}
	server, err := mcp.NewServer("math", "1.0.0", toolkit)
	if err != nil {
		t.Fatal(err)
	}

	serverTransport, clientTransport := sdk.NewInMemoryTransports()
	serverSession, err := server.Connect(t.Context(), serverTransport, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := sdk.NewClient(&sdk.Implementation{Name: "test", Version: "1.0.0"}, nil)
	session, err := client.Connect(t.Context(), clientTransport, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_server_001(t *testing.T) {
	assert := assert.New(t)
	session := connectMathServer(t)

	result, err := session.ListTools(context.Background(), nil)
	assert.NoError(err)
	assert.Len(result.Tools, 6)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotNil(tool.InputSchema)
	}
	assert.Contains(names, "add")
	assert.Contains(names, "calculate_average")
}

func Test_server_002(t *testing.T) {
	assert := assert.New(t)
	session := connectMathServer(t)

	result, err := session.CallTool(context.Background(), &sdk.CallToolParams{
		Name:      "add",
		Arguments: map[string]any{"a": 15, "b": 27},
	})
	assert.NoError(err)
	assert.False(result.IsError)

	text, ok := result.Content[0].(*sdk.TextContent)
	assert.True(ok)
	assert.Equal("42", text.Text)
}

func Test_server_003(t *testing.T) {
	assert := assert.New(t)
	session := connectMathServer(t)

	// Divide by zero is a failed tool result, not a protocol error
	result, err := session.CallTool(context.Background(), &sdk.CallToolParams{
		Name:      "divide",
		Arguments: map[string]any{"a": 1, "b": 0},
	})
	assert.NoError(err)
	assert.True(result.IsError)

	text, ok := result.Content[0].(*sdk.TextContent)
	assert.True(ok)
	assert.Contains(text.Text, "divide by zero")
}
