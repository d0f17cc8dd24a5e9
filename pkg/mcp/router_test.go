package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	mcpagent "github.com/mcp-demos/go-mcpagent"
	mcp "github.com/mcp-demos/go-mcpagent/pkg/mcp"
	mathtool "github.com/mcp-demos/go-mcpagent/pkg/mathtool"
	tool "github.com/mcp-demos/go-mcpagent/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// connectToolkit connects an in-memory client session to a server
// exposing the given tools
func connectToolkit(t *testing.T, name string, tools ...tool.Tool) *sdk.ClientSession {
	t.Helper()

	toolkit, err := tool.NewToolkit(tools...)
	if err != nil {
		t.Fatal(err)
	}
	server, err := mcp.NewServer(name, "1.0.0", toolkit)
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
	return session
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_router_001(t *testing.T) {
	assert := assert.New(t)

	router := &mcp.Router{}
	err := router.AddSession(t.Context(), "math", connectToolkit(t, "math", mathtool.NewTools()...))
	assert.NoError(err)
	defer router.Close()

	tools := router.Tools()
	assert.Len(tools, 6)

	// Sorted by name
	assert.Equal("add", tools[0].Name)
	assert.Equal("calculate_average", tools[1].Name)
}

func Test_router_002(t *testing.T) {
	assert := assert.New(t)

	router := &mcp.Router{}
	err := router.AddSession(t.Context(), "math", connectToolkit(t, "math", mathtool.NewTools()...))
	assert.NoError(err)
	defer router.Close()

	result, err := router.Run(context.Background(), "add", json.RawMessage(`{"a":15,"b":27}`))
	assert.NoError(err)
	assert.Equal("42", result)

	// Unknown tool
	_, err = router.Run(context.Background(), "no_such_tool", json.RawMessage(`{}`))
	assert.ErrorIs(err, mcpagent.ErrNotFound)

	// A failed tool result comes back as an error
	_, err = router.Run(context.Background(), "divide", json.RawMessage(`{"a":1,"b":0}`))
	assert.Error(err)
	assert.Contains(err.Error(), "divide by zero")
}

func Test_router_003(t *testing.T) {
	assert := assert.New(t)

	// Two servers advertising the same tool name is a conflict
	router := &mcp.Router{}
	err := router.AddSession(t.Context(), "math", connectToolkit(t, "math", mathtool.NewTools()...))
	assert.NoError(err)
	defer router.Close()

	session := connectToolkit(t, "math2", mathtool.NewTools()...)
	defer session.Close()
	err = router.AddSession(t.Context(), "math2", session)
	assert.ErrorIs(err, mcpagent.ErrConflict)

	// The first server's tools are unaffected
	assert.Len(router.Tools(), 6)
}

func Test_router_004(t *testing.T) {
	assert := assert.New(t)

	// Registering the same server name twice is a conflict
	router := &mcp.Router{}
	err := router.AddSession(t.Context(), "math", connectToolkit(t, "math", mathtool.NewTools()...))
	assert.NoError(err)
	defer router.Close()

	session := connectToolkit(t, "other")
	defer session.Close()
	err = router.AddSession(t.Context(), "math", session)
	assert.ErrorIs(err, mcpagent.ErrConflict)
}
