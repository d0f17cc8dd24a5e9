/*
mcp adapts a toolkit to the Model Context Protocol, using the official
go-sdk for the protocol lifecycle and transports. A server exposes a
toolkit over stdio or streamable HTTP; a router merges the tools of
several servers behind a single invoker.
*/
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	// Packages
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	tool "github.com/mcp-demos/go-mcpagent/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewServer creates an MCP server exposing the tools of a toolkit. Tool
// failures become failed tool results on the wire rather than protocol
// errors, so the calling model can see and recover from them.
func NewServer(name, version string, toolkit *tool.Toolkit) (*sdk.Server, error) {
	server := sdk.NewServer(&sdk.Implementation{Name: name, Version: version}, nil)
	for _, t := range toolkit.Tools() {
		t := t
		server.AddTool(&sdk.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		}, func(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
			output, err := toolkit.Run(ctx, t.Name, req.Params.Arguments)
			if err != nil {
				return &sdk.CallToolResult{
					Content: []sdk.Content{&sdk.TextContent{Text: err.Error()}},
					IsError: true,
				}, nil
			}
			text, err := textFromOutput(output)
			if err != nil {
				return nil, err
			}
			return &sdk.CallToolResult{
				Content: []sdk.Content{&sdk.TextContent{Text: text}},
			}, nil
		})
	}
	return server, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ServeStdio runs the server over stdin and stdout until the context
// is done or the client disconnects
func ServeStdio(ctx context.Context, server *sdk.Server) error {
	return server.Run(ctx, &sdk.StdioTransport{})
}

// ServeHTTP runs the server over streamable HTTP on the given address
// until the context is done
func ServeHTTP(ctx context.Context, server *sdk.Server, addr string) error {
	handler := sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server
	}, nil)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// textFromOutput renders a tool output as text content
func textFromOutput(output any) (string, error) {
	switch output := output.(type) {
	case string:
		return output, nil
	case nil:
		return "", nil
	default:
		data, err := json.Marshal(output)
		if err != nil {
			return "", fmt.Errorf("failed to marshal tool output: %w", err)
		}
		return string(data), nil
	}
}
