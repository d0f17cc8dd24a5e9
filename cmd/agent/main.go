package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	mcpagent "github.com/mcp-demos/go-mcpagent"
	agent "github.com/mcp-demos/go-mcpagent/pkg/agent"
	bedrock "github.com/mcp-demos/go-mcpagent/pkg/bedrock"
	mathtool "github.com/mcp-demos/go-mcpagent/pkg/mathtool"
	mcp "github.com/mcp-demos/go-mcpagent/pkg/mcp"
	tool "github.com/mcp-demos/go-mcpagent/pkg/tool"
	weather "github.com/mcp-demos/go-mcpagent/pkg/weather"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Reasoning model
	Bedrock `embed:"" help:"Bedrock configuration"`

	// Tools
	Servers string `name:"servers" env:"MCP_SERVERS" default:"servers.yaml" help:"MCP server configuration file"`
	Local   bool   `name:"local" help:"Run tools in-process instead of over MCP"`

	// Context
	ctx context.Context
}

type Bedrock struct {
	Region string `env:"AWS_REGION" help:"AWS region for Bedrock"`
	Model  string `env:"BEDROCK_MODEL" help:"Bedrock model id"`
}

type CLI struct {
	Globals

	Chat    ChatCmd      `cmd:"" default:"withargs" help:"Start a chat session"`
	Tools   ListToolsCmd `cmd:"" help:"Return a list of available tools"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Tool-calling agent backed by Anthropic models on Amazon Bedrock"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// HELPERS

// invoker builds the tool source: a local toolkit, or a router over the
// configured MCP servers
func (g *Globals) invoker() (mcpagent.Invoker, error) {
	if g.Local {
		clientopts := []client.ClientOpt{}
		if g.Debug || g.Verbose {
			clientopts = append(clientopts, client.OptTrace(os.Stderr, g.Verbose))
		}
		weatherTools, err := weather.NewTools(clientopts...)
		if err != nil {
			return nil, err
		}
		tools := append(mathtool.NewTools(), weatherTools...)
		return tool.NewToolkit(tools...)
	}

	config, err := mcp.LoadConfig(g.Servers)
	if err != nil {
		return nil, err
	}
	return mcp.NewRouter(g.ctx, config)
}

// runner builds the reasoning loop over a Bedrock generator
func (g *Globals) runner(invoker mcpagent.Invoker, opts ...agent.Opt) (*agent.Runner, error) {
	generator, err := bedrock.New(g.ctx, g.Region, g.Model)
	if err != nil {
		return nil, err
	}
	return agent.New(generator, invoker, opts...)
}

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
