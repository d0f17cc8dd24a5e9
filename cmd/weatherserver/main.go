package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	mcp "github.com/mcp-demos/go-mcpagent/pkg/mcp"
	tool "github.com/mcp-demos/go-mcpagent/pkg/tool"
	version "github.com/mcp-demos/go-mcpagent/pkg/version"
	weather "github.com/mcp-demos/go-mcpagent/pkg/weather"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Transport string `name:"transport" enum:"stdio,http" default:"stdio" help:"Transport to serve on"`
	Addr      string `name:"addr" default:"localhost:8022" help:"Listen address for the http transport"`
	Debug     bool   `name:"debug" help:"Trace outbound forecast API requests"`
	Verbose   bool   `name:"verbose" help:"Enable verbose output"`
	Version   bool   `name:"version" help:"Print version and exit"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Weather tool server for the Model Context Protocol, backed by the National Weather Service forecast API"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	if cli.Version {
		fmt.Println(string(version.JSON(execName())))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Client options
	clientopts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, cli.Verbose))
	}

	tools, err := weather.NewTools(clientopts...)
	cmd.FatalIfErrorf(err)
	toolkit, err := tool.NewToolkit(tools...)
	cmd.FatalIfErrorf(err)

	server, err := mcp.NewServer("weather", version.Version(), toolkit)
	cmd.FatalIfErrorf(err)

	switch cli.Transport {
	case "http":
		fmt.Fprintln(os.Stderr, "weather server listening on", cli.Addr)
		err = mcp.ServeHTTP(ctx, server, cli.Addr)
	default:
		err = mcp.ServeStdio(ctx, server)
	}
	if err != nil && ctx.Err() == nil {
		cmd.FatalIfErrorf(err)
	}
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
