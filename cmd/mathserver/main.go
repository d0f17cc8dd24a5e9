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
	mathtool "github.com/mcp-demos/go-mcpagent/pkg/mathtool"
	mcp "github.com/mcp-demos/go-mcpagent/pkg/mcp"
	tool "github.com/mcp-demos/go-mcpagent/pkg/tool"
	version "github.com/mcp-demos/go-mcpagent/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Transport string `name:"transport" enum:"stdio,http" default:"stdio" help:"Transport to serve on"`
	Addr      string `name:"addr" default:"localhost:8021" help:"Listen address for the http transport"`
	Version   bool   `name:"version" help:"Print version and exit"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Arithmetic tool server for the Model Context Protocol"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	if cli.Version {
		fmt.Println(string(version.JSON(execName())))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	toolkit, err := tool.NewToolkit(mathtool.NewTools()...)
	cmd.FatalIfErrorf(err)

	server, err := mcp.NewServer("math", version.Version(), toolkit)
	cmd.FatalIfErrorf(err)

	switch cli.Transport {
	case "http":
		fmt.Fprintln(os.Stderr, "math server listening on", cli.Addr)
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
