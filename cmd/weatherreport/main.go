package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	agent "github.com/mcp-demos/go-mcpagent/pkg/agent"
	bedrock "github.com/mcp-demos/go-mcpagent/pkg/bedrock"
	mcp "github.com/mcp-demos/go-mcpagent/pkg/mcp"
	report "github.com/mcp-demos/go-mcpagent/pkg/report"
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Region   string `env:"AWS_REGION" help:"AWS region for Bedrock"`
	Model    string `env:"BEDROCK_MODEL" help:"Bedrock model id"`
	Servers  string `name:"servers" env:"MCP_SERVERS" help:"MCP server configuration file"`
	Command  string `name:"command" default:"weatherserver" help:"Weather server command when no configuration file is given"`
	Output   string `name:"output" default:"weather_summary.txt" help:"Summary file to append the report to"`
	Title    string `name:"title" default:"MCP 10-City Weather" help:"Title for the summary entry"`
	MaxTurns uint   `name:"max-turns" default:"25" help:"Maximum reasoning iterations"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// reportCities are the cities covered by the batch report
var reportCities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "Denver",
}

const promptTemplate = `Generate a comprehensive weather report for these major US cities: %s.

For each city, please:
1. Use the get_city_weather tool to get the weather forecast
2. Present the information in a clear, organized format with each city's weather clearly separated
3. Include temperature, conditions, and forecast details

Format the output as a clean summary with clear headings for each city.`

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Generate a multi-city weather report over MCP and append it to a summary file"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd.FatalIfErrorf(run(ctx, &cli))
}

func run(ctx context.Context, cli *CLI) error {
	// Connect to the weather server
	config, err := serverConfig(cli)
	if err != nil {
		return err
	}
	router, err := mcp.NewRouter(ctx, config)
	if err != nil {
		return err
	}
	defer router.Close()
	fmt.Fprintln(os.Stderr, "connected, tools:", len(router.Tools()))

	// Create the runner
	generator, err := bedrock.New(ctx, cli.Region, cli.Model)
	if err != nil {
		return err
	}
	runner, err := agent.New(generator, router, agent.WithMaxIterations(cli.MaxTurns))
	if err != nil {
		return err
	}

	// Generate the report
	prompt := fmt.Sprintf(promptTemplate, strings.Join(reportCities, ", "))
	session := schema.Session{}
	result, err := runner.Run(ctx, &session, prompt)
	if err != nil {
		return err
	}

	// Print and append to the summary file
	text := result.Text()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(text)
	fmt.Println(strings.Repeat("=", 60))
	if err := report.Append(cli.Output, cli.Title, text); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "report appended to", cli.Output)
	return nil
}

// serverConfig loads the configuration file, or falls back to spawning
// the weather server command over stdio
func serverConfig(cli *CLI) (*mcp.Config, error) {
	if cli.Servers != "" {
		return mcp.LoadConfig(cli.Servers)
	}
	return &mcp.Config{
		Servers: map[string]mcp.ServerConfig{
			"weather": {Command: cli.Command},
		},
	}, nil
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
