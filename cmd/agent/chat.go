package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	// Packages
	mcpagent "github.com/mcp-demos/go-mcpagent"
	agent "github.com/mcp-demos/go-mcpagent/pkg/agent"
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	System   string `name:"system" help:"System prompt"`
	MaxTurns uint   `name:"max-turns" default:"10" help:"Maximum reasoning iterations per message"`
	Demo     bool   `name:"demo" help:"Run scripted example prompts instead of an interactive session"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// demoPrompts exercise the tools without user input
var demoPrompts = []string{
	"What's the weather in Denver?",
	"Calculate 25 plus 17",
	"What's 15 times 8?",
	"What is the average of 10, 20, 30 and 40?",
	"Get the weather forecast for San Francisco",
}

var exitCommands = map[string]bool{
	"quit": true, "exit": true, "bye": true, "q": true, "goodbye": true,
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ChatCmd) Run(globals *Globals) error {
	invoker, err := globals.invoker()
	if err != nil {
		return err
	}
	defer invoker.Close()

	opts := []agent.Opt{agent.WithMaxIterations(cmd.MaxTurns)}
	if cmd.System != "" {
		opts = append(opts, agent.WithSystemPrompt(cmd.System))
	}
	runner, err := globals.runner(invoker, opts...)
	if err != nil {
		return err
	}

	if cmd.Demo {
		return cmd.demo(globals, runner)
	}
	return cmd.interactive(globals, runner)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// interactive reads user input until an exit command or EOF
func (cmd *ChatCmd) interactive(globals *Globals, runner *agent.Runner) error {
	fmt.Println("Chat session started. Type 'quit' to exit.")
	fmt.Println("Available tools:", toolNames(runner.Tools()))
	fmt.Println()

	session := schema.Session{}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if exitCommands[strings.ToLower(input)] {
			fmt.Println("Goodbye!")
			break
		}
		if err := ask(globals, runner, &session, input); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// demo runs the scripted prompts in order, one session
func (cmd *ChatCmd) demo(globals *Globals, runner *agent.Runner) error {
	session := schema.Session{}
	for _, prompt := range demoPrompts {
		fmt.Println("You:", prompt)
		if err := ask(globals, runner, &session, prompt); err != nil {
			return err
		}
	}
	return nil
}

// ask sends one utterance through the runner and prints the reply. The
// iteration limit is reported to the user rather than ending the session.
func ask(globals *Globals, runner *agent.Runner, session *schema.Session, input string) error {
	result, err := runner.Run(globals.ctx, session, input)
	switch {
	case errors.Is(err, mcpagent.ErrMaxIterations):
		fmt.Println("Agent: (max turns exceeded without a final answer)")
	case err != nil:
		return err
	default:
		fmt.Println("Agent:", result.Text())
	}
	fmt.Println()
	return nil
}

// toolNames formats tool descriptors as a comma-separated list
func toolNames(tools []schema.ToolInfo) string {
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	return strings.Join(names, ", ")
}
