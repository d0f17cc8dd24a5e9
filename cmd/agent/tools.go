package main

import (
	"fmt"

	// Packages
	version "github.com/mcp-demos/go-mcpagent/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListToolsCmd struct{}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListToolsCmd) Run(globals *Globals) error {
	invoker, err := globals.invoker()
	if err != nil {
		return err
	}
	defer invoker.Close()

	for _, tool := range invoker.Tools() {
		fmt.Printf("%-24s %s\n", tool.Name, tool.Description)
	}
	return nil
}

func (cmd *VersionCmd) Run(globals *Globals) error {
	fmt.Println(string(version.JSON(execName())))
	return nil
}
