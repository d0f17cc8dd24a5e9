package mcp

import (
	"os"

	// Packages
	yaml "gopkg.in/yaml.v3"
	mcpagent "github.com/mcp-demos/go-mcpagent"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config describes the set of MCP servers a router connects to
type Config struct {
	Servers map[string]ServerConfig `yaml:"servers"`
}

// ServerConfig describes a single server, reached either by spawning a
// command over stdio or by connecting to a streamable HTTP endpoint
type ServerConfig struct {
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
	URL     string   `yaml:"url,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// LoadConfig reads a YAML server configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, mcpagent.ErrBadParameter.Withf("invalid server configuration: %v", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks each server has exactly one of command or url
func (c *Config) Validate() error {
	if len(c.Servers) == 0 {
		return mcpagent.ErrBadParameter.With("no servers configured")
	}
	for name, server := range c.Servers {
		if server.Command == "" && server.URL == "" {
			return mcpagent.ErrBadParameter.Withf("server %q: command or url is required", name)
		}
		if server.Command != "" && server.URL != "" {
			return mcpagent.ErrBadParameter.Withf("server %q: command and url are mutually exclusive", name)
		}
	}
	return nil
}
