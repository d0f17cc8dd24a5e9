/*
bedrock implements a text generator backed by Anthropic models on
Amazon Bedrock, using the InvokeModel runtime API.
*/
package bedrock

import (
	"context"

	// Packages
	config "github.com/aws/aws-sdk-go-v2/config"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	mcpagent "github.com/mcp-demos/go-mcpagent"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Runtime is the subset of the Bedrock runtime API used by the client
type Runtime interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type Client struct {
	runtime Runtime
	model   string
}

var _ mcpagent.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultModel is used when no model id is given
	DefaultModel = "anthropic.claude-3-5-sonnet-20241022-v2:0"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for a Bedrock-hosted Anthropic model. Credentials
// and region come from the environment or shared AWS configuration, and
// are checked here so a misconfiguration fails at startup rather than on
// the first generation.
func New(ctx context.Context, region, model string, opts ...func(*config.LoadOptions) error) (*Client, error) {
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, mcpagent.ErrBadParameter.Withf("AWS credentials not found: %v", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		runtime: bedrockruntime.NewFromConfig(cfg),
		model:   model,
	}, nil
}

// NewWithRuntime creates a client over an existing runtime, for callers
// which manage their own AWS configuration
func NewWithRuntime(runtime Runtime, model string) (*Client, error) {
	if runtime == nil {
		return nil, mcpagent.ErrBadParameter.With("runtime is required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		runtime: runtime,
		model:   model,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Model returns the Bedrock model id
func (c *Client) Model() string {
	return c.model
}
