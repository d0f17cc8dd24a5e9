package bedrock

import (
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Bedrock Anthropic Messages wire format
//
// Reference: https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-anthropic-claude-messages.html

// invokeRequest is the request body for InvokeModel against an Anthropic model
type invokeRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []bedrockMessage `json:"messages"`
	Temperature      *float64         `json:"temperature,omitempty"`
	StopSequences    []string         `json:"stop_sequences,omitempty"`
	Tools            []bedrockTool    `json:"tools,omitempty"`
}

// invokeResponse is the response body from InvokeModel
type invokeResponse struct {
	Id           string                `json:"id"`
	Type         string                `json:"type"`
	Role         string                `json:"role"`
	Content      []bedrockContentBlock `json:"content"`
	StopReason   string                `json:"stop_reason"`
	StopSequence *string               `json:"stop_sequence,omitempty"`
	Usage        invokeUsage           `json:"usage"`
}

// invokeUsage reports token counts for a request
type invokeUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// bedrockMessage represents a single turn in a conversation
type bedrockMessage struct {
	Role    string                `json:"role"`
	Content []bedrockContentBlock `json:"content"`
}

// bedrockContentBlock represents a content block. Different block types
// use different subsets of fields.
type bedrockContentBlock struct {
	Type string `json:"type"`

	// text block
	Text string `json:"text,omitempty"`

	// tool_use block
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`

	// tool_result block
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   json.RawMessage `json:"content,omitempty"`
	IsError   bool            `json:"is_error,omitempty"`
}

// bedrockTool describes a tool the model may call
type bedrockTool struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	InputSchema *jsonschema.Schema `json:"input_schema"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	anthropicVersion = "bedrock-2023-05-31"
	defaultMaxTokens = 4096
)

const (
	blockTypeText       = "text"
	blockTypeToolUse    = "tool_use"
	blockTypeToolResult = "tool_result"
)

const (
	stopReasonEndTurn      = "end_turn"
	stopReasonMaxTokens    = "max_tokens"
	stopReasonStopSequence = "stop_sequence"
	stopReasonToolUse      = "tool_use"
)
