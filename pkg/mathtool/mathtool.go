/*
mathtool implements arithmetic tools for use with the agent loop or an
MCP tool server.
*/
package mathtool

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcpagent "github.com/mcp-demos/go-mcpagent"
	tool "github.com/mcp-demos/go-mcpagent/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// BinaryRequest is the input for the two-operand arithmetic tools
type BinaryRequest struct {
	A float64 `json:"a" jsonschema:"The first operand"`
	B float64 `json:"b" jsonschema:"The second operand"`
}

// PowerRequest is the input for the power tool
type PowerRequest struct {
	Base     float64 `json:"base" jsonschema:"The base value"`
	Exponent float64 `json:"exponent" jsonschema:"The exponent to raise the base to"`
}

// AverageRequest is the input for the calculate_average tool
type AverageRequest struct {
	Numbers string `json:"numbers" jsonschema:"Comma-separated list of numbers, e.g. '1,2,3,4'"`
}

type addTool struct{}
type subtractTool struct{}
type multiplyTool struct{}
type divideTool struct{}
type powerTool struct{}
type averageTool struct{}

var _ tool.Tool = (*addTool)(nil)
var _ tool.Tool = (*subtractTool)(nil)
var _ tool.Tool = (*multiplyTool)(nil)
var _ tool.Tool = (*divideTool)(nil)
var _ tool.Tool = (*powerTool)(nil)
var _ tool.Tool = (*averageTool)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the set of arithmetic tools
func NewTools() []tool.Tool {
	return []tool.Tool{
		&addTool{},
		&subtractTool{},
		&multiplyTool{},
		&divideTool{},
		&powerTool{},
		&averageTool{},
	}
}

///////////////////////////////////////////////////////////////////////////////
// ADD

func (*addTool) Name() string {
	return "add"
}

func (*addTool) Description() string {
	return "Add two numbers together."
}

func (*addTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BinaryRequest](nil)
}

func (*addTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	req, err := decodeBinary(input)
	if err != nil {
		return nil, err
	}
	return req.A + req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// SUBTRACT

func (*subtractTool) Name() string {
	return "subtract"
}

func (*subtractTool) Description() string {
	return "Subtract the second number from the first number."
}

func (*subtractTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BinaryRequest](nil)
}

func (*subtractTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	req, err := decodeBinary(input)
	if err != nil {
		return nil, err
	}
	return req.A - req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// MULTIPLY

func (*multiplyTool) Name() string {
	return "multiply"
}

func (*multiplyTool) Description() string {
	return "Multiply two numbers together."
}

func (*multiplyTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BinaryRequest](nil)
}

func (*multiplyTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	req, err := decodeBinary(input)
	if err != nil {
		return nil, err
	}
	return req.A * req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// DIVIDE

func (*divideTool) Name() string {
	return "divide"
}

func (*divideTool) Description() string {
	return "Divide the first number by the second number."
}

func (*divideTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BinaryRequest](nil)
}

func (*divideTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	req, err := decodeBinary(input)
	if err != nil {
		return nil, err
	}
	if req.B == 0 {
		return nil, mcpagent.ErrBadParameter.With("cannot divide by zero")
	}
	return req.A / req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// POWER

func (*powerTool) Name() string {
	return "power"
}

func (*powerTool) Description() string {
	return "Raise the base to the power of the exponent."
}

func (*powerTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[PowerRequest](nil)
}

func (*powerTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req PowerRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return math.Pow(req.Base, req.Exponent), nil
}

///////////////////////////////////////////////////////////////////////////////
// AVERAGE

func (*averageTool) Name() string {
	return "calculate_average"
}

func (*averageTool) Description() string {
	return "Calculate the average of a comma-separated list of numbers."
}

func (*averageTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[AverageRequest](nil)
}

func (*averageTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req AverageRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Numbers) == "" {
		return nil, mcpagent.ErrBadParameter.With("no numbers provided")
	}

	parts := strings.Split(req.Numbers, ",")
	sum := float64(0)
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, mcpagent.ErrBadParameter.With("invalid number format, use comma-separated numbers like '1,2,3,4'")
		}
		sum += value
	}
	return sum / float64(len(parts)), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decodeBinary(input json.RawMessage) (*BinaryRequest, error) {
	var req BinaryRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func decode(input json.RawMessage, v any) error {
	if len(input) == 0 {
		return mcpagent.ErrBadParameter.With("missing input")
	}
	if err := json.Unmarshal(input, v); err != nil {
		return mcpagent.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
	}
	return nil
}
