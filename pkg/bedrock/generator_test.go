package bedrock_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	bedrock "github.com/mcp-demos/go-mcpagent/pkg/bedrock"
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// fakeRuntime returns canned InvokeModel responses in order
type fakeRuntime struct {
	requests  []json.RawMessage
	responses []string
}

func (f *fakeRuntime) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.requests = append(f.requests, json.RawMessage(params.Body))
	response := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(response)}, nil
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_generator_001(t *testing.T) {
	assert := assert.New(t)

	_, err := bedrock.NewWithRuntime(nil, "")
	assert.Error(err)

	client, err := bedrock.NewWithRuntime(&fakeRuntime{}, "")
	assert.NoError(err)
	assert.Equal(bedrock.DefaultModel, client.Model())
}

func Test_generator_002(t *testing.T) {
	assert := assert.New(t)

	runtime := &fakeRuntime{
		responses: []string{`{
			"role": "assistant",
			"content": [{"type": "text", "text": "2 + 3 = 5"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 8}
		}`},
	}
	client, err := bedrock.NewWithRuntime(runtime, "anthropic.claude-test")
	assert.NoError(err)

	session := schema.Session{}
	message := schema.NewMessage(schema.RoleUser, "What is 2 + 3?")
	response, err := client.WithSession(context.Background(), &session, message, nil)
	assert.NoError(err)
	assert.Equal(schema.ResultStop, response.Result)
	assert.Equal("2 + 3 = 5", response.Text())

	// Both the user message and the response were appended
	assert.Len(session, 2)
	assert.Equal(schema.RoleUser, session[0].Role)
	assert.Equal(schema.RoleAssistant, session[1].Role)

	// The request carried the model id body
	assert.Len(runtime.requests, 1)
	var request map[string]any
	assert.NoError(json.Unmarshal(runtime.requests[0], &request))
	assert.Equal("bedrock-2023-05-31", request["anthropic_version"])
}

func Test_generator_003(t *testing.T) {
	assert := assert.New(t)

	runtime := &fakeRuntime{
		responses: []string{`{
			"role": "assistant",
			"content": [{"type": "tool_use", "id": "call_1", "name": "add", "input": {"a": 2, "b": 3}}],
			"stop_reason": "tool_use",
			"usage": {"input_tokens": 10, "output_tokens": 8}
		}`},
	}
	client, err := bedrock.NewWithRuntime(runtime, "anthropic.claude-test")
	assert.NoError(err)

	session := schema.Session{}
	message := schema.NewMessage(schema.RoleUser, "Add 2 and 3")
	response, err := client.WithSession(context.Background(), &session, message, nil)
	assert.NoError(err)
	assert.Equal(schema.ResultToolCall, response.Result)

	calls := response.ToolCalls()
	assert.Len(calls, 1)
	assert.Equal("call_1", calls[0].ID)
	assert.Equal("add", calls[0].Name)
}

func Test_generator_004(t *testing.T) {
	assert := assert.New(t)

	client, err := bedrock.NewWithRuntime(&fakeRuntime{}, "anthropic.claude-test")
	assert.NoError(err)

	// A session is required
	_, err = client.WithSession(context.Background(), nil, schema.NewMessage(schema.RoleUser, "hello"), nil)
	assert.Error(err)
}
