package agent_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	// Packages
	mcpagent "github.com/mcp-demos/go-mcpagent"
	agent "github.com/mcp-demos/go-mcpagent/pkg/agent"
	mathtool "github.com/mcp-demos/go-mcpagent/pkg/mathtool"
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
	tool "github.com/mcp-demos/go-mcpagent/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// scriptedGenerator replays a fixed sequence of responses, appending
// messages to the session the way a real generator does
type scriptedGenerator struct {
	responses []*schema.Message
	requests  []*schema.Message
	err       error
}

func (g *scriptedGenerator) Model() string {
	return "scripted"
}

func (g *scriptedGenerator) WithSession(ctx context.Context, session *schema.Session, message *schema.Message, tools []schema.ToolInfo) (*schema.Message, error) {
	if g.err != nil {
		return nil, g.err
	}
	if message != nil {
		g.requests = append(g.requests, message)
		session.Append(*message)
	}
	response := g.responses[0]
	if len(g.responses) > 1 {
		g.responses = g.responses[1:]
	}
	session.Append(*response)
	return response, nil
}

// deadlineGenerator records the deadline on each call context
type deadlineGenerator struct {
	scriptedGenerator
	deadlines []time.Time
}

func (g *deadlineGenerator) WithSession(ctx context.Context, session *schema.Session, message *schema.Message, tools []schema.ToolInfo) (*schema.Message, error) {
	deadline, _ := ctx.Deadline()
	g.deadlines = append(g.deadlines, deadline)
	return g.scriptedGenerator.WithSession(ctx, session, message, tools)
}

// hungGenerator blocks until the call context expires
type hungGenerator struct{}

func (g *hungGenerator) Model() string {
	return "hung"
}

func (g *hungGenerator) WithSession(ctx context.Context, session *schema.Session, message *schema.Message, tools []schema.ToolInfo) (*schema.Message, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// toolCallMessage builds an assistant message requesting a single tool call
func toolCallMessage(id, name, input string) *schema.Message {
	return &schema.Message{
		Role: schema.RoleAssistant,
		Content: []schema.ContentBlock{
			{ToolCall: &schema.ToolCall{ID: id, Name: name, Input: json.RawMessage(input)}},
		},
		Result: schema.ResultToolCall,
	}
}

func mathToolkit(t *testing.T) *tool.Toolkit {
	t.Helper()
	toolkit, err := tool.NewToolkit(mathtool.NewTools()...)
	if err != nil {
		t.Fatal(err)
	}
	return toolkit
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_runner_001(t *testing.T) {
	assert := assert.New(t)

	_, err := agent.New(nil, mathToolkit(t))
	assert.Error(err)
	_, err = agent.New(&scriptedGenerator{}, nil)
	assert.Error(err)

	runner, err := agent.New(&scriptedGenerator{}, mathToolkit(t))
	assert.NoError(err)
	assert.NotNil(runner)
	assert.Len(runner.Tools(), 6)
}

func Test_runner_002(t *testing.T) {
	assert := assert.New(t)

	// One tool round-trip: the generator asks for add(15, 27), receives
	// the result and answers
	generator := &scriptedGenerator{
		responses: []*schema.Message{
			toolCallMessage("call_1", "add", `{"a":15,"b":27}`),
			schema.NewMessage(schema.RoleAssistant, "15 + 27 = 42"),
		},
	}
	runner, err := agent.New(generator, mathToolkit(t))
	assert.NoError(err)

	session := schema.Session{}
	result, err := runner.Run(context.Background(), &session, "What is 15 + 27?")
	assert.NoError(err)
	assert.Equal(schema.ResultStop, result.Result)
	assert.Equal("15 + 27 = 42", result.Text())

	// The second request carried the tool result
	assert.Len(generator.requests, 2)
	results := generator.requests[1].ToolResults()
	assert.Len(results, 1)
	assert.Equal("call_1", results[0].ID)
	assert.False(results[0].IsError)
	assert.Contains(string(results[0].Content), "42")
}

func Test_runner_003(t *testing.T) {
	assert := assert.New(t)

	// An unknown tool is folded into the conversation as a failed
	// result, not an aborted run
	generator := &scriptedGenerator{
		responses: []*schema.Message{
			toolCallMessage("call_1", "no_such_tool", `{}`),
			schema.NewMessage(schema.RoleAssistant, "I don't have that tool."),
		},
	}
	runner, err := agent.New(generator, mathToolkit(t))
	assert.NoError(err)

	session := schema.Session{}
	result, err := runner.Run(context.Background(), &session, "Use the frobnicator")
	assert.NoError(err)
	assert.Equal(schema.ResultStop, result.Result)

	results := generator.requests[1].ToolResults()
	assert.Len(results, 1)
	assert.True(results[0].IsError)
}

func Test_runner_004(t *testing.T) {
	assert := assert.New(t)

	// The generator never stops asking for tools: the loop terminates
	// with ResultMaxIterations and the session is rolled back
	generator := &scriptedGenerator{
		responses: []*schema.Message{
			toolCallMessage("call_1", "add", `{"a":1,"b":1}`),
		},
	}
	runner, err := agent.New(generator, mathToolkit(t), agent.WithMaxIterations(3))
	assert.NoError(err)

	session := schema.Session{}
	result, err := runner.Run(context.Background(), &session, "Keep adding")
	assert.ErrorIs(err, mcpagent.ErrMaxIterations)
	assert.Equal(schema.ResultMaxIterations, result.Result)
	assert.Len(session, 2)
}

func Test_runner_005(t *testing.T) {
	assert := assert.New(t)

	// A generator error aborts the run
	generator := &scriptedGenerator{err: fmt.Errorf("model unavailable")}
	runner, err := agent.New(generator, mathToolkit(t))
	assert.NoError(err)

	session := schema.Session{}
	_, err = runner.Run(context.Background(), &session, "hello")
	assert.Error(err)
}

func Test_runner_006(t *testing.T) {
	assert := assert.New(t)

	// The system prompt seeds an empty session exactly once
	generator := &scriptedGenerator{
		responses: []*schema.Message{
			schema.NewMessage(schema.RoleAssistant, "Hello!"),
			schema.NewMessage(schema.RoleAssistant, "Hello again!"),
		},
	}
	runner, err := agent.New(generator, mathToolkit(t), agent.WithSystemPrompt("You are a calculator."))
	assert.NoError(err)

	session := schema.Session{}
	_, err = runner.Run(context.Background(), &session, "hi")
	assert.NoError(err)
	assert.Equal(schema.RoleSystem, session[0].Role)

	_, err = runner.Run(context.Background(), &session, "hi again")
	assert.NoError(err)

	count := 0
	for _, message := range session {
		if message.Role == schema.RoleSystem {
			count++
		}
	}
	assert.Equal(1, count)
}

func Test_runner_007(t *testing.T) {
	assert := assert.New(t)

	// Every generator call carries a deadline derived from the call
	// timeout
	generator := &deadlineGenerator{
		scriptedGenerator: scriptedGenerator{
			responses: []*schema.Message{
				toolCallMessage("call_1", "add", `{"a":1,"b":1}`),
				schema.NewMessage(schema.RoleAssistant, "2"),
			},
		},
	}
	runner, err := agent.New(generator, mathToolkit(t), agent.WithCallTimeout(50*time.Millisecond))
	assert.NoError(err)

	session := schema.Session{}
	_, err = runner.Run(context.Background(), &session, "What is 1 + 1?")
	assert.NoError(err)

	assert.Len(generator.deadlines, 2)
	for _, deadline := range generator.deadlines {
		assert.False(deadline.IsZero())
		assert.LessOrEqual(time.Until(deadline), 50*time.Millisecond)
	}
}

func Test_runner_008(t *testing.T) {
	assert := assert.New(t)

	// A generator that never returns is unblocked by the call timeout
	runner, err := agent.New(&hungGenerator{}, mathToolkit(t), agent.WithCallTimeout(50*time.Millisecond))
	assert.NoError(err)

	session := schema.Session{}
	done := make(chan error, 1)
	go func() {
		_, err := runner.Run(context.Background(), &session, "hello")
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("run did not return within the call timeout")
	}
}
