/*
agent implements the reasoning loop which connects a text generator to a
set of tools. The generator either answers directly or requests tool
calls; requested tools are run and their results fed back until the
generator produces a final answer or the iteration limit is reached.
*/
package agent

import (
	"context"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	mcpagent "github.com/mcp-demos/go-mcpagent"
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a function which applies an option to a Runner
type Opt func(*Runner) error

type Runner struct {
	generator     mcpagent.Generator
	invoker       mcpagent.Invoker
	systemPrompt  string
	maxIterations uint
	callTimeout   time.Duration
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultMaxIterations bounds the reasoning loop for a single run
	DefaultMaxIterations = 10

	// DefaultCallTimeout bounds each external call, both generator and tool
	DefaultCallTimeout = 30 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a runner from a generator and an invoker
func New(generator mcpagent.Generator, invoker mcpagent.Invoker, opts ...Opt) (*Runner, error) {
	if generator == nil {
		return nil, mcpagent.ErrBadParameter.With("generator is required")
	}
	if invoker == nil {
		return nil, mcpagent.ErrBadParameter.With("invoker is required")
	}
	runner := &Runner{
		generator:     generator,
		invoker:       invoker,
		maxIterations: DefaultMaxIterations,
		callTimeout:   DefaultCallTimeout,
	}
	for _, opt := range opts {
		if err := opt(runner); err != nil {
			return nil, err
		}
	}
	return runner, nil
}

// WithSystemPrompt sets the system prompt for new sessions
func WithSystemPrompt(value string) Opt {
	return func(r *Runner) error {
		r.systemPrompt = value
		return nil
	}
}

// WithMaxIterations sets the reasoning loop limit
func WithMaxIterations(value uint) Opt {
	return func(r *Runner) error {
		if value == 0 {
			return mcpagent.ErrBadParameter.With("max iterations must be positive")
		}
		r.maxIterations = value
		return nil
	}
}

// WithCallTimeout sets the timeout applied to each generator and tool call
func WithCallTimeout(value time.Duration) Opt {
	return func(r *Runner) error {
		if value <= 0 {
			return mcpagent.ErrBadParameter.With("call timeout must be positive")
		}
		r.callTimeout = value
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns the descriptors the runner advertises to the generator
func (r *Runner) Tools() []schema.ToolInfo {
	return r.invoker.Tools()
}

// Run processes one user utterance within a session, running requested
// tools and feeding their results back until the generator produces a
// final answer. The returned message carries ResultMaxIterations when
// the loop limit was reached while the generator still wanted tools.
func (r *Runner) Run(ctx context.Context, session *schema.Session, text string) (*schema.Message, error) {
	if session == nil {
		return nil, mcpagent.ErrBadParameter.With("session is required")
	}

	// Seed the system prompt on first use
	if r.systemPrompt != "" && len(*session) == 0 {
		session.Append(*schema.NewMessage(schema.RoleSystem, r.systemPrompt))
	}

	tools := r.invoker.Tools()
	result, err := r.generate(ctx, session, schema.NewMessage(schema.RoleUser, text), tools)
	if err != nil {
		return nil, err
	}

	// Tool-calling loop: if the generator requests tool calls, run them
	// and feed results back until we get a final answer or hit the limit.
	// Snapshot the session length so we can roll back if we exhaust
	// the iterations.
	snapshot := len(*session)
	for i := uint(0); i < r.maxIterations && result.Result == schema.ResultToolCall; i++ {
		toolCalls := result.ToolCalls()
		if len(toolCalls) == 0 {
			break
		}

		// Run each tool call and collect result blocks
		toolResults := make([]schema.ContentBlock, 0, len(toolCalls))
		for _, call := range toolCalls {
			toolResults = append(toolResults, r.runTool(ctx, call))
		}

		// Feed the results back to the generator
		result, err = r.generate(ctx, session, &schema.Message{
			Role:    schema.RoleUser,
			Content: toolResults,
		}, tools)
		if err != nil {
			return nil, err
		}
	}

	// The generator still wants tool calls after the limit: roll back
	// the session and report the condition.
	if result.Result == schema.ResultToolCall {
		*session = (*session)[:snapshot]
		result.Result = schema.ResultMaxIterations
		return result, mcpagent.ErrMaxIterations
	}

	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generate calls the generator with a bounded timeout so a hung model
// call cannot block the run.
func (r *Runner) generate(ctx context.Context, session *schema.Session, message *schema.Message, tools []schema.ToolInfo) (*schema.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()
	return r.generator.WithSession(ctx, session, message, tools)
}

// runTool runs a single tool call with a bounded timeout. A tool failure
// is folded into the conversation as an error result so the generator
// can recover, rather than aborting the run.
func (r *Runner) runTool(ctx context.Context, call schema.ToolCall) schema.ContentBlock {
	// Some generators omit call identifiers
	if call.ID == "" {
		call.ID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	output, err := r.invoker.Run(ctx, call.Name, call.Input)
	if err != nil {
		return schema.NewToolError(call.ID, call.Name, err)
	}
	return schema.NewToolResult(call.ID, call.Name, output)
}
