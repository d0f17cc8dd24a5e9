package bedrock

import (
	"context"
	"encoding/json"

	// Packages
	aws "github.com/aws/aws-sdk-go-v2/aws"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	mcpagent "github.com/mcp-demos/go-mcpagent"
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithSession sends a message within a session and returns the response,
// appending both to the session. The tools are offered to the model on
// every request so it can continue calling them across turns.
func (c *Client) WithSession(ctx context.Context, session *schema.Session, message *schema.Message, tools []schema.ToolInfo) (*schema.Message, error) {
	if session == nil {
		return nil, mcpagent.ErrBadParameter.With("session is required")
	}
	if message != nil {
		session.Append(*message)
	}

	// Build request
	request, err := invokeRequestFromSession(session, tools)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	// Invoke the model
	output, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.model),
		Accept:      aws.String("*/*"),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, err
	}

	// Decode the response
	var response invokeResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, mcpagent.ErrInternalServerError.Withf("failed to decode model response: %v", err)
	}

	// Convert the response to a message and append it to the session
	result, err := messageFromInvokeResponse(&response)
	if err != nil {
		return nil, err
	}
	session.Append(*result)
	return result, nil
}
