package bedrock

import (
	"encoding/json"

	// Packages
	schema "github.com/mcp-demos/go-mcpagent/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// SESSION → BEDROCK REQUEST

// invokeRequestFromSession converts a session and tool descriptors to an
// InvokeModel request body. System messages become the system parameter.
func invokeRequestFromSession(session *schema.Session, tools []schema.ToolInfo) (*invokeRequest, error) {
	var system string
	messages := make([]bedrockMessage, 0, len(*session))
	for _, msg := range *session {
		if msg.Role == schema.RoleSystem {
			if text := msg.Text(); text != "" {
				system = text
			}
			continue
		}
		bm, err := bedrockMessageFromMessage(msg)
		if err != nil {
			return nil, err
		}
		messages = append(messages, bm)
	}

	return &invokeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        defaultMaxTokens,
		System:           system,
		Messages:         messages,
		Tools:            bedrockToolsFromInfos(tools),
	}, nil
}

// bedrockMessageFromMessage converts a single message
func bedrockMessageFromMessage(msg *schema.Message) (bedrockMessage, error) {
	blocks := make([]bedrockContentBlock, 0, len(msg.Content))
	for i := range msg.Content {
		block := bedrockBlockFromContentBlock(&msg.Content[i])
		if block != nil {
			blocks = append(blocks, *block)
		}
	}
	return bedrockMessage{
		Role:    msg.Role,
		Content: blocks,
	}, nil
}

// bedrockBlockFromContentBlock converts one content block
func bedrockBlockFromContentBlock(block *schema.ContentBlock) *bedrockContentBlock {
	if block.Text != nil {
		return &bedrockContentBlock{
			Type: blockTypeText,
			Text: *block.Text,
		}
	}
	if block.ToolCall != nil {
		return &bedrockContentBlock{
			Type:  blockTypeToolUse,
			ID:    block.ToolCall.ID,
			Name:  block.ToolCall.Name,
			Input: block.ToolCall.Input,
		}
	}
	if block.ToolResult != nil {
		bb := &bedrockContentBlock{
			Type:      blockTypeToolResult,
			ToolUseID: block.ToolResult.ID,
			IsError:   block.ToolResult.IsError,
		}
		if len(block.ToolResult.Content) > 0 {
			// A JSON string passes through directly, anything else is
			// quoted as a string for the model
			if block.ToolResult.Content[0] == '"' {
				bb.Content = block.ToolResult.Content
			} else {
				data, _ := json.Marshal(string(block.ToolResult.Content))
				bb.Content = data
			}
		}
		return bb
	}
	return nil
}

// bedrockToolsFromInfos converts tool descriptors to the wire format
func bedrockToolsFromInfos(tools []schema.ToolInfo) []bedrockTool {
	if len(tools) == 0 {
		return nil
	}
	result := make([]bedrockTool, 0, len(tools))
	for _, tool := range tools {
		result = append(result, bedrockTool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		})
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// BEDROCK RESPONSE → SCHEMA MESSAGE

// messageFromInvokeResponse converts an InvokeModel response to a message
func messageFromInvokeResponse(response *invokeResponse) (*schema.Message, error) {
	var blocks []schema.ContentBlock
	for _, bb := range response.Content {
		switch bb.Type {
		case blockTypeText:
			text := bb.Text
			blocks = append(blocks, schema.ContentBlock{Text: &text})
		case blockTypeToolUse:
			blocks = append(blocks, schema.ContentBlock{
				ToolCall: &schema.ToolCall{
					ID:    bb.ID,
					Name:  bb.Name,
					Input: bb.Input,
				},
			})
		}
	}
	role := response.Role
	if role == "" {
		role = schema.RoleAssistant
	}
	return &schema.Message{
		Role:    role,
		Content: blocks,
		Result:  resultFromStopReason(response.StopReason),
	}, nil
}

// resultFromStopReason maps Bedrock stop reasons to a result type
func resultFromStopReason(reason string) schema.ResultType {
	switch reason {
	case stopReasonEndTurn, stopReasonStopSequence:
		return schema.ResultStop
	case stopReasonToolUse:
		return schema.ResultToolCall
	default:
		return schema.ResultOther
	}
}
