// ABOUTME: MCP tool handler implementations for the inquiry service
// ABOUTME: Returns the same JSON shapes as the blocking HTTP endpoints
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sable/inquiry/internal/core"
	"github.com/sable/inquiry/internal/models"
)

// Handlers contains the handler functions for the inquiry tools
type Handlers struct {
	inquirer *core.Inquirer
}

// StartInquiry handles the start_inquiry tool
func (h *Handlers) StartInquiry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}

	res, err := h.inquirer.Start(ctx, message)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to start inquiry: %v", err)), nil
	}

	return jsonResult(models.APIResponse{
		ConversationID: res.ConversationID,
		Question:       res.Question,
	})
}

// ContinueInquiry handles the continue_inquiry tool
func (h *Handlers) ContinueInquiry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	conversationID, err := request.RequireString("conversation_id")
	if err != nil {
		return mcp.NewToolResultError("conversation_id argument is required and must be a string"), nil
	}
	answer, err := request.RequireString("answer")
	if err != nil {
		return mcp.NewToolResultError("answer argument is required and must be a string"), nil
	}

	res, err := h.inquirer.Continue(ctx, conversationID, answer)
	if errors.Is(err, core.ErrConversationNotFound) {
		return jsonResult(models.APIResponse{RefinedQuery: "Error: Conversation not found."})
	}
	if err != nil {
		return jsonResult(models.APIResponse{RefinedQuery: fmt.Sprintf("Error: %v", err)})
	}

	if res.Final {
		return jsonResult(models.APIResponse{RefinedQuery: res.RefinedQuery})
	}
	return jsonResult(models.APIResponse{
		ConversationID: res.ConversationID,
		Question:       res.Question,
	})
}

func jsonResult(res models.APIResponse) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(res)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
