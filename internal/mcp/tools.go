// ABOUTME: MCP tool definitions and registration for the inquiry service
// ABOUTME: Exposes start_inquiry and continue_inquiry over stdio transport
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/sable/inquiry/internal/core"
)

// RegisterTools registers the inquiry tools with the MCP server
func RegisterTools(server *mcpserver.MCPServer, inquirer *core.Inquirer) *Handlers {
	handlers := &Handlers{inquirer: inquirer}

	// 1. start_inquiry - begin a refinement conversation
	server.AddTool(mcp.Tool{
		Name:        "start_inquiry",
		Description: "Start a query refinement conversation. Returns a conversation_id and the first clarifying question (the role question).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "The user's initial, unrefined request",
				},
			},
			Required: []string{"message"},
		},
	}, handlers.StartInquiry)

	// 2. continue_inquiry - answer the current clarifying question
	server.AddTool(mcp.Tool{
		Name:        "continue_inquiry",
		Description: "Answer the current clarifying question. Returns either the next question or, after the fourth answer, the final refined query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"conversation_id": map[string]interface{}{
					"type":        "string",
					"description": "Conversation id returned by start_inquiry",
				},
				"answer": map[string]interface{}{
					"type":        "string",
					"description": "The user's answer to the current question",
				},
			},
			Required: []string{"conversation_id", "answer"},
		},
	}, handlers.ContinueInquiry)

	return handlers
}
