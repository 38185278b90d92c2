// ABOUTME: Request, response, and stream event shapes for the inquiry API
// ABOUTME: Shared by the HTTP handlers and the MCP tool surface
package models

// StartRequest begins a new refinement conversation
type StartRequest struct {
	Message string `json:"message"`
}

// ContinueRequest answers the current clarifying question
type ContinueRequest struct {
	ConversationID string `json:"conversation_id"`
	Answer         string `json:"answer"`
}

// APIResponse is the blocking-endpoint response shape. RefinedQuery is
// populated only on a terminal turn or an error; ConversationID and
// Question are populated on a non-terminal turn.
type APIResponse struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Question       string `json:"question,omitempty"`
	RefinedQuery   string `json:"refined_query,omitempty"`
}

// Stream event types emitted on the SSE endpoints.
const (
	EventToken      = "token"
	EventFinalQuery = "final_query"
	EventDone       = "done"
	EventError      = "error"
)

// StreamEvent is one server-sent event. Type is always set; the other
// fields depend on it:
//
//	token:       Content, ConversationID
//	final_query: RefinedQuery
//	done:        ConversationID, Question
//	error:       Content
type StreamEvent struct {
	Type           string `json:"type"`
	Content        string `json:"content,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	Question       string `json:"question,omitempty"`
	RefinedQuery   string `json:"refined_query,omitempty"`
}

// TokenEvent builds a token stream event
func TokenEvent(content, conversationID string) StreamEvent {
	return StreamEvent{Type: EventToken, Content: content, ConversationID: conversationID}
}

// FinalQueryEvent builds a final_query stream event
func FinalQueryEvent(refinedQuery string) StreamEvent {
	return StreamEvent{Type: EventFinalQuery, RefinedQuery: refinedQuery}
}

// DoneEvent builds a done stream event
func DoneEvent(conversationID, question string) StreamEvent {
	return StreamEvent{Type: EventDone, ConversationID: conversationID, Question: question}
}

// ErrorEvent builds an error stream event
func ErrorEvent(content string) StreamEvent {
	return StreamEvent{Type: EventError, Content: content}
}
