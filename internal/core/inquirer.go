// ABOUTME: Inquirer orchestrates one request/response cycle of the interview
// ABOUTME: Owns store reads/writes, model invocation, and terminal extraction
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sable/inquiry/internal/llm"
	"github.com/sable/inquiry/internal/models"
	"github.com/sable/inquiry/internal/store"
)

// ErrConversationNotFound is returned by Continue when the conversation
// id is absent from the store. A deleted id and a never-created id are
// indistinguishable.
var ErrConversationNotFound = errors.New("conversation not found")

// TurnResult is the outcome of one blocking turn. Final indicates a
// terminal turn: RefinedQuery is set and the conversation is gone.
type TurnResult struct {
	ConversationID string
	Question       string
	RefinedQuery   string
	Final          bool
}

// EmitFunc receives stream events in order. Returning an error aborts
// the stream without touching the store (the caller disconnected).
type EmitFunc func(models.StreamEvent) error

// Inquirer is the turn controller. Safe for concurrent use; two racing
// continues for the same conversation resolve last-write-wins.
type Inquirer struct {
	store  *store.ConversationStore
	client llm.ChatClient
}

// NewInquirer creates an Inquirer over the given store and model client
func NewInquirer(s *store.ConversationStore, client llm.ChatClient) *Inquirer {
	return &Inquirer{store: s, client: client}
}

// Start begins a conversation: mint an id, seed the log with the system
// prompt and the user's message, and ask the model for the first
// question. The message is forwarded as-is, empty or not.
func (q *Inquirer) Start(ctx context.Context, message string) (*TurnResult, error) {
	id := models.NewConversationID()
	log := []models.Message{
		models.SystemMessage(SystemPrompt),
		models.UserMessage(message),
	}

	reply, err := q.client.Complete(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("model invocation failed: %w", err)
	}

	log = append(log, models.AssistantMessage(reply))
	q.store.Put(id, log)

	return &TurnResult{ConversationID: id, Question: reply}, nil
}

// Continue answers the current question and advances the conversation.
// The stored log is read as a private copy, so a failed model call
// leaves the conversation exactly as it was and a retry is safe.
func (q *Inquirer) Continue(ctx context.Context, id, answer string) (*TurnResult, error) {
	log, ok := q.store.Get(id)
	if !ok {
		return nil, ErrConversationNotFound
	}

	log = append(log, models.UserMessage(answer))

	reply, err := q.client.Complete(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("model invocation failed: %w", err)
	}

	if refined, final := ExtractRefinedQuery(reply); final {
		// Tolerate a concurrent terminal turn having already deleted it.
		q.store.Delete(id)
		return &TurnResult{RefinedQuery: refined, Final: true}, nil
	}

	log = append(log, models.AssistantMessage(reply))
	// Replace only if the entry still exists; a concurrent delete wins.
	q.store.Replace(id, log)

	return &TurnResult{ConversationID: id, Question: reply}, nil
}

// StartStream begins a conversation in incremental mode. The log is
// stored before streaming so a continue arriving mid-stream finds the
// conversation; the assistant reply is appended by the completion path.
func (q *Inquirer) StartStream(ctx context.Context, message string, emit EmitFunc) error {
	id := models.NewConversationID()
	log := []models.Message{
		models.SystemMessage(SystemPrompt),
		models.UserMessage(message),
	}
	q.store.Put(id, log)

	return q.streamTurn(ctx, id, log, emit)
}

// ContinueStream answers the current question in incremental mode. An
// unknown conversation id is reported as an error event, not a failure.
func (q *Inquirer) ContinueStream(ctx context.Context, id, answer string, emit EmitFunc) error {
	log, ok := q.store.Get(id)
	if !ok {
		return emit(models.ErrorEvent("Conversation not found."))
	}

	log = append(log, models.UserMessage(answer))

	return q.streamTurn(ctx, id, log, emit)
}

// streamTurn consumes the model's token stream for one turn. Fragments
// are forwarded until the marker phrase first appears in the running
// buffer; after that the remainder is drained silently. Termination is
// decided over the final concatenated text, same as the blocking path.
func (q *Inquirer) streamTurn(ctx context.Context, id string, log []models.Message, emit EmitFunc) error {
	stream, err := q.client.Stream(ctx, log)
	if err != nil {
		return emit(models.ErrorEvent(fmt.Sprintf("model invocation failed: %v", err)))
	}
	defer func() { _ = stream.Close() }()

	var buf strings.Builder
	markerSeen := false

	for {
		frag, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return emit(models.ErrorEvent(fmt.Sprintf("model invocation failed: %v", err)))
		}
		if frag == "" {
			continue
		}

		buf.WriteString(frag)

		if markerSeen {
			continue
		}
		if ContainsMarker(buf.String()) {
			// Stop forwarding, keep absorbing trailing text.
			markerSeen = true
			continue
		}
		if err := emit(models.TokenEvent(frag, id)); err != nil {
			return err
		}
	}

	full := buf.String()

	if markerSeen {
		if refined, final := ExtractRefinedQuery(full); final {
			q.store.Delete(id)
			return emit(models.FinalQueryEvent(refined))
		}
		// Marker present but nothing usable after truncation: degrade
		// to a normal turn rather than emit an empty query.
	}

	log = append(log, models.AssistantMessage(full))
	q.store.Replace(id, log)

	return emit(models.DoneEvent(id, full))
}
