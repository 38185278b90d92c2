// ABOUTME: Tests for the HTTP surface: blocking endpoints, SSE wire format, error shaping
// ABOUTME: Uses httptest with a scripted fake model client

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sable/inquiry/internal/core"
	"github.com/sable/inquiry/internal/llm"
	"github.com/sable/inquiry/internal/models"
	"github.com/sable/inquiry/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeClient struct {
	replies []string
	scripts [][]string
	err     error
}

func (f *fakeClient) Complete(_ context.Context, _ []models.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", errors.New("fakeClient: no scripted reply")
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func (f *fakeClient) Stream(_ context.Context, _ []models.Message) (llm.TokenStream, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.scripts) == 0 {
		return nil, errors.New("fakeClient: no scripted stream")
	}
	frags := f.scripts[0]
	f.scripts = f.scripts[1:]
	return &fakeStream{frags: frags}, nil
}

type fakeStream struct {
	frags []string
	pos   int
}

func (s *fakeStream) Recv() (string, error) {
	if s.pos >= len(s.frags) {
		return "", io.EOF
	}
	frag := s.frags[s.pos]
	s.pos++
	return frag, nil
}

func (s *fakeStream) Close() error { return nil }

func newTestServer(client *fakeClient) (*Server, *store.ConversationStore) {
	st := store.NewConversationStore()
	inq := core.NewInquirer(st, client)
	return New(inq, []string{"http://localhost:3000"}), st
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var res models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return res
}

// decodeEvents parses "data: <json>" SSE frames
func decodeEvents(t *testing.T, body string) []models.StreamEvent {
	t.Helper()
	var events []models.StreamEvent
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev models.StreamEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			t.Fatalf("decode event %q: %v", line, err)
		}
		events = append(events, ev)
	}
	return events
}

func TestRoot(t *testing.T) {
	srv, _ := newTestServer(&fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Inquiry System API") {
		t.Errorf("body = %q, want the service banner", rec.Body.String())
	}
}

func TestStart(t *testing.T) {
	srv, st := newTestServer(&fakeClient{replies: []string{"What is your role?"}})

	rec := postJSON(t, srv.Handler(), "/inquire/start", models.StartRequest{Message: "help with my thesis"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
	}

	res := decodeResponse(t, rec)
	if res.ConversationID == "" {
		t.Error("conversation_id missing")
	}
	if res.Question != "What is your role?" {
		t.Errorf("question = %q", res.Question)
	}
	if res.RefinedQuery != "" {
		t.Errorf("refined_query should be empty on a non-terminal turn, got %q", res.RefinedQuery)
	}
	if st.Len() != 1 {
		t.Errorf("store Len() = %d, want 1", st.Len())
	}
}

func TestStart_InvalidBody(t *testing.T) {
	srv, _ := newTestServer(&fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/inquire/start", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestContinue_FullConversation(t *testing.T) {
	srv, st := newTestServer(&fakeClient{replies: []string{
		"What is your role?",
		"Got it. What are you working on?",
		"Here's your refined query: As a student, help me learn Go.\n\nHope this helps!",
	}})
	h := srv.Handler()

	started := decodeResponse(t, postJSON(t, h, "/inquire/start", models.StartRequest{Message: "I need help"}))

	mid := decodeResponse(t, postJSON(t, h, "/inquire/continue", models.ContinueRequest{
		ConversationID: started.ConversationID,
		Answer:         "a student",
	}))
	if mid.Question != "Got it. What are you working on?" {
		t.Errorf("question = %q", mid.Question)
	}
	if mid.ConversationID != started.ConversationID {
		t.Error("conversation_id must be stable across non-terminal turns")
	}

	final := decodeResponse(t, postJSON(t, h, "/inquire/continue", models.ContinueRequest{
		ConversationID: started.ConversationID,
		Answer:         "learning Go",
	}))
	if final.RefinedQuery != "User wants to say this: As a student, help me learn Go." {
		t.Errorf("refined_query = %q", final.RefinedQuery)
	}
	if final.ConversationID != "" || final.Question != "" {
		t.Error("terminal response must carry only refined_query")
	}
	if st.Len() != 0 {
		t.Error("terminal turn must delete the conversation")
	}

	// Same id afterwards behaves like it never existed.
	again := decodeResponse(t, postJSON(t, h, "/inquire/continue", models.ContinueRequest{
		ConversationID: started.ConversationID,
		Answer:         "anything",
	}))
	if again.RefinedQuery != "Error: Conversation not found." {
		t.Errorf("refined_query = %q, want not-found error string", again.RefinedQuery)
	}
}

func TestContinue_UnknownConversation(t *testing.T) {
	srv, _ := newTestServer(&fakeClient{})

	rec := postJSON(t, srv.Handler(), "/inquire/continue", models.ContinueRequest{
		ConversationID: "never-existed",
		Answer:         "hello",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (errors ride the response shape)", rec.Code)
	}
	res := decodeResponse(t, rec)
	if res.RefinedQuery != "Error: Conversation not found." {
		t.Errorf("refined_query = %q", res.RefinedQuery)
	}
}

func TestContinue_ModelFailure(t *testing.T) {
	client := &fakeClient{replies: []string{"What is your role?"}}
	srv, st := newTestServer(client)
	h := srv.Handler()

	started := decodeResponse(t, postJSON(t, h, "/inquire/start", models.StartRequest{Message: "help"}))

	client.err = errors.New("rate limited")
	res := decodeResponse(t, postJSON(t, h, "/inquire/continue", models.ContinueRequest{
		ConversationID: started.ConversationID,
		Answer:         "a student",
	}))
	if !strings.HasPrefix(res.RefinedQuery, "Error: ") {
		t.Errorf("refined_query = %q, want an Error: string", res.RefinedQuery)
	}
	if st.Len() != 1 {
		t.Error("conversation must survive a model failure")
	}
}

func TestStartStream_WireFormat(t *testing.T) {
	srv, _ := newTestServer(&fakeClient{scripts: [][]string{{"What ", "is your role?"}}})

	rec := postJSON(t, srv.Handler(), "/inquire/start/stream", models.StartRequest{Message: "help"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}

	// Every frame is a bare data: line; no event: lines in this format.
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		if strings.HasPrefix(line, "event:") {
			t.Errorf("unexpected event: line %q", line)
		}
	}

	events := decodeEvents(t, rec.Body.String())
	if len(events) != 3 {
		t.Fatalf("got %d events, want 2 tokens + done", len(events))
	}
	if events[0].Type != models.EventToken || events[0].Content != "What " {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[0].ConversationID == "" {
		t.Error("token events must carry conversation_id")
	}
	last := events[len(events)-1]
	if last.Type != models.EventDone || last.Question != "What is your role?" {
		t.Errorf("done event = %+v", last)
	}
}

func TestStartStream_TerminalEmitsFinalQuery(t *testing.T) {
	srv, st := newTestServer(&fakeClient{scripts: [][]string{{
		"Here's your refined query: As a student, learn Go",
	}}})

	rec := postJSON(t, srv.Handler(), "/inquire/start/stream", models.StartRequest{Message: "help"})
	events := decodeEvents(t, rec.Body.String())

	for _, ev := range events {
		if ev.Type == models.EventToken {
			t.Errorf("no token events expected, got %+v", ev)
		}
	}
	last := events[len(events)-1]
	if last.Type != models.EventFinalQuery {
		t.Fatalf("last event = %+v, want final_query", last)
	}
	if last.RefinedQuery != "User wants to say this: As a student, learn Go" {
		t.Errorf("refined_query = %q", last.RefinedQuery)
	}
	if st.Len() != 0 {
		t.Error("terminal stream must delete the conversation")
	}
}

func TestContinueStream_UnknownConversation(t *testing.T) {
	srv, _ := newTestServer(&fakeClient{})

	rec := postJSON(t, srv.Handler(), "/inquire/continue/stream", models.ContinueRequest{
		ConversationID: "missing",
		Answer:         "a student",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	events := decodeEvents(t, rec.Body.String())
	if len(events) != 1 || events[0].Type != models.EventError {
		t.Fatalf("events = %+v, want a single error event", events)
	}
	if events[0].Content != "Conversation not found." {
		t.Errorf("error content = %q", events[0].Content)
	}
}

func TestContinueStream_FullFlow(t *testing.T) {
	srv, st := newTestServer(&fakeClient{scripts: [][]string{
		{"What is your role?"},
		{"Here's your refined query: ", "As a teacher, grade faster.", "\n\nHope this helps!"},
	}})
	h := srv.Handler()

	startRec := postJSON(t, h, "/inquire/start/stream", models.StartRequest{Message: "help me"})
	startEvents := decodeEvents(t, startRec.Body.String())
	id := startEvents[len(startEvents)-1].ConversationID
	if id == "" {
		t.Fatal("done event missing conversation_id")
	}

	rec := postJSON(t, h, "/inquire/continue/stream", models.ContinueRequest{
		ConversationID: id,
		Answer:         "a teacher",
	})
	events := decodeEvents(t, rec.Body.String())

	last := events[len(events)-1]
	if last.Type != models.EventFinalQuery {
		t.Fatalf("last event = %+v, want final_query", last)
	}
	if last.RefinedQuery != "User wants to say this: As a teacher, grade faster." {
		t.Errorf("refined_query = %q", last.RefinedQuery)
	}
	if st.Len() != 0 {
		t.Error("store should be empty after the terminal turn")
	}
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(&fakeClient{})

	req := httptest.NewRequest(http.MethodOptions, "/inquire/start", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
