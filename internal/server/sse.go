// ABOUTME: Server-sent event writer for the streaming endpoints
// ABOUTME: Encodes events as "data: <json>" frames flushed per event
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sable/inquiry/internal/models"
)

// sseWriter writes stream events in the service's wire format: a
// single data: line per event with the type discriminator inside the
// JSON payload, flushed immediately so tokens reach the client as the
// model produces them.
type sseWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func newSSEWriter(w http.ResponseWriter) (*sseWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errors.New("response writer does not support flushing")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &sseWriter{w: w, flusher: flusher}, nil
}

// Emit writes one event frame. A write error means the client is gone;
// the caller abandons the stream.
func (s *sseWriter) Emit(ev models.StreamEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}
