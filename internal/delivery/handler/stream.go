package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// The generation stream is newline-delimited JSON events rather than a flat
// text stream with sentinel markers: content chunks, then exactly one stats
// or error event. Structured framing cannot collide with generated text the
// way an in-band marker string can.
type StreamEvent struct {
	Type         string `json:"type"` // "content", "stats" or "error"
	Text         string `json:"text,omitempty"`
	Message      string `json:"message,omitempty"`
	NewCredits   *int   `json:"newCredits,omitempty"`
	NewArticleID string `json:"newArticleId,omitempty"`
}

// StreamWriter emits events and flushes after each one so chunks reach the
// client as they arrive.
type StreamWriter struct {
	enc   *json.Encoder
	flush func()
}

func NewStreamWriter(w io.Writer) *StreamWriter {
	sw := &StreamWriter{enc: json.NewEncoder(w), flush: func() {}}
	if f, ok := w.(http.Flusher); ok {
		sw.flush = f.Flush
	}
	return sw
}

func (s *StreamWriter) write(event StreamEvent) error {
	if err := s.enc.Encode(event); err != nil {
		return err
	}
	s.flush()
	return nil
}

func (s *StreamWriter) Content(text string) error {
	return s.write(StreamEvent{Type: "content", Text: text})
}

func (s *StreamWriter) Stats(newCredits int, newArticleID string) error {
	return s.write(StreamEvent{Type: "stats", NewCredits: &newCredits, NewArticleID: newArticleID})
}

func (s *StreamWriter) Error(message string) error {
	return s.write(StreamEvent{Type: "error", Message: message})
}

// StreamResult is the client-side view of a consumed stream.
type StreamResult struct {
	Content      string
	NewCredits   int
	NewArticleID string
	ErrorMessage string
}

// ParseStream consumes a full event stream, accumulating content and
// extracting the trailing stats or error event.
func ParseStream(r io.Reader) (*StreamResult, error) {
	dec := json.NewDecoder(r)
	result := &StreamResult{}

	for {
		var event StreamEvent
		if err := dec.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return result, nil
			}
			return nil, err
		}

		switch event.Type {
		case "content":
			result.Content += event.Text
		case "stats":
			if event.NewCredits != nil {
				result.NewCredits = *event.NewCredits
			}
			result.NewArticleID = event.NewArticleID
		case "error":
			result.ErrorMessage = event.Message
		}
	}
}
