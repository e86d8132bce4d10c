package chat

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/errors"
	"github.com/matzehuels/depscope/pkg/integrations/gemini"
)

// FallbackReply is shown when the model returns no text.
const FallbackReply = "Sorry, no response from Gemini."

// Generator produces a reply for a conversation. *gemini.Client implements it.
type Generator interface {
	GenerateContent(ctx context.Context, contents []gemini.Content) (string, error)
}

// Line is one displayed chat entry.
type Line struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Session is one conversation about an inspection result. The full history is
// sent with every message. Safe for concurrent use.
type Session struct {
	ID string

	gen  Generator
	deps []deps.Dependency

	mu         sync.Mutex
	history    []gemini.Content
	transcript []Line
}

// NewSession creates a session over a copy of list.
func NewSession(gen Generator, list []deps.Dependency) *Session {
	return &Session{
		ID:   uuid.NewString(),
		gen:  gen,
		deps: append([]deps.Dependency(nil), list...),
	}
}

// Send submits message and returns the reply. The seeded prompt goes to the
// model while the transcript keeps the message as typed. An empty model reply
// yields [FallbackReply]; a failed request is a LOOKUP_FAILURE and leaves the
// history unchanged.
func (s *Session) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "message is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turn := gemini.Text(gemini.RoleUser, BuildPrompt(message, s.deps))
	contents := append(append([]gemini.Content(nil), s.history...), turn)

	reply, err := s.gen.GenerateContent(ctx, contents)
	if err != nil {
		if !stderrors.Is(err, gemini.ErrNoContent) {
			return "", errors.Wrap(errors.ErrCodeLookupFailure, err, "chat request failed")
		}
		reply = FallbackReply
	}

	s.history = append(contents, gemini.Text(gemini.RoleModel, reply))
	s.transcript = append(s.transcript,
		Line{Role: gemini.RoleUser, Text: message},
		Line{Role: gemini.RoleModel, Text: reply},
	)
	return reply, nil
}

// Transcript returns a copy of the displayed conversation.
func (s *Session) Transcript() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.transcript...)
}

// Clear forgets the conversation; the dependency context is kept.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.transcript = nil
}
