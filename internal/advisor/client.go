// Package advisor consumes an external generative-AI text service for
// symptom assessment, health Q&A and report analysis. The core never
// implements the model; it only calls it and stores the advisory text.
package advisor

import (
	"context"
	"errors"
)

var (
	// ErrAdvisorUnavailable is returned after the upstream service failed
	// or timed out, retry included
	ErrAdvisorUnavailable = errors.New("advisor service unavailable")

	// ErrEmptyPrompt is returned when a request carries no text
	ErrEmptyPrompt = errors.New("prompt text is required")

	// ErrEmptyDocument is returned when report analysis receives no document
	ErrEmptyDocument = errors.New("document payload is required")
)

// Client is the opaque text-completion collaborator.
type Client interface {
	// AnalyzeSymptoms runs the structured differential-diagnosis prompt
	// over a symptom description.
	AnalyzeSymptoms(ctx context.Context, symptoms string) (string, error)

	// Ask answers a free-form health question conversationally. History
	// holds prior turns, oldest first; it may be empty.
	Ask(ctx context.Context, query string, history []Turn) (string, error)

	// AnalyzeReport extracts and explains key findings from a raw medical
	// document (image or PDF bytes).
	AnalyzeReport(ctx context.Context, document []byte, mimeType string) (string, error)
}

// Turn is one exchange in a conversational session.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
