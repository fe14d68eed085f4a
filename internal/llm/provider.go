// Package llm abstracts the model providers behind a single-turn
// generation interface used by quizgen.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured response per call. Question
// generation never needs conversation state, so there is none.
type Provider interface {
	// Generate sends the prompt and returns the model's output. With
	// req.Schema set the provider asks for structured output and the
	// returned Content is JSON already validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the model this provider will call.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema, when non-nil, is the shape the response must take. The
	// provider uses its native structured-output mechanism. Nil means
	// Content is plain text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Schema is a named JSON Schema for structured output. Name doubles as
// the tool name for Anthropic and the schema name for OpenAI.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's output for one Request.
type Response struct {
	// Content is the generated text, or validated JSON when the
	// request carried a schema.
	Content json.RawMessage

	// Usage is the token count the provider reported.
	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is normalized across providers to "end",
	// "max_tokens" or "error".
	StopReason string
}

// Usage is per-request token accounting.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
