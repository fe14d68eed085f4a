// Package quizgen generates candidate bank questions with an LLM. It
// is an authoring aid: output goes through the same validity filter as
// hand-written banks, and nothing at runtime depends on a provider
// being configured.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/llm"
)

// Params describes one generation request.
type Params struct {
	// Category names the topic; it becomes the bank category.
	Category string

	// Difficulty is optional.
	Difficulty bank.Difficulty

	// Count is how many questions to ask for.
	Count int

	// StartID numbers the first generated question; defaults to 1.
	StartID int

	// Avoid lists prompts already in the bank, to steer away from
	// duplicates.
	Avoid []string
}

// Generator turns generation params into validated bank questions.
type Generator struct {
	provider llm.Provider
}

// New creates a Generator over the given provider.
func New(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate asks the provider for params.Count questions and returns
// the ones that survive the bank validity filter. Questions the model
// malformed are dropped, not repaired, so the result can be shorter
// than requested.
func (g *Generator) Generate(ctx context.Context, params Params) ([]bank.Question, error) {
	if params.Category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if params.Count <= 0 {
		params.Count = 5
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(params),
		Schema:      questionSetSchema(),
		MaxTokens:   4096,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	var set generatedSet
	if err := json.Unmarshal(resp.Content, &set); err != nil {
		return nil, fmt.Errorf("decode question set: %w", err)
	}

	id := params.StartID
	if id <= 0 {
		id = 1
	}

	var questions []bank.Question
	for _, gq := range set.Questions {
		q, ok := toBankQuestion(gq, id, params)
		if !ok {
			continue
		}
		questions = append(questions, q)
		id++
	}
	return questions, nil
}

// toBankQuestion converts one generated question, reporting false when
// it would not survive Parse.
func toBankQuestion(gq generatedQuestion, id int, params Params) (bank.Question, bool) {
	if len(gq.Options) != bank.OptionCount {
		return bank.Question{}, false
	}

	keys := []bank.OptionKey{bank.KeyA, bank.KeyB, bank.KeyC, bank.KeyD}
	options := make([]bank.Option, bank.OptionCount)
	for i, text := range gq.Options {
		options[i] = bank.Option{Key: keys[i], Text: text}
	}

	q := bank.Question{
		ID:         id,
		Category:   params.Category,
		Difficulty: params.Difficulty,
		Prompt:     gq.Prompt,
		Options:    options,
		CorrectKey: bank.ParseKey(gq.Answer),
	}
	if !q.IsValid() {
		return bank.Question{}, false
	}
	return q, true
}
