package quizgen

import "github.com/amahdy/quizdrill/internal/llm"

// questionSetSchema is the structured output contract for generated
// questions. Keys mirror the bank grammar: four options keyed A-D and
// a single correct key.
func questionSetSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "quiz-question-set",
		Description: "A set of multiple-choice quiz questions with exactly four options each",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt": map[string]any{
								"type":        "string",
								"description": "The question text",
							},
							"options": map[string]any{
								"type":        "array",
								"description": "Exactly four answer options in display order (A, B, C, D)",
								"items":       map[string]any{"type": "string"},
							},
							"answer": map[string]any{
								"type":        "string",
								"description": "The key of the correct option",
								"enum":        []any{"A", "B", "C", "D"},
							},
						},
						"required": []any{"prompt", "options", "answer"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

// generatedSet mirrors questionSetSchema for unmarshalling.
type generatedSet struct {
	Questions []generatedQuestion `json:"questions"`
}

type generatedQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}
