package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSetSchema() *Schema {
	return &Schema{
		Name:        "test-question-set",
		Description: "A set of generated quiz questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt": map[string]any{"type": "string"},
							"answer": map[string]any{
								"type": "string",
								"enum": []any{"A", "B", "C", "D"},
							},
						},
						"required": []any{"prompt", "answer"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"questions":[{"prompt":"What is 2+2?","answer":"B"}]}`)
	if err := validateResponse(questionSetSchema(), raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `this is not json`},
		{"missing required", `{"questions":[{"prompt":"Q?"}]}`},
		{"bad enum", `{"questions":[{"prompt":"Q?","answer":"E"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionSetSchema(), json.RawMessage(tt.raw))
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}
