package quizgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/llm"
)

const generatedJSON = `{
	"questions": [
		{
			"prompt": "Which planet is known as the Red Planet?",
			"options": ["Venus", "Mars", "Jupiter", "Mercury"],
			"answer": "B"
		},
		{
			"prompt": "Broken question with too few options",
			"options": ["only", "three", "here"],
			"answer": "A"
		},
		{
			"prompt": "What gas makes up most of Earth's atmosphere?",
			"options": ["Oxygen", "Carbon dioxide", "Nitrogen", "Argon"],
			"answer": "C"
		}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(generatedJSON)})
	gen := New(mock)

	questions, err := gen.Generate(context.Background(), Params{
		Category:   "Astronomy",
		Difficulty: bank.DifficultyEasy,
		Count:      3,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// The malformed question is dropped, not repaired.
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	first := questions[0]
	if first.ID != 1 || first.Category != "Astronomy" || first.Difficulty != bank.DifficultyEasy {
		t.Errorf("first question metadata = %+v", first)
	}
	if first.CorrectKey != bank.KeyB {
		t.Errorf("first correct key = %q, want B", first.CorrectKey)
	}
	if !first.IsValid() || !questions[1].IsValid() {
		t.Error("generated questions must pass the bank validity filter")
	}
	if questions[1].ID != 2 {
		t.Errorf("second id = %d, want 2", questions[1].ID)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-question-set" {
		t.Errorf("request schema = %+v, want quiz-question-set", req.Schema)
	}
	if !strings.Contains(req.Prompt, "Astronomy") {
		t.Errorf("prompt missing category: %q", req.Prompt)
	}
}

func TestGenerateRequiresCategory(t *testing.T) {
	gen := New(llm.NewMockProvider())
	if _, err := gen.Generate(context.Background(), Params{Count: 3}); err == nil {
		t.Fatal("expected an error without a category")
	}
}

func TestRenderBankRoundTrip(t *testing.T) {
	questions := []bank.Question{
		{
			ID: 1, Category: "Astronomy", Difficulty: bank.DifficultyEasy,
			Prompt: "Which planet is known as the Red Planet?",
			Options: []bank.Option{
				{Key: bank.KeyA, Text: "Venus"},
				{Key: bank.KeyB, Text: "Mars"},
				{Key: bank.KeyC, Text: "Jupiter"},
				{Key: bank.KeyD, Text: "Mercury"},
			},
			CorrectKey: bank.KeyB,
		},
		{
			ID: 2, Category: "Astronomy", Difficulty: bank.DifficultyEasy,
			Prompt: "What gas makes up most of Earth's atmosphere?",
			Options: []bank.Option{
				{Key: bank.KeyA, Text: "Oxygen"},
				{Key: bank.KeyB, Text: "Carbon dioxide"},
				{Key: bank.KeyC, Text: "Nitrogen"},
				{Key: bank.KeyD, Text: "Argon"},
			},
			CorrectKey: bank.KeyC,
		},
	}

	text := RenderBank(questions)
	parsed := bank.Parse(text)

	if len(parsed) != len(questions) {
		t.Fatalf("round trip lost questions: got %d, want %d", len(parsed), len(questions))
	}
	for i := range questions {
		if parsed[i].Prompt != questions[i].Prompt {
			t.Errorf("question %d prompt = %q, want %q", i, parsed[i].Prompt, questions[i].Prompt)
		}
		if parsed[i].CorrectKey != questions[i].CorrectKey {
			t.Errorf("question %d key = %q, want %q", i, parsed[i].CorrectKey, questions[i].CorrectKey)
		}
	}
}
