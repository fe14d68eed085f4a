package bank

import "testing"

const sampleBank = `Category: World History
Difficulty: medium
1. Which empire built the Hanging Gardens?
A) Assyrian
B) Babylonian
C) Persian
D) Egyptian
Answer: B

2. Who was the first Roman emperor?
A) Julius Caesar
B) Nero
C) Augustus
D) Trajan
Answer: C
`

func TestParse(t *testing.T) {
	questions := Parse(sampleBank)
	if len(questions) != 2 {
		t.Fatalf("Parse returned %d questions, want 2", len(questions))
	}

	first := questions[0]
	if first.ID != 1 {
		t.Errorf("first question ID = %d, want 1", first.ID)
	}
	if first.Category != "World History" {
		t.Errorf("first question category = %q, want %q", first.Category, "World History")
	}
	if first.Difficulty != DifficultyMedium {
		t.Errorf("first question difficulty = %q, want %q", first.Difficulty, DifficultyMedium)
	}
	if first.Prompt != "Which empire built the Hanging Gardens?" {
		t.Errorf("first question prompt = %q", first.Prompt)
	}
	if first.CorrectKey != KeyB {
		t.Errorf("first question correct key = %q, want B", first.CorrectKey)
	}
	if len(first.Options) != OptionCount {
		t.Fatalf("first question has %d options, want %d", len(first.Options), OptionCount)
	}
	if first.Options[1].Text != "Babylonian" {
		t.Errorf("option B text = %q, want %q", first.Options[1].Text, "Babylonian")
	}

	second := questions[1]
	if second.ID != 2 || second.CorrectKey != KeyC {
		t.Errorf("second question = id %d key %q, want id 2 key C", second.ID, second.CorrectKey)
	}
	if second.Category != "World History" {
		t.Errorf("category did not stick: got %q", second.Category)
	}
}

func TestParseDropsMalformedBlocks(t *testing.T) {
	// The middle block is missing an option and its answer line; the
	// surrounding blocks must survive in their original order.
	text := `Category: Science
1. What is the chemical symbol for gold?
A) Ag
B) Au
C) Gd
D) Go
Answer: B
2. Which planet is largest?
A) Earth
B) Saturn
3. What gas do plants absorb?
A) Oxygen
B) Nitrogen
C) Carbon dioxide
D) Helium
Answer: C
`
	questions := Parse(text)
	if len(questions) != 2 {
		t.Fatalf("Parse returned %d questions, want 2", len(questions))
	}
	if questions[0].ID != 1 || questions[1].ID != 3 {
		t.Errorf("got question ids %d, %d; want 1, 3", questions[0].ID, questions[1].ID)
	}
}

func TestCheckReportsDropped(t *testing.T) {
	text := `Category: Science
1. What is the chemical symbol for gold?
A) Ag
B) Au
C) Gd
D) Go
Answer: B
2. Which planet is largest?
A) Earth
B) Saturn
3. What gas do plants absorb?
A) Oxygen
B) Nitrogen
C) Carbon dioxide
D) Helium
Answer: C
`
	result := Check(text)
	if len(result.Kept) != 2 {
		t.Fatalf("Check kept %d questions, want 2", len(result.Kept))
	}
	if len(result.Dropped) != 1 || result.Dropped[0] != 2 {
		t.Errorf("Dropped = %v, want [2]", result.Dropped)
	}
}

func TestParseTrailingBlockWithoutBlankLine(t *testing.T) {
	text := "Category: Math\n1. What is 2+2?\nA) 3\nB) 4\nC) 5\nD) 6\nAnswer: B"
	questions := Parse(text)
	if len(questions) != 1 {
		t.Fatalf("Parse returned %d questions, want 1", len(questions))
	}
	if questions[0].CorrectKey != KeyB {
		t.Errorf("correct key = %q, want B", questions[0].CorrectKey)
	}
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"only noise", "hello\nworld\n"},
		{
			"missing category",
			"1. Orphan question?\nA) a\nB) b\nC) c\nD) d\nAnswer: A\n",
		},
		{
			"answer key not among options",
			"Category: X\n1. Q?\nA) a\nB) b\nC) c\nD) d\nAnswer: E\n",
		},
		{
			"duplicate option keys",
			"Category: X\n1. Q?\nA) a\nA) again\nC) c\nD) d\nAnswer: A\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.text); len(got) != 0 {
				t.Errorf("Parse returned %d questions, want 0", len(got))
			}
		})
	}
}

func TestParseMarkerCaseInsensitive(t *testing.T) {
	text := "category: Geography\ndifficulty: easy\n1. Capital of France?\nA) Lyon\nB) Paris\nC) Nice\nD) Lille\nanswer: b\n"
	questions := Parse(text)
	if len(questions) != 1 {
		t.Fatalf("Parse returned %d questions, want 1", len(questions))
	}
	q := questions[0]
	if q.Category != "Geography" || q.Difficulty != DifficultyEasy || q.CorrectKey != KeyB {
		t.Errorf("got category %q difficulty %q key %q", q.Category, q.Difficulty, q.CorrectKey)
	}
}

func TestParseExtraOptionsCapped(t *testing.T) {
	text := "Category: X\n1. Q?\nA) a\nB) b\nC) c\nD) d\nE) e\nAnswer: A\n"
	questions := Parse(text)
	if len(questions) != 1 {
		t.Fatalf("Parse returned %d questions, want 1", len(questions))
	}
	if got := len(questions[0].Options); got != OptionCount {
		t.Errorf("got %d options, want %d", got, OptionCount)
	}
}

func TestFilterCategory(t *testing.T) {
	questions := []Question{
		{ID: 1, Category: "Science"},
		{ID: 2, Category: "History"},
		{ID: 3, Category: "Science"},
	}

	sub := FilterCategory(questions, "Science")
	if len(sub) != 2 || sub[0].ID != 1 || sub[1].ID != 3 {
		t.Errorf("FilterCategory(Science) = %+v, want questions 1 and 3 in order", sub)
	}
	if len(FilterCategory(questions, "Math")) != 0 {
		t.Error("unknown category should yield an empty result")
	}
	if len(questions) != 3 {
		t.Error("source slice must stay untouched")
	}
}
