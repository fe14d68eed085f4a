package bank

// OptionKey identifies one of the four answer options.
type OptionKey string

const (
	KeyA OptionKey = "A"
	KeyB OptionKey = "B"
	KeyC OptionKey = "C"
	KeyD OptionKey = "D"
)

// OptionCount is the number of options every valid question carries.
const OptionCount = 4

// Difficulty is the optional per-question difficulty marker.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Option is a single answer option: its key (A-D) and display text.
type Option struct {
	Key  OptionKey
	Text string
}

// Question is one multiple-choice question from a bank file.
// A valid question has a non-empty prompt, exactly four options with
// unique keys, a correct key present among those options, and a
// non-empty category.
type Question struct {
	ID         int
	Category   string
	Difficulty Difficulty
	Prompt     string
	Options    []Option
	CorrectKey OptionKey
}

// OptionIndex returns the position of key within the options, or -1.
func (q Question) OptionIndex(key OptionKey) int {
	for i, opt := range q.Options {
		if opt.Key == key {
			return i
		}
	}
	return -1
}

// OptionTexts returns the option texts in display order.
func (q Question) OptionTexts() []string {
	texts := make([]string, len(q.Options))
	for i, opt := range q.Options {
		texts[i] = opt.Text
	}
	return texts
}

// IsValid reports whether the question satisfies the bank invariants.
func (q Question) IsValid() bool {
	if q.Prompt == "" || q.Category == "" || q.CorrectKey == "" {
		return false
	}
	if len(q.Options) != OptionCount {
		return false
	}
	seen := make(map[OptionKey]bool, OptionCount)
	for _, opt := range q.Options {
		if seen[opt.Key] {
			return false
		}
		seen[opt.Key] = true
	}
	return seen[q.CorrectKey]
}

// FilterCategory returns the questions belonging to one category,
// preserving bank order. The source slice is untouched.
func FilterCategory(questions []Question, category string) []Question {
	var sub []Question
	for _, q := range questions {
		if q.Category == category {
			sub = append(sub, q)
		}
	}
	return sub
}

// ParseKey normalizes a raw key string ("a", "B ") to an OptionKey.
// Returns "" if the input is not a single A-D letter.
func ParseKey(s string) OptionKey {
	switch s {
	case "A", "a":
		return KeyA
	case "B", "b":
		return KeyB
	case "C", "c":
		return KeyC
	case "D", "d":
		return KeyD
	}
	return ""
}

// ParseDifficulty normalizes a raw difficulty string, returning ""
// for anything outside the known set.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	}
	return ""
}
