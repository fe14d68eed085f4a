package bank

import (
	"bufio"
	"strconv"
	"strings"
	"unicode"
)

// Parse turns raw question-bank text into the ordered list of valid
// questions it contains. The grammar is line oriented:
//
//	Category: World History
//	Difficulty: medium
//	1. Which empire built the Hanging Gardens?
//	A) Assyrian
//	B) Babylonian
//	C) Persian
//	D) Egyptian
//	Answer: B
//
// A category line sets the active category for every question that
// follows it until another category line appears. A question-start
// line carries a numeric id and the prompt; option lines and the
// answer line belong to the open block. A block is flushed when the
// next question-start line is seen or at end of input.
//
// Parsing never fails: blocks missing a prompt, a category, the
// answer key, or exactly four options are silently dropped and the
// result is simply smaller. An empty slice means the text held no
// usable questions, which callers must treat as its own condition
// rather than an error.
func Parse(rawText string) []Question {
	return Check(rawText).Kept
}

// CheckResult reports what a bank text parses to: the questions kept
// and the ids of blocks dropped for violating the question invariants.
type CheckResult struct {
	Kept    []Question
	Dropped []int
}

// Check parses like Parse but also records which blocks were dropped,
// for bank-file linting.
func Check(rawText string) CheckResult {
	var (
		result     CheckResult
		current    *Question
		category   string
		difficulty Difficulty
	)

	flush := func() {
		if current == nil {
			return
		}
		if current.IsValid() {
			result.Kept = append(result.Kept, *current)
		} else {
			result.Dropped = append(result.Dropped, current.ID)
		}
		current = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(rawText))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if name, ok := markerValue(line, "Category:"); ok {
			category = name
			continue
		}
		if level, ok := markerValue(line, "Difficulty:"); ok {
			difficulty = ParseDifficulty(strings.ToLower(level))
			continue
		}
		if key, ok := markerValue(line, "Answer:"); ok {
			if current != nil {
				current.CorrectKey = ParseKey(key)
			}
			continue
		}

		if id, prompt, ok := splitQuestionStart(line); ok {
			flush()
			current = &Question{
				ID:         id,
				Category:   category,
				Difficulty: difficulty,
				Prompt:     prompt,
			}
			continue
		}

		if opt, ok := splitOption(line); ok && current != nil {
			if len(current.Options) < OptionCount {
				current.Options = append(current.Options, opt)
			}
			continue
		}

		// Anything else is noise; ignore it.
	}
	flush()

	return result
}

// markerValue matches a "Prefix: value" line case-insensitively on the
// prefix and returns the trimmed value.
func markerValue(line, prefix string) (string, bool) {
	if len(line) < len(prefix) {
		return "", false
	}
	if !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}

// splitQuestionStart matches "<number>. <prompt>" lines.
func splitQuestionStart(line string) (int, string, bool) {
	dot := strings.Index(line, ".")
	if dot <= 0 {
		return 0, "", false
	}
	id, err := strconv.Atoi(strings.TrimSpace(line[:dot]))
	if err != nil {
		return 0, "", false
	}
	return id, strings.TrimSpace(line[dot+1:]), true
}

// splitOption matches "<Letter>) <text>" lines, splitting at the
// first closing parenthesis.
func splitOption(line string) (Option, bool) {
	paren := strings.Index(line, ")")
	if paren <= 0 {
		return Option{}, false
	}
	rawKey := strings.TrimSpace(line[:paren])
	if len(rawKey) != 1 || !unicode.IsLetter(rune(rawKey[0])) {
		return Option{}, false
	}
	key := ParseKey(rawKey)
	if key == "" {
		return Option{}, false
	}
	return Option{
		Key:  key,
		Text: strings.TrimSpace(line[paren+1:]),
	}, true
}
