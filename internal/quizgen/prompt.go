package quizgen

import (
	"fmt"
	"strings"

	"github.com/amahdy/quizdrill/internal/bank"
)

const systemPrompt = `You write multiple-choice quiz questions for a study app.
Every question has exactly four options and exactly one correct answer.
Options must be plausible and mutually exclusive; avoid "all of the above".
Keep prompts self-contained: no references to images, prior questions, or outside context.`

// buildPrompt renders the user message for one generation request.
func buildPrompt(params Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d multiple-choice questions about %q.\n", params.Count, params.Category)
	if params.Difficulty != "" {
		fmt.Fprintf(&b, "Target difficulty: %s.\n", params.Difficulty)
	}
	if len(params.Avoid) > 0 {
		b.WriteString("Do not repeat these prompts:\n")
		for _, p := range params.Avoid {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	return b.String()
}

// RenderBank renders questions in the bank text format, ready to be
// written to a bank file and parsed back.
func RenderBank(questions []bank.Question) string {
	var b strings.Builder
	var category string
	var difficulty bank.Difficulty

	for _, q := range questions {
		if q.Category != category {
			if category != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "Category: %s\n", q.Category)
			category = q.Category
		}
		if q.Difficulty != difficulty && q.Difficulty != "" {
			fmt.Fprintf(&b, "Difficulty: %s\n", q.Difficulty)
			difficulty = q.Difficulty
		}

		fmt.Fprintf(&b, "%d. %s\n", q.ID, q.Prompt)
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "%s) %s\n", opt.Key, opt.Text)
		}
		fmt.Fprintf(&b, "Answer: %s\n\n", q.CorrectKey)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
