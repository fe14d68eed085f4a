package retrytest

import (
	"github.com/amahdy/quizdrill/internal/bank"
)

var keyOrder = []bank.OptionKey{bank.KeyA, bank.KeyB, bank.KeyC, bank.KeyD}

// Questions converts a built retry session back into playable bank
// questions. Option texts keep their original display order, so the
// learner sees the question exactly as they missed it.
func Questions(records []WrongAnswerRecord) []bank.Question {
	questions := make([]bank.Question, 0, len(records))
	for _, rec := range records {
		q := bank.Question{
			ID:       rec.QuestionID,
			Category: rec.Category,
			Prompt:   rec.QuestionText,
		}
		for i, text := range rec.OptionTexts {
			if i >= len(keyOrder) {
				break
			}
			q.Options = append(q.Options, bank.Option{Key: keyOrder[i], Text: text})
		}
		if rec.CorrectIndex >= 0 && rec.CorrectIndex < len(q.Options) {
			q.CorrectKey = q.Options[rec.CorrectIndex].Key
		}
		if q.IsValid() {
			questions = append(questions, q)
		}
	}
	return questions
}
