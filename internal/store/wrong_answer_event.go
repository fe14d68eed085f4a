package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendWrongAnswer(ctx context.Context, data WrongAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.WrongAnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetQuestionID(data.QuestionID).
		SetCategory(data.Category).
		SetQuestionText(data.QuestionText).
		SetOptionTexts(data.OptionTexts).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetXpReward(data.XPReward)

	if !data.RecordedAt.IsZero() {
		builder = builder.SetTimestamp(data.RecordedAt)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save wrong answer event: %w", err)
	}
	return nil
}
