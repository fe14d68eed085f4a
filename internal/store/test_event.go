package store

import (
	"context"
	"fmt"

	"github.com/amahdy/quizdrill/ent"
	"github.com/amahdy/quizdrill/ent/testevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTestEvent(ctx context.Context, data TestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.TestEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetAction(data.Action).
		SetKind(data.Kind).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetScorePct(data.ScorePct).
		SetXpEarned(data.XPEarned)

	if data.Category != "" {
		builder = builder.SetCategory(data.Category)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save test event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryTestEvents(ctx context.Context, opts QueryOpts) ([]TestEventRecord, error) {
	query := r.client.TestEvent.Query().
		Order(ent.Desc(testevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(testevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(testevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(testevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(testevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query test events: %w", err)
	}

	records := make([]TestEventRecord, len(events))
	for i, e := range events {
		records[i] = TestEventRecord{
			AttemptID:      e.AttemptID,
			Action:         e.Action,
			Kind:           e.Kind,
			Category:       e.Category,
			TotalQuestions: e.TotalQuestions,
			CorrectAnswers: e.CorrectAnswers,
			ScorePct:       e.ScorePct,
			XPEarned:       e.XpEarned,
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) CurrentSequence(ctx context.Context) (int64, error) {
	var next int64
	err := r.seq.db.QueryRowContext(ctx,
		`SELECT next_val FROM global_sequence WHERE id = 1`,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	return next - 1, nil
}
