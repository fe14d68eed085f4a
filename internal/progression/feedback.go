package progression

// FeedbackTier buckets a session score into the message tier shown on
// the summary screen.
type FeedbackTier string

const (
	TierExcellent        FeedbackTier = "excellent"
	TierGood             FeedbackTier = "good"
	TierNeedsImprovement FeedbackTier = "needs_improvement"
)

// DisplayMessage returns the summary-screen message for the tier.
func (t FeedbackTier) DisplayMessage() string {
	switch t {
	case TierExcellent:
		return "Excellent work!"
	case TierGood:
		return "Good job, keep going!"
	case TierNeedsImprovement:
		return "Keep practicing, you'll get there."
	default:
		return string(t)
	}
}

// TierForScore maps a score percentage (0-100) to its feedback tier.
func TierForScore(scorePct float64) FeedbackTier {
	switch {
	case scorePct >= 90:
		return TierExcellent
	case scorePct >= 70:
		return TierGood
	default:
		return TierNeedsImprovement
	}
}
