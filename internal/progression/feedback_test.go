package progression

import "testing"

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  FeedbackTier
	}{
		{0, TierNeedsImprovement},
		{69, TierNeedsImprovement},
		{69.9, TierNeedsImprovement},
		{70, TierGood},
		{89, TierGood},
		{89.9, TierGood},
		{90, TierExcellent},
		{100, TierExcellent},
	}

	for _, tt := range tests {
		got := TierForScore(tt.score)
		if got != tt.want {
			t.Errorf("TierForScore(%.1f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRewardPolicyXPEarned(t *testing.T) {
	policy := RewardPolicy{XPPerCorrect: 10, PerfectBonus: 20}

	tests := []struct {
		correct int
		total   int
		want    int
	}{
		{0, 10, 0},
		{7, 10, 70},
		{10, 10, 120},
		{1, 1, 30},
		{0, 0, 0},
	}

	for _, tt := range tests {
		got := policy.XPEarned(tt.correct, tt.total)
		if got != tt.want {
			t.Errorf("XPEarned(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
