package progression

// RewardPolicy controls how session results convert to XP. Values come
// from configuration; nothing here is hard-coded into the engine.
type RewardPolicy struct {
	// XPPerCorrect is the XP awarded for each correct answer.
	XPPerCorrect int

	// PerfectBonus is the extra XP awarded for a flawless session.
	PerfectBonus int
}

// DefaultRewardPolicy returns the stock policy used when no config
// overrides it.
func DefaultRewardPolicy() RewardPolicy {
	return RewardPolicy{XPPerCorrect: 10, PerfectBonus: 20}
}

// XPEarned computes the XP award for a session with the given counts.
// A zero-question session earns nothing and never counts as perfect.
func (p RewardPolicy) XPEarned(correct, total int) int {
	if total <= 0 || correct <= 0 {
		return 0
	}
	xp := correct * p.XPPerCorrect
	if correct == total {
		xp += p.PerfectBonus
	}
	return xp
}
