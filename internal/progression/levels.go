package progression

// levelThresholds holds the cumulative XP required to reach each level:
// index i is the XP floor of level i+1. Beyond the table, every further
// level costs extrapolationStep XP.
var levelThresholds = []int{0, 100, 250, 500, 1000, 2000, 3500, 5500, 8500, 13000, 20000}

// extrapolationStep is the XP width of every level past the table.
const extrapolationStep = 10000

// Level returns the level reached with the given total XP. Levels start
// at 1 and never decrease with XP.
func Level(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}

	last := len(levelThresholds) - 1
	if totalXP < levelThresholds[last] {
		for i := last; i >= 0; i-- {
			if totalXP >= levelThresholds[i] {
				return i + 1
			}
		}
	}

	past := totalXP - levelThresholds[last]
	return last + 1 + (past+extrapolationStep-1)/extrapolationStep
}

// Progress describes how far along the current level the learner is.
type Progress struct {
	// Current is XP earned since the floor of the current level.
	Current int

	// Required is the XP width of the current level.
	Required int

	// Percentage is Current/Required clamped to [0,100].
	Percentage float64
}

// LevelProgress computes progress within the level reached at totalXP.
func LevelProgress(totalXP int) Progress {
	if totalXP < 0 {
		totalXP = 0
	}

	floor, width := levelBounds(Level(totalXP))
	pct := float64(totalXP-floor) / float64(width) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return Progress{
		Current:    totalXP - floor,
		Required:   width,
		Percentage: pct,
	}
}

// levelBounds returns the XP floor of the given level and the XP width
// up to the next level.
func levelBounds(level int) (floor, width int) {
	if level < 1 {
		level = 1
	}

	count := len(levelThresholds)
	if level <= count {
		floor = levelThresholds[level-1]
		if level < count {
			return floor, levelThresholds[level] - floor
		}
		return floor, extrapolationStep
	}

	top := levelThresholds[count-1]
	floor = top + (level-count-1)*extrapolationStep
	return floor, extrapolationStep
}
