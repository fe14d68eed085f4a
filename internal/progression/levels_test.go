package progression

import (
	"math"
	"testing"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{1000, 5},
		{19999, 10},
		{20000, 11},
		{25000, 12},
		{30000, 12},
		{30001, 13},
		{40000, 13},
		{-50, 1},
	}

	for _, tt := range tests {
		got := Level(tt.xp)
		if got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	p := LevelProgress(150)
	if p.Current != 50 || p.Required != 150 {
		t.Errorf("LevelProgress(150) = %d/%d, want 50/150", p.Current, p.Required)
	}
	if math.Abs(p.Percentage-33.33) > 0.01 {
		t.Errorf("LevelProgress(150) percentage = %.2f, want 33.33", p.Percentage)
	}
}

func TestLevelProgressBoundaries(t *testing.T) {
	tests := []struct {
		xp      int
		current int
		pct     float64
	}{
		{0, 0, 0},
		{100, 0, 0},
		{20000, 0, 0},
		{25000, 5000, 50},
	}

	for _, tt := range tests {
		p := LevelProgress(tt.xp)
		if p.Current != tt.current {
			t.Errorf("LevelProgress(%d).Current = %d, want %d", tt.xp, p.Current, tt.current)
		}
		if math.Abs(p.Percentage-tt.pct) > 0.01 {
			t.Errorf("LevelProgress(%d).Percentage = %.2f, want %.2f", tt.xp, p.Percentage, tt.pct)
		}
	}
}

func TestLevelProgressClamped(t *testing.T) {
	for _, xp := range []int{-10, 0, 150, 20000, 25000, 123456} {
		p := LevelProgress(xp)
		if p.Percentage < 0 || p.Percentage > 100 {
			t.Errorf("LevelProgress(%d).Percentage = %.2f, out of [0,100]", xp, p.Percentage)
		}
	}
}
