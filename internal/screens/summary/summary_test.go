package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/progression"
	"github.com/amahdy/quizdrill/internal/report"
	"github.com/amahdy/quizdrill/internal/retrytest"
	"github.com/amahdy/quizdrill/internal/router"
)

func fixtureReport() report.Report {
	return report.Report{
		ScorePercentage: 50,
		TotalQuestions:  2,
		CorrectAnswers:  1,
		XPEarned:        10,
		Tier:            progression.TierForScore(50),
		WrongAnswers: []retrytest.WrongAnswerRecord{
			{
				QuestionID:    2,
				Category:      "Colors",
				QuestionText:  "Color of sky?",
				OptionTexts:   []string{"red", "green", "blue", "yellow"},
				SelectedIndex: 0,
				CorrectIndex:  2,
				XPReward:      10,
				RecordedAt:    time.Now().UTC(),
			},
		},
	}
}

func fixtureProgress() progress.UserProgress {
	return progress.UserProgress{
		TotalXP:          110,
		TestsCompleted:   3,
		PerCategoryTests: map[string]int{"Colors": 3},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(fixtureReport(), fixtureProgress())
	if s.Title() != "Test Summary" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(fixtureReport(), fixtureProgress())
	view := s.View(80, 24)

	for _, want := range []string{
		"Test complete!",
		"Correct: 1/2",
		"XP earned: +10",
		"Missed questions",
		"Color of sky?",
		"you: red",
		"answer: blue",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_LevelUpBanner(t *testing.T) {
	r := fixtureReport()
	r.LeveledUp = true
	r.NewLevel = 2
	s := New(r, fixtureProgress())

	if !strings.Contains(s.View(80, 24), "Level up! You reached level 2") {
		t.Error("expected the level-up banner")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(fixtureReport(), fixtureProgress())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should navigate home")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(fixtureReport(), fixtureProgress())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should navigate home")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(fixtureReport(), fixtureProgress())
	hints := s.KeyHints()
	if len(hints) != 1 || hints[0].Key != "Enter" {
		t.Errorf("hints = %+v", hints)
	}
}
