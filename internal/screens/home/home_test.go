package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/progression"
	"github.com/amahdy/quizdrill/internal/retrytest"
	"github.com/amahdy/quizdrill/internal/router"
)

func newTestHome() *HomeScreen {
	return New(Options{
		Policy: progression.DefaultRewardPolicy(),
		Gates:  retrytest.DefaultGates(),
	})
}

func pool(n int) []retrytest.WrongAnswerRecord {
	records := make([]retrytest.WrongAnswerRecord, n)
	for i := range records {
		records[i] = retrytest.WrongAnswerRecord{
			QuestionID:    i + 1,
			Category:      "Colors",
			QuestionText:  "q",
			OptionTexts:   []string{"a", "b", "c", "d"},
			SelectedIndex: 0,
			CorrectIndex:  1,
		}
	}
	return records
}

func TestHomeScreen_Title(t *testing.T) {
	h := newTestHome()
	if h.Title() != "Home" {
		t.Errorf("Title = %q", h.Title())
	}
}

func TestHomeScreen_RetryLockedByDefault(t *testing.T) {
	h := newTestHome()

	view := h.View(80, 24)
	if !strings.Contains(view, "RETRY TEST") {
		t.Fatal("expected the retry entry in the menu")
	}
	if !strings.Contains(view, "locked") {
		t.Error("retry should be locked with no progress")
	}
	if !strings.Contains(view, "10 tests") || !strings.Contains(view, "10 misses") {
		t.Error("locked hint should name both deficits")
	}
}

func TestHomeScreen_RetryUnlocksWithProgress(t *testing.T) {
	h := newTestHome()

	h.Update(progressLoadedMsg{Agg: progress.UserProgress{
		TotalXP:          500,
		TestsCompleted:   12,
		PerCategoryTests: map[string]int{"Colors": 12},
		WrongAnswerPool:  pool(15),
	}})

	if strings.Contains(h.View(80, 24), "locked") {
		t.Error("retry should be unlocked with 12 tests and 15 misses")
	}
}

func TestHomeScreen_CategoryRetryUsesCategoryGate(t *testing.T) {
	h := New(Options{
		Policy:   progression.DefaultRewardPolicy(),
		Gates:    retrytest.DefaultGates(),
		Category: "Colors",
	})

	// Global gates pass here, but the category needs 100 of its own
	// tests before its retry unlocks.
	h.Update(progressLoadedMsg{Agg: progress.UserProgress{
		TestsCompleted:   200,
		PerCategoryTests: map[string]int{"Colors": 50},
		WrongAnswerPool:  pool(15),
	}})
	if !strings.Contains(h.View(80, 24), "locked") {
		t.Error("category retry should stay locked below the category test gate")
	}

	h.Update(progressLoadedMsg{Agg: progress.UserProgress{
		TestsCompleted:   200,
		PerCategoryTests: map[string]int{"Colors": 120},
		WrongAnswerPool:  pool(15),
	}})
	if strings.Contains(h.View(80, 24), "locked") {
		t.Error("category retry should unlock with 120 category tests and misses in the sub-pool")
	}
}

func TestHomeScreen_CategoryRetryNeedsCategoryMisses(t *testing.T) {
	h := New(Options{
		Policy:   progression.DefaultRewardPolicy(),
		Gates:    retrytest.DefaultGates(),
		Category: "History",
	})

	// The pool holds only Colors misses, so the History sub-pool is
	// empty and the gate stays shut.
	h.Update(progressLoadedMsg{Agg: progress.UserProgress{
		TestsCompleted:   200,
		PerCategoryTests: map[string]int{"History": 150},
		WrongAnswerPool:  pool(15),
	}})
	if !strings.Contains(h.View(80, 24), "locked") {
		t.Error("category retry should stay locked with no misses in the category")
	}
}

func TestHomeScreen_ShowsStatsOnceLoaded(t *testing.T) {
	h := newTestHome()

	if strings.Contains(h.View(80, 24), "tests completed") {
		t.Error("stats line should wait for the aggregate to load")
	}

	h.Update(progressLoadedMsg{Agg: progress.UserProgress{TotalXP: 250, TestsCompleted: 4}})

	view := h.View(80, 24)
	if !strings.Contains(view, "250 XP") || !strings.Contains(view, "4 tests completed") {
		t.Error("stats line should show the loaded aggregate")
	}
}

func TestHomeScreen_StartTestPushesSession(t *testing.T) {
	h := newTestHome()

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on START TEST should produce a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}

func TestHomeScreen_SelectionPreservedAcrossReload(t *testing.T) {
	h := newTestHome()

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	selected := h.menu.Selected

	h.Update(progressLoadedMsg{Agg: progress.UserProgress{TestsCompleted: 1}})
	if h.menu.Selected != selected {
		t.Errorf("Selected = %d after reload, want %d", h.menu.Selected, selected)
	}
}
