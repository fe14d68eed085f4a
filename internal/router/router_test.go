package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/amahdy/quizdrill/internal/screen"
)

// stubScreen is a minimal screen for router tests.
type stubScreen struct {
	name      string
	refreshed int
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string           { return s.name }
func (s *stubScreen) Title() string                           { return s.name }
func (s *stubScreen) Refresh() tea.Cmd {
	s.refreshed++
	return nil
}

func TestPushAndPop(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	second := &stubScreen{name: "second"}
	r.Push(second)
	if r.Depth() != 2 {
		t.Errorf("Depth after push = %d, want 2", r.Depth())
	}
	if r.Active() != second {
		t.Error("Active should be the pushed screen")
	}

	r.Pop()
	if r.Active() != root {
		t.Error("Active after pop should be root")
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1 (pop on root is a no-op)", r.Depth())
	}
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)
	r.Push(&stubScreen{name: "a"})
	r.Push(&stubScreen{name: "b"})

	r.PopToRoot()
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
	if r.Active() != root {
		t.Error("Active after PopToRoot should be root")
	}
}

func TestPopRefreshesRevealedScreen(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)
	r.Push(&stubScreen{name: "a"})

	r.Pop()
	if root.refreshed != 1 {
		t.Errorf("root refreshed %d times, want 1", root.refreshed)
	}

	r.Push(&stubScreen{name: "a"})
	r.Push(&stubScreen{name: "b"})
	r.PopToRoot()
	if root.refreshed != 2 {
		t.Errorf("root refreshed %d times, want 2", root.refreshed)
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	second := &stubScreen{name: "second"}
	r.Update(PushScreenMsg{Screen: second})
	if r.Active() != second {
		t.Error("PushScreenMsg should activate the new screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != root {
		t.Error("PopScreenMsg should reveal the root screen")
	}
}
