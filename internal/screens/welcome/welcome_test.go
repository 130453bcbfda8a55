package welcome

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studiz/internal/router"
	"github.com/abhisek/studiz/internal/screen"
)

type fakeHome struct{}

func (fakeHome) Init() tea.Cmd                            { return nil }
func (f fakeHome) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (fakeHome) View(int, int) string                     { return "home" }
func (fakeHome) Title() string                            { return "Home" }

func TestTickAdvancesElapsed(t *testing.T) {
	w := New(func() screen.Screen { return fakeHome{} })

	if cmd := w.Init(); cmd == nil {
		t.Fatal("expected Init to schedule a tick")
	}

	_, cmd := w.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected tick to reschedule itself")
	}
	if w.elapsed != tickInterval {
		t.Errorf("elapsed = %v, want %v", w.elapsed, tickInterval)
	}
}

func TestKeyIgnoredDuringMinSplash(t *testing.T) {
	w := New(func() screen.Screen { return fakeHome{} })

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("expected no transition before minimum splash time")
	}
}

func TestKeyTransitionsAfterMinSplash(t *testing.T) {
	w := New(func() screen.Screen { return fakeHome{} })
	w.elapsed = time.Second

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected transition command after minimum splash time")
	}

	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if rep.Screen.Title() != "Home" {
		t.Errorf("expected home screen, got %q", rep.Screen.Title())
	}
}

func TestTransitionOnlyOnce(t *testing.T) {
	w := New(func() screen.Screen { return fakeHome{} })
	w.elapsed = time.Second

	_, first := w.Update(tea.KeyPressMsg{Code: 'a'})
	if first == nil {
		t.Fatal("expected first transition")
	}
	_, second := w.Update(tea.KeyPressMsg{Code: 'b'})
	if second != nil {
		t.Error("expected no second transition")
	}
}
