package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studiz/internal/review"
	"github.com/abhisek/studiz/internal/router"
)

func TestViewShowsScore(t *testing.T) {
	s := New(review.Summary{Correct: 4, Total: 5, Accuracy: 80})
	v := s.View(80, 24)

	if !strings.Contains(v, "Questions: 5") {
		t.Errorf("view missing question count:\n%s", v)
	}
	if !strings.Contains(v, "Correct: 4") {
		t.Errorf("view missing correct count:\n%s", v)
	}
	if !strings.Contains(v, "80.0%") {
		t.Errorf("view missing accuracy:\n%s", v)
	}
}

func TestEnterPopsScreen(t *testing.T) {
	s := New(review.Summary{Correct: 4, Total: 5, Accuracy: 80})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Update(enter) returned nil cmd")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("Update(enter) cmd = %T, want router.PopScreenMsg", cmd())
	}
}

func TestEscPopsScreen(t *testing.T) {
	s := New(review.Summary{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("Update(esc) returned nil cmd")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("Update(esc) cmd = %T, want router.PopScreenMsg", cmd())
	}
}

func TestVerdictBands(t *testing.T) {
	tests := []struct {
		name string
		sum  review.Summary
		want string
	}{
		{"empty", review.Summary{}, "No questions answered"},
		{"excellent", review.Summary{Correct: 9, Total: 10, Accuracy: 90}, "Excellent"},
		{"good", review.Summary{Correct: 7, Total: 10, Accuracy: 70}, "Good session"},
		{"decent", review.Summary{Correct: 4, Total: 10, Accuracy: 40}, "Decent start"},
		{"tough", review.Summary{Correct: 1, Total: 10, Accuracy: 10}, "Tough round"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := verdict(tt.sum)
			if !strings.Contains(got, tt.want) {
				t.Errorf("verdict(%+v) = %q, want substring %q", tt.sum, got, tt.want)
			}
		})
	}
}
