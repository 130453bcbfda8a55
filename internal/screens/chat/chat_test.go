package chat

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studiz/internal/intent"
	"github.com/abhisek/studiz/internal/review"
	"github.com/abhisek/studiz/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testChatScreen() *ChatScreen {
	return New(review.NewMachine(review.Config{}))
}

func TestStartsWithGreeting(t *testing.T) {
	c := testChatScreen()
	if len(c.lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(c.lines))
	}
	if c.lines[0].role != roleAssistant {
		t.Error("greeting should come from the assistant")
	}
}

func TestEnterSendsUtterance(t *testing.T) {
	c := testChatScreen()

	for _, r := range "status" {
		c.Update(keyPress(r))
	}
	_, cmd := c.Update(specialKey(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected a respond command")
	}
	if !c.waiting {
		t.Error("expected waiting state after send")
	}
	last := c.lines[len(c.lines)-1]
	if last.role != roleUser || last.text != "status" {
		t.Errorf("last line = %+v, want user 'status'", last)
	}
}

func TestEnterIgnoresEmptyInput(t *testing.T) {
	c := testChatScreen()

	_, cmd := c.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for empty input")
	}
	if c.waiting {
		t.Error("expected no waiting state for empty input")
	}
}

func TestInputLockedWhileWaiting(t *testing.T) {
	c := testChatScreen()
	c.waiting = true

	before := len(c.lines)
	_, cmd := c.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command while waiting")
	}
	if len(c.lines) != before {
		t.Error("expected no transcript change while waiting")
	}
}

func TestResponseAppendsAssistantLine(t *testing.T) {
	c := testChatScreen()
	c.waiting = true

	c.Update(responseMsg{Resp: review.Response{Text: "We're not currently in a review session."}})

	if c.waiting {
		t.Error("expected waiting cleared after response")
	}
	last := c.lines[len(c.lines)-1]
	if last.role != roleAssistant {
		t.Error("expected assistant line appended")
	}
	if !strings.Contains(last.text, "not currently in a review session") {
		t.Errorf("unexpected reply text: %q", last.text)
	}
}

func TestSessionEndPushesSummary(t *testing.T) {
	c := testChatScreen()
	c.waiting = true

	sum := review.Summary{Correct: 2, Total: 3, Accuracy: 66.7}
	_, cmd := c.Update(responseMsg{Resp: review.Response{
		Text:    "Review session ended.",
		Summary: &sum,
		Intent:  intent.KindStopReview,
	}})
	if cmd == nil {
		t.Fatal("expected a push command for the summary screen")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen.Title() != "Session Summary" {
		t.Errorf("pushed screen = %q, want Session Summary", push.Screen.Title())
	}
}

func TestEscPopsScreen(t *testing.T) {
	c := testChatScreen()

	_, cmd := c.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestViewShowsTranscriptAndInput(t *testing.T) {
	c := testChatScreen()
	v := c.View(80, 24)

	if !strings.Contains(v, "study review assistant") {
		t.Errorf("view missing greeting:\n%s", v)
	}
}

func TestScrollClampsToTop(t *testing.T) {
	c := testChatScreen()
	c.scroll = 10000

	// Rendering clamps the scroll offset to the transcript length.
	c.View(80, 24)
	if c.scroll > len(c.lines)*3 {
		t.Errorf("scroll = %d, expected clamped near transcript size", c.scroll)
	}
}
