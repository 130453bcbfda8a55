package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studiz/internal/intent"
	"github.com/abhisek/studiz/internal/review"
	"github.com/abhisek/studiz/internal/router"
	"github.com/abhisek/studiz/internal/screen"
	"github.com/abhisek/studiz/internal/screens/summary"
	"github.com/abhisek/studiz/internal/ui/components"
	"github.com/abhisek/studiz/internal/ui/layout"
)

type role int

const (
	roleUser role = iota
	roleAssistant
)

// line is one entry in the conversation transcript.
type line struct {
	role role
	text string
}

// ChatScreen is the conversational review session: the learner types
// utterances, the dialogue machine replies.
type ChatScreen struct {
	machine *review.Machine
	input   components.TextInput
	lines   []line
	waiting bool
	spinner int
	scroll  int // lines scrolled up from the bottom of the transcript

	// Progress cached from the session after each reply, so View never
	// reads machine state while a respond command is in flight.
	reviewing bool
	answered  int
	total     int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

const greeting = `Hi! I'm your study review assistant. Load some notes and say ` +
	`"start a review" to begin, or ask for "settings" to see the current setup.`

// New creates a ChatScreen backed by the given dialogue machine.
func New(machine *review.Machine) *ChatScreen {
	return &ChatScreen{
		machine: machine,
		input:   components.NewTextInput("Say something...", false, 200),
		lines:   []line{{role: roleAssistant, text: greeting}},
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Review Chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case responseMsg:
		return c.handleResponse(msg)

	case spinnerTickMsg:
		if !c.waiting {
			return c, nil
		}
		c.spinner++
		return c, spinnerTick()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if !c.waiting {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	case "pgup":
		c.scroll += 5
		return c, nil
	case "pgdown":
		c.scroll -= 5
		if c.scroll < 0 {
			c.scroll = 0
		}
		return c, nil
	case "enter":
		if c.waiting {
			return c, nil
		}
		utterance := strings.TrimSpace(c.input.Value())
		if utterance == "" {
			return c, nil
		}
		c.lines = append(c.lines, line{role: roleUser, text: utterance})
		c.input = components.NewTextInput("Say something...", false, 200)
		c.waiting = true
		c.scroll = 0
		return c, tea.Batch(c.respond(utterance), spinnerTick(), c.input.Init())
	}

	if !c.waiting {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) handleResponse(msg responseMsg) (screen.Screen, tea.Cmd) {
	c.waiting = false
	if msg.Resp.Text != "" {
		c.lines = append(c.lines, line{role: roleAssistant, text: msg.Resp.Text})
	}

	s := c.machine.Session()
	c.reviewing = s.IsReviewing
	c.answered = s.TotalAnswered
	c.total = s.NumQuestions

	// Status queries also carry a summary; only a reply that actually
	// ended the session (stop, or the final answer) gets the dedicated
	// summary screen on top of the transcript.
	ending := msg.Resp.Intent == intent.KindStopReview || msg.Resp.Intent == intent.KindAnswer
	if msg.Resp.Summary != nil && !c.reviewing && ending {
		sum := *msg.Resp.Summary
		return c, func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(sum)}
		}
	}
	return c, nil
}

// respond runs the dialogue machine off the UI goroutine.
func (c *ChatScreen) respond(utterance string) tea.Cmd {
	machine := c.machine
	return func() tea.Msg {
		resp := machine.Respond(context.Background(), utterance)
		return responseMsg{Resp: resp}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
