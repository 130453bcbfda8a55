package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/router"
	"github.com/abhisek/studiz/internal/screen"
	"github.com/abhisek/studiz/internal/store"
	"github.com/abhisek/studiz/internal/ui/layout"
	"github.com/abhisek/studiz/internal/ui/theme"
)

type statsLoadedMsg struct {
	Review store.ReviewStats
	Usage  []store.LLMUsage
	Err    error
}

// StatsScreen displays aggregate study statistics and LLM usage.
type StatsScreen struct {
	eventRepo store.EventRepo
	review    store.ReviewStats
	usage     []store.LLMUsage
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		review, err := s.eventRepo.ReviewStats(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		usage, err := s.eventRepo.LLMUsageByPurpose(ctx)
		if err != nil {
			return statsLoadedMsg{Review: review}
		}
		return statsLoadedMsg{Review: review, Usage: usage}
	}
}

func (s *StatsScreen) Title() string {
	return "Study Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.review = msg.Review
			s.usage = msg.Usage
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	center := func(s string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
		b.WriteString("\n")
	}

	center(header.Render("Review"))
	center(divider(width))

	var accuracy float64
	if s.review.QuestionsAnswered > 0 {
		accuracy = float64(s.review.CorrectAnswers) / float64(s.review.QuestionsAnswered) * 100
	}

	rows := []string{
		fmt.Sprintf("Sessions started:    %d", s.review.SessionsStarted),
		fmt.Sprintf("Sessions completed:  %d", s.review.SessionsCompleted),
		fmt.Sprintf("Questions answered:  %d", s.review.QuestionsAnswered),
		fmt.Sprintf("Correct answers:     %d (%.1f%%)", s.review.CorrectAnswers, accuracy),
		fmt.Sprintf("Documents ingested:  %d", s.review.DocumentsIngested),
	}
	for _, r := range rows {
		center(value.Render(r))
	}

	if len(s.usage) > 0 {
		b.WriteString("\n")
		center(header.Render("LLM Usage"))
		center(divider(width))
		for _, u := range s.usage {
			line := fmt.Sprintf("%-14s  %4d calls  %7d in  %7d out  %5dms avg",
				u.Key, u.Requests, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
			center(value.Render(line))
		}
	}

	return b.String()
}

func divider(width int) string {
	n := width - 8
	if n > 50 {
		n = 50
	}
	if n < 1 {
		n = 1
	}
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", n))
}
