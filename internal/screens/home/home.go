package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/review"
	"github.com/abhisek/studiz/internal/router"
	"github.com/abhisek/studiz/internal/screen"
	"github.com/abhisek/studiz/internal/screens/chat"
	"github.com/abhisek/studiz/internal/screens/history"
	"github.com/abhisek/studiz/internal/screens/placeholder"
	"github.com/abhisek/studiz/internal/screens/stats"
	"github.com/abhisek/studiz/internal/store"
	"github.com/abhisek/studiz/internal/ui/components"
	"github.com/abhisek/studiz/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats store.ReviewStats
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	eventRepo store.EventRepo
	stats     store.ReviewStats
	docCount  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. machine may be nil when no review
// pipeline is configured; the chat entry then shows a placeholder.
func New(machine *review.Machine, eventRepo store.EventRepo, docCount int) *HomeScreen {
	items := []components.MenuItem{
		{Label: "REVIEW CHAT", Action: func() tea.Cmd {
			if machine == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Review Chat")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(machine)}
			}
		}},
		{Label: "ANSWER HISTORY", Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Answer History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "STUDY STATS", Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Study Stats")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(eventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		eventRepo: eventRepo,
		docCount:  docCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.eventRepo == nil {
		return nil
	}
	repo := h.eventRepo
	return func() tea.Msg {
		s, err := repo.ReviewStats(context.Background())
		if err != nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{Stats: s}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		h.stats = m.Stats
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("S T U D I Z")
	subtitle := theme.Subtitle.Width(width).Render("conversational study review")
	sections = append(sections, title+"\n"+subtitle)

	var accuracy float64
	if h.stats.QuestionsAnswered > 0 {
		accuracy = float64(h.stats.CorrectAnswers) / float64(h.stats.QuestionsAnswered) * 100
	}
	statsLine := fmt.Sprintf("%d docs loaded   %d sessions   %d answered   %.0f%% accuracy",
		h.docCount, h.stats.SessionsCompleted, h.stats.QuestionsAnswered, accuracy)
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
