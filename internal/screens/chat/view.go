package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/ui/components"
	"github.com/abhisek/studiz/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧"}

func (c *ChatScreen) View(width, height int) string {
	if width < 10 || height < 6 {
		return ""
	}

	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	// Bottom rows: progress (when reviewing) + input.
	var footer []string
	if c.reviewing && c.total > 0 {
		pct := float64(c.answered) / float64(c.total)
		current := c.answered + 1
		if current > c.total {
			current = c.total
		}
		label := fmt.Sprintf("Question %d of %d", current, c.total)
		bar := components.NewProgressBar(label, pct, false, textWidth)
		footer = append(footer, "  "+bar.View())
	}
	if c.waiting {
		frame := spinnerFrames[c.spinner%len(spinnerFrames)]
		footer = append(footer, "  "+theme.Hint.Render(frame+" thinking..."))
	} else {
		footer = append(footer, "  "+c.input.View())
	}
	footerBlock := strings.Join(footer, "\n")
	footerHeight := lipgloss.Height(footerBlock) + 1

	transcriptHeight := height - footerHeight
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := c.renderTranscript(textWidth, transcriptHeight)

	return transcript + "\n" + footerBlock
}

// renderTranscript renders the newest transcript lines that fit,
// honoring the scroll offset.
func (c *ChatScreen) renderTranscript(textWidth, height int) string {
	var rendered []string
	for _, l := range c.lines {
		rendered = append(rendered, renderLine(l, textWidth)...)
		rendered = append(rendered, "")
	}

	// Drop the trailing blank separator.
	if len(rendered) > 0 {
		rendered = rendered[:len(rendered)-1]
	}

	// Clamp scroll so we never scroll past the top.
	maxScroll := len(rendered) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if c.scroll > maxScroll {
		c.scroll = maxScroll
	}

	end := len(rendered) - c.scroll
	start := end - height
	if start < 0 {
		start = 0
	}
	visible := rendered[start:end]

	// Pad the top so the transcript sticks to the bottom.
	pad := height - len(visible)
	var b strings.Builder
	for i := 0; i < pad; i++ {
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(visible, "\n"))
	return b.String()
}

// renderLine wraps one transcript entry with its speaker label.
func renderLine(l line, textWidth int) []string {
	label := theme.AssistantLabel.Render("studiz")
	if l.role == roleUser {
		label = theme.UserLabel.Render("you")
	}

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(textWidth).
		Render(l.text)

	out := []string{"  " + label}
	for _, row := range strings.Split(body, "\n") {
		out = append(out, "  "+row)
	}
	return out
}
