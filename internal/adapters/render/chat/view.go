// Package chat renders bot replies for the terminal. Replies are plain
// chat text with light markdown (** bold markers) and per-line ✅/❌
// prefixes; this view colors them without changing the content.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render styles a bot reply for terminal output.
func Render(reply string) string {
	return renderView(reply, newStyles())
}

func renderView(reply string, s styles) string {
	lines := []string{s.title.Render("Arebot")}
	for _, line := range strings.Split(reply, "\n") {
		lines = append(lines, renderLine(line, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLine(line string, s styles) string {
	switch {
	case line == "":
		return ""
	case strings.HasPrefix(line, "✅"):
		return s.success.Render(line)
	case strings.HasPrefix(line, "❌"):
		return s.failure.Render(line)
	case strings.HasPrefix(line, "💡"):
		return s.hint.Render(line)
	case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
		return s.heading.Render(strings.Trim(line, "*"))
	default:
		return s.body.Render(line)
	}
}
