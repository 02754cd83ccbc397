package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Tabs       string
	Input      string
	List       string
	Summary    string
	StatusLine string
	StatusErr  bool
	Palette    string
	Help       string
	Dialog     string
	Footer     string
	Width      int
}

func RenderApp(s *Styles, data AppData) string {
	width := data.Width
	if width <= 0 {
		width = 60
	}
	body := strings.Join(nonEmpty(data.Tabs, data.Input, data.List), "\n\n")
	panel := s.Panel.Width(width).Render(body)

	lines := []string{s.Header.Render(data.Header), panel}
	if data.Summary != "" {
		lines = append(lines, data.Summary)
	}
	if data.Dialog != "" {
		lines = append(lines, data.Dialog)
	}
	if data.Palette != "" {
		lines = append(lines, data.Palette)
	}
	if data.StatusLine != "" {
		status := s.Status.Render(data.StatusLine)
		if data.StatusErr {
			status = s.Error.Render(data.StatusLine)
		}
		lines = append(lines, status)
	}
	if data.Help != "" {
		lines = append(lines, s.Panel.Width(width).Render(data.Help))
	}
	if data.Footer != "" {
		lines = append(lines, s.Footer.Render(data.Footer))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderMarkdown renders md with the glamour style of the current theme and
// falls back to the raw text when rendering fails.
func RenderMarkdown(s *Styles, md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, s.GlamourStyle())
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
