package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/todo/internal/model"
)

const (
	ClearActionLabel = "Clear done tasks"
	emptyListText    = "(nothing to show)"
)

type TaskRowData struct {
	ID        int
	Name      string
	Completed bool
	Selected  bool
	Editing   bool
	EditView  string
}

type SummaryData struct {
	ProgressView string
	PercentText  string
	ActiveText   string
	Band         model.Band
	CanClear     bool
}

type DialogData struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
}

type HelpPanelData struct {
	Markdown string
	HelpView string
}

func RenderFilterTabs(s *Styles, current model.Filter) string {
	tabs := make([]string, 0, len(model.Filters))
	for i, f := range model.Filters {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == current {
			tabs = append(tabs, s.TabActive.Render(label))
			continue
		}
		tabs = append(tabs, s.Tab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func RenderTaskList(s *Styles, rows []TaskRowData) string {
	if len(rows) == 0 {
		return s.Footer.Render(emptyListText)
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, renderTaskRow(s, row))
	}
	return strings.Join(lines, "\n")
}

func renderTaskRow(s *Styles, row TaskRowData) string {
	cursor := " "
	if row.Selected {
		cursor = ">"
	}
	box := "[ ]"
	if row.Completed {
		box = "[x]"
	}
	if row.Editing {
		return fmt.Sprintf("%s %s %s", cursor, box, row.EditView)
	}

	name := s.Row.Render(row.Name)
	if row.Completed {
		name = s.Done.Render(row.Name)
	}
	line := fmt.Sprintf("%s %s %s", cursor, box, name)
	if row.Selected {
		return s.Selected.Render(line)
	}
	return line
}

// RenderSummary draws the progress line, the remaining-count label and the
// clear action, which is shown disabled while nothing is done.
func RenderSummary(s *Styles, data SummaryData) string {
	percent := lipgloss.NewStyle().Bold(true).Foreground(BandColor(data.Band)).Render(data.PercentText)
	progressLine := strings.TrimSpace(data.ProgressView + " " + percent)

	action := s.Disabled.Render(ClearActionLabel)
	if data.CanClear {
		action = s.Action.Render(ClearActionLabel + " [C]")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		progressLine,
		fmt.Sprintf("%s  ·  %s", s.Row.Render(data.ActiveText), action),
	)
}

func RenderDialog(s *Styles, data DialogData) string {
	if strings.TrimSpace(data.Title) == "" && strings.TrimSpace(data.Message) == "" {
		return ""
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Button.Render("[y] "+data.ConfirmLabel),
		s.Button.Render("[n] "+data.CancelLabel),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render(data.Title),
		"",
		data.Message,
		"",
		buttons,
	)
	return s.Dialog.Render(body)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(s *Styles, data HelpPanelData) string {
	md := RenderMarkdown(s, data.Markdown)
	return strings.TrimSpace(strings.Join(nonEmpty(md, data.HelpView), "\n\n"))
}
