package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return LoadMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case LoadMsg:
		m.load()
		return m, nil
	case tea.WindowSizeMsg:
		if typed.Width > 8 {
			m.Width = min(typed.Width-4, 100)
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(typed, m.Keys.Help) && !m.capturingText() {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		if m.dialog.Open() {
			return m.handleDialogKey(typed), nil
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		switch m.Mode {
		case ModeAdding:
			return m.handleAddKey(typed)
		case ModeEditing:
			return m.handleEditKey(typed)
		}
		return m.handleBrowseKey(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.fail(typed.Err)
		return m, nil
	}
	return m, nil
}

// load restores the theme first and then the task list.
func (m *Model) load() {
	m.controller.LoadTheme(m.ctx)
	if err := m.controller.LoadTasks(m.ctx); err != nil {
		m.fail(err)
	}
	m.Loaded = true
	m.clampCursor()
}

// capturingText reports whether keys belong to an input or the dialog.
func (m Model) capturingText() bool {
	return m.dialog.Open() || m.Palette.Active || m.Mode != ModeBrowse
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.controller
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Palette):
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case key.Matches(msg, m.Keys.Add):
		m.Mode = ModeAdding
		m.addInput.Focus()
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(c.Visible())-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		if id, ok := m.selectedID(); ok {
			m.report(c.ToggleCompleted(m.ctx, id), "")
		}
	case key.Matches(msg, m.Keys.Edit):
		if id, ok := m.selectedID(); ok {
			m.beginEdit(id)
		}
	case key.Matches(msg, m.Keys.Delete):
		if id, ok := m.selectedID(); ok {
			m.report(c.RequestDelete(id), "")
		}
	case key.Matches(msg, m.Keys.Clear):
		if !c.Summary().CanClear() {
			m.Status = StatusBar{Text: "no done tasks to clear"}
			break
		}
		m.report(c.RequestClearCompleted(), "")
	case key.Matches(msg, m.Keys.Filter):
		m.setFilter(c.Filter().Next())
	case key.Matches(msg, m.Keys.All):
		m.setFilter(model.FilterAll)
	case key.Matches(msg, m.Keys.NotDone):
		m.setFilter(model.FilterNotDone)
	case key.Matches(msg, m.Keys.Done):
		m.setFilter(model.FilterDone)
	case key.Matches(msg, m.Keys.Theme):
		m.report(c.ToggleTheme(m.ctx), fmt.Sprintf("%s theme", c.Theme()))
	}
	m.clampCursor()
	return m, nil
}

func (m Model) handleDialogKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.Keys.Confirm):
		m.report(m.dialog.Confirm(m.ctx), "")
	case key.Matches(msg, m.Keys.Cancel):
		m.report(m.dialog.Cancel(m.ctx), "")
	}
	m.clampCursor()
	return m
}

func (m *Model) setFilter(f model.Filter) {
	if err := m.controller.SetFilter(m.ctx, f); err != nil {
		m.fail(err)
		return
	}
	m.Cursor = 0
}

// report shows err in the status bar, or ok when there is no error and ok
// is set.
func (m *Model) report(err error, ok string) {
	if err != nil {
		m.fail(err)
		return
	}
	if ok != "" {
		m.Status = StatusBar{Text: ok}
	}
}

func (m *Model) fail(err error) {
	m.LastError = err
	if err == nil {
		return
	}
	m.logger.Error("action failed", "err", err)
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	c := m.controller
	summary := c.Summary()

	bar := m.progressBar
	bar.FullColor = string(views.BandColor(summary.Band()))

	input := ""
	if m.Mode == ModeAdding {
		input = m.addInput.View()
	}

	return views.RenderApp(m.styles, views.AppData{
		Header: fmt.Sprintf("todo | %s | %d tasks", c.Filter(), summary.Total),
		Tabs:   views.RenderFilterTabs(m.styles, c.Filter()),
		Input:  input,
		List:   views.RenderTaskList(m.styles, m.rows()),
		Summary: views.RenderSummary(m.styles, views.SummaryData{
			ProgressView: bar.ViewAs(summary.Percent / 100),
			PercentText:  summary.PercentText(),
			ActiveText:   summary.ActiveText(),
			Band:         summary.Band(),
			CanClear:     summary.CanClear(),
		}),
		StatusLine: m.Status.Text,
		StatusErr:  m.Status.IsError,
		Palette:    views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()),
		Help:       m.renderHelpIfVisible(),
		Dialog: views.RenderDialog(m.styles, views.DialogData{
			Title:        m.dialog.Title(),
			Message:      m.dialog.Message(),
			ConfirmLabel: m.dialog.ConfirmLabel,
			CancelLabel:  m.dialog.CancelLabel,
		}),
		Footer: m.footer(),
		Width:  m.Width,
	})
}
