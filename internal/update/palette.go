package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/tasklist"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

// target resolves a command target to a task id, using the selected row
// when no id was given.
func (m Model) target(t commands.Target) (int, error) {
	if !t.Selected() {
		return t.ID, nil
	}
	id, ok := m.selectedID()
	if !ok {
		return 0, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
	}
	return id, nil
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	c := m.controller
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, _, err := c.AddTask(m.ctx, a.Name)
			if err != nil {
				return commands.Result{}, err
			}
			m.selectID(task.ID)
			return commands.Result{Message: fmt.Sprintf("added: %s", task.Name)}, nil
		},
		Toggle: func(t commands.Target) (commands.Result, error) {
			id, err := m.target(t)
			if err != nil {
				return commands.Result{}, err
			}
			if err := c.ToggleCompleted(m.ctx, id); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("toggled task %d", id)}, nil
		},
		Rename: func(r commands.RenameArgs) (commands.Result, error) {
			id, err := m.target(r.Target)
			if err != nil {
				return commands.Result{}, err
			}
			it, ok := c.Item(id)
			if !ok {
				return commands.Result{}, fmt.Errorf("%w: %d", tasklist.ErrTaskNotFound, id)
			}
			before := it.Name()
			if err := c.BeginEdit(id); err != nil {
				return commands.Result{}, err
			}
			if err := c.SubmitEdit(m.ctx, id, r.Name); err != nil {
				return commands.Result{}, err
			}
			if it.Name() == before {
				return commands.Result{Message: fmt.Sprintf("task %d unchanged", id)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("renamed task %d", id)}, nil
		},
		Delete: func(t commands.Target) (commands.Result, error) {
			id, err := m.target(t)
			if err != nil {
				return commands.Result{}, err
			}
			if err := c.RequestDelete(id); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "confirm delete"}, nil
		},
		Clear: func() (commands.Result, error) {
			if !c.Summary().CanClear() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no done tasks to clear"}
			}
			if err := c.RequestClearCompleted(); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "confirm clear"}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			if err := c.SetFilter(m.ctx, f.Filter); err != nil {
				return commands.Result{}, err
			}
			m.Cursor = 0
			return commands.Result{Message: fmt.Sprintf("filter: %s", f.Filter)}, nil
		},
		Theme: func() (commands.Result, error) {
			if err := c.ToggleTheme(m.ctx); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%s theme", c.Theme())}, nil
		},
	})
	if err != nil {
		m.fail(err)
	} else {
		m.Status = StatusBar{Text: res.Message}
	}
	m.clampCursor()
	return m
}
