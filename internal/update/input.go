package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.Mode = ModeBrowse
		m.addInput.SetValue("")
		m.addInput.Blur()
		return m, nil
	case key.Matches(msg, m.Keys.Submit):
		task, added, err := m.controller.AddTask(m.ctx, m.addInput.Value())
		m.addInput.SetValue("")
		if err != nil {
			m.fail(err)
		} else if added {
			m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Name)}
		}
		m.selectID(task.ID)
		return m, nil
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m *Model) beginEdit(id int) {
	if err := m.controller.BeginEdit(id); err != nil {
		m.fail(err)
		return
	}
	it, _ := m.controller.Item(id)
	m.Mode = ModeEditing
	m.EditingID = id
	m.editInput.SetValue(it.Draft())
	m.editInput.CursorEnd()
	m.editInput.Focus()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.controller.CancelEdit(m.EditingID)
		m.endEdit()
		return m, nil
	case key.Matches(msg, m.Keys.Submit):
		m.report(m.controller.SubmitEdit(m.ctx, m.EditingID, m.editInput.Value()), "")
		m.endEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	if it, ok := m.controller.Item(m.EditingID); ok {
		it.SetDraft(m.editInput.Value())
	}
	return m, cmd
}

func (m *Model) endEdit() {
	m.Mode = ModeBrowse
	m.EditingID = 0
	m.editInput.SetValue("")
	m.editInput.Blur()
	m.clampCursor()
}
