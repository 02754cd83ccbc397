package update

import (
	"github.com/sandeepkv93/todo/internal/tasklist"
	"github.com/sandeepkv93/todo/internal/views"
)

func (m Model) selectedItem() (*tasklist.Item, bool) {
	visible := m.controller.Visible()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return nil, false
	}
	return visible[m.Cursor], true
}

func (m Model) selectedID() (int, bool) {
	it, ok := m.selectedItem()
	if !ok {
		return 0, false
	}
	return it.ID(), true
}

// selectID moves the cursor onto the visible row holding id, if any.
func (m *Model) selectID(id int) {
	for i, it := range m.controller.Visible() {
		if it.ID() == id {
			m.Cursor = i
			return
		}
	}
}

func (m *Model) clampCursor() {
	n := len(m.controller.Visible())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) rows() []views.TaskRowData {
	visible := m.controller.Visible()
	rows := make([]views.TaskRowData, 0, len(visible))
	for i, it := range visible {
		row := views.TaskRowData{
			ID:        it.ID(),
			Name:      it.Name(),
			Completed: it.Completed(),
			Selected:  i == m.Cursor && m.Mode != ModeAdding,
		}
		if m.Mode == ModeEditing && it.ID() == m.EditingID {
			row.Editing = true
			row.EditView = m.editInput.View()
		}
		rows = append(rows, row)
	}
	return rows
}
