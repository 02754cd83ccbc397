package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/todo/internal/views"
)

type keyMap struct {
	Add     key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Filter  key.Binding
	All     key.Binding
	NotDone key.Binding
	Done    key.Binding
	Theme   key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Submit  key.Binding
	Back    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys("a", "i", "enter"), key.WithHelp("a", "add task")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done/undo")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Clear:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear done")),
		Filter:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		All:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		NotDone: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "not done")),
		Done:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "done")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Palette: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "yes")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.Filter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Up, k.Down, k.Toggle, k.Edit},
		{k.Delete, k.Clear, k.Filter, k.All, k.NotDone, k.Done},
		{k.Theme, k.Palette, k.Help, k.Quit},
	}
}

// inputKeys are the bindings shown while a text field or dialog has focus.
type inputKeys struct {
	primary   key.Binding
	secondary key.Binding
}

func (k inputKeys) ShortHelp() []key.Binding  { return []key.Binding{k.primary, k.secondary} }
func (k inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("## Keys\n\n")
	for _, group := range m.Keys.FullHelp() {
		for _, kb := range group {
			h := kb.Help()
			b.WriteString(fmt.Sprintf("- `%s` %s\n", h.Key, h.Desc))
		}
	}
	b.WriteString("\n## Commands\n\n")
	b.WriteString("`add <name>` · `toggle [id]` · `rename <id> <name>` · `delete [id]` · `clear` · `filter <all|active|done>` · `theme`\n")
	return b.String()
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	hm := m.helpModel
	hm.ShowAll = true
	return views.RenderHelpPanel(m.styles, views.HelpPanelData{
		Markdown: m.helpMarkdown(),
		HelpView: hm.View(m.Keys),
	})
}

// footer is the short help line for whatever currently has focus.
func (m Model) footer() string {
	switch {
	case m.dialog.Open():
		return m.helpModel.View(inputKeys{primary: m.Keys.Confirm, secondary: m.Keys.Cancel})
	case m.Palette.Active, m.Mode != ModeBrowse:
		return m.helpModel.View(inputKeys{primary: m.Keys.Submit, secondary: m.Keys.Back})
	default:
		return m.helpModel.View(m.Keys)
	}
}
