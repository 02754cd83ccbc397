package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/todo/internal/model"
)

type palette struct {
	accent   lipgloss.Color
	text     lipgloss.Color
	muted    lipgloss.Color
	success  lipgloss.Color
	danger   lipgloss.Color
	selected lipgloss.Color
	border   lipgloss.Color
}

var palettes = map[model.Theme]palette{
	model.ThemeLight: {
		accent:   lipgloss.Color("#1565c0"),
		text:     lipgloss.Color("#212121"),
		muted:    lipgloss.Color("#9e9e9e"),
		success:  lipgloss.Color("#2e7d32"),
		danger:   lipgloss.Color("#c62828"),
		selected: lipgloss.Color("#e3f2fd"),
		border:   lipgloss.Color("#bdbdbd"),
	},
	model.ThemeDark: {
		accent:   lipgloss.Color("#90caf9"),
		text:     lipgloss.Color("#eeeeee"),
		muted:    lipgloss.Color("#757575"),
		success:  lipgloss.Color("#81c784"),
		danger:   lipgloss.Color("#ef5350"),
		selected: lipgloss.Color("#263238"),
		border:   lipgloss.Color("#546e7a"),
	},
}

var bandColors = map[model.Band]lipgloss.Color{
	model.BandRed:    lipgloss.Color("#e53935"),
	model.BandYellow: lipgloss.Color("#fdd835"),
	model.BandAmber:  lipgloss.Color("#ffb300"),
	model.BandOrange: lipgloss.Color("#fb8c00"),
	model.BandGreen:  lipgloss.Color("#43a047"),
}

func BandColor(b model.Band) lipgloss.Color {
	if c, ok := bandColors[b]; ok {
		return c
	}
	return bandColors[model.BandRed]
}

// Styles is the themed style set. ApplyTheme swaps every style in place so
// a single *Styles can be shared by the model and the views.
type Styles struct {
	theme model.Theme

	Header    lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Panel     lipgloss.Style
	Footer    lipgloss.Style
	Row       lipgloss.Style
	Selected  lipgloss.Style
	Done      lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Action    lipgloss.Style
	Disabled  lipgloss.Style
	Dialog    lipgloss.Style
	Button    lipgloss.Style
}

func NewStyles(theme model.Theme) *Styles {
	s := &Styles{}
	s.ApplyTheme(theme)
	return s
}

func (s *Styles) Theme() model.Theme { return s.theme }

func (s *Styles) ApplyTheme(theme model.Theme) {
	p, ok := palettes[theme]
	if !ok {
		theme = model.ThemeLight
		p = palettes[theme]
	}
	s.theme = theme
	lipgloss.SetHasDarkBackground(theme == model.ThemeDark)

	s.Header = lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	s.Status = lipgloss.NewStyle().Foreground(p.success)
	s.Error = lipgloss.NewStyle().Foreground(p.danger)
	s.Panel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1)
	s.Footer = lipgloss.NewStyle().Foreground(p.muted)
	s.Row = lipgloss.NewStyle().Foreground(p.text)
	s.Selected = lipgloss.NewStyle().Foreground(p.text).Background(p.selected).Bold(true)
	s.Done = lipgloss.NewStyle().Foreground(p.muted).Strikethrough(true)
	s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(p.accent).Underline(true).Padding(0, 1)
	s.Tab = lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1)
	s.Action = lipgloss.NewStyle().Foreground(p.danger)
	s.Disabled = lipgloss.NewStyle().Foreground(p.muted).Faint(true)
	s.Dialog = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(p.accent).Padding(1, 2)
	s.Button = lipgloss.NewStyle().Bold(true).Foreground(p.accent).Padding(0, 1)
}

// GlamourStyle names the glamour standard style matching the theme.
func (s *Styles) GlamourStyle() string {
	if s.theme == model.ThemeDark {
		return "dark"
	}
	return "light"
}
