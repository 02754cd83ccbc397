package update

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/tasklist"
	"github.com/sandeepkv93/todo/internal/views"
)

type InputMode string

const (
	ModeBrowse  InputMode = "browse"
	ModeAdding  InputMode = "adding"
	ModeEditing InputMode = "editing"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Mode        InputMode
	Cursor      int
	EditingID   int
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        keyMap
	Quitting    bool
	LastError   error
	Loaded      bool
	Width       int

	ctx        context.Context
	controller *tasklist.Controller
	dialog     *tasklist.Dialog
	styles     *views.Styles
	logger     *log.Logger

	addInput     textinput.Model
	editInput    textinput.Model
	commandInput textinput.Model
	progressBar  progress.Model
	helpModel    help.Model
}

type LoadMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type Options struct {
	Context       context.Context
	Repository    storage.Repository
	Logger        *log.Logger
	Filter        model.Filter
	ProgressWidth int
}

func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	repo := opts.Repository
	if repo == nil {
		repo = storage.NewKVRepository(storage.NewMemoryStore())
	}

	styles := views.NewStyles(model.ThemeLight)
	dialog := tasklist.NewDialog()
	m := Model{
		Mode:   ModeBrowse,
		Keys:   defaultKeyMap(),
		Width:  60,
		ctx:    ctx,
		dialog: dialog,
		styles: styles,
		logger: logger,
		controller: tasklist.NewController(tasklist.Options{
			Repository: repo,
			Confirmer:  dialog,
			Theme:      styles,
			Logger:     logger,
			Filter:     opts.Filter,
		}),
	}
	m.initBubbleComponents(opts.ProgressWidth)
	return m
}

func (m *Model) initBubbleComponents(progressWidth int) {
	if progressWidth <= 0 {
		progressWidth = 40
	}

	m.addInput = textinput.New()
	m.addInput.Prompt = "+ "
	m.addInput.Placeholder = "What needs to be done?"
	m.addInput.CharLimit = 256
	m.addInput.Width = 48

	m.editInput = textinput.New()
	m.editInput.Prompt = "> "
	m.editInput.CharLimit = 256
	m.editInput.Width = 44

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.progressBar = progress.New(
		progress.WithSolidFill(string(views.BandColor(model.BandRed))),
		progress.WithoutPercentage(),
		progress.WithWidth(progressWidth),
	)

	m.helpModel = help.New()
}

func (m Model) Controller() *tasklist.Controller { return m.controller }
func (m Model) Dialog() *tasklist.Dialog         { return m.dialog }
func (m Model) Styles() *views.Styles            { return m.styles }
