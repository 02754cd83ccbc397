package tasklist

import (
	"context"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

const (
	confirmTitle      = "Please confirm"
	deleteTaskMessage = "Do you really want to delete this task?"
	clearTasksMessage = "Do you really want to clear all done tasks?"
)

type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "viewing"
}

type ConfirmFunc func(ctx context.Context) error

// Listener receives the actions a task reports to the list that owns it.
type Listener interface {
	TaskStatusChanged(ctx context.Context, item *Item) error
	TaskRenamed(ctx context.Context, item *Item) error
	TaskDeleted(ctx context.Context, item *Item) error
}

type Confirmer interface {
	Request(title, message string, onConfirm, onCancel ConfirmFunc) error
	Close()
}

// Item is one task as shown in the list: the task itself plus its
// view/edit state.
type Item struct {
	task      model.Task
	mode      Mode
	draft     string
	visible   bool
	listener  Listener
	confirmer Confirmer
}

func NewItem(task model.Task, listener Listener, confirmer Confirmer) *Item {
	return &Item{
		task:      task,
		mode:      ModeViewing,
		visible:   true,
		listener:  listener,
		confirmer: confirmer,
	}
}

func (it *Item) Task() model.Task { return it.task }
func (it *Item) ID() int          { return it.task.ID }
func (it *Item) Name() string     { return it.task.Name }
func (it *Item) Completed() bool  { return it.task.Completed }
func (it *Item) Mode() Mode       { return it.mode }
func (it *Item) Draft() string    { return it.draft }
func (it *Item) Visible() bool    { return it.visible }

func (it *Item) SetDraft(s string) {
	if it.mode == ModeEditing {
		it.draft = s
	}
}

func (it *Item) ToggleCompleted(ctx context.Context) error {
	it.task.Completed = !it.task.Completed
	if it.listener == nil {
		return nil
	}
	return it.listener.TaskStatusChanged(ctx, it)
}

func (it *Item) BeginEdit() {
	it.mode = ModeEditing
	it.draft = it.task.Name
}

// SubmitEdit leaves edit mode. Blank or unchanged names are dropped without
// telling the listener.
func (it *Item) SubmitEdit(ctx context.Context, newName string) error {
	name := strings.TrimSpace(newName)
	it.mode = ModeViewing
	it.draft = ""
	if name == "" || name == it.task.Name {
		return nil
	}
	it.task.Name = name
	if it.listener == nil {
		return nil
	}
	return it.listener.TaskRenamed(ctx, it)
}

func (it *Item) CancelEdit() {
	it.mode = ModeViewing
	it.draft = ""
}

func (it *Item) RequestDelete() error {
	if it.confirmer == nil {
		return nil
	}
	return it.confirmer.Request(confirmTitle, deleteTaskMessage, func(ctx context.Context) error {
		if it.listener == nil {
			return nil
		}
		return it.listener.TaskDeleted(ctx, it)
	}, nil)
}
