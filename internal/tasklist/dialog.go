package tasklist

import (
	"context"
	"errors"
)

var ErrDialogOpen = errors.New("tasklist: dialog already open")

// Dialog is a single modal confirmation. It stays open until the user picks
// an action or the owner closes it; there is no timeout.
type Dialog struct {
	open         bool
	title        string
	message      string
	onConfirm    ConfirmFunc
	onCancel     ConfirmFunc
	ConfirmLabel string
	CancelLabel  string
}

func NewDialog() *Dialog {
	return &Dialog{ConfirmLabel: "Yes", CancelLabel: "No"}
}

func (d *Dialog) Request(title, message string, onConfirm, onCancel ConfirmFunc) error {
	if d.open {
		return ErrDialogOpen
	}
	d.open = true
	d.title = title
	d.message = message
	d.onConfirm = onConfirm
	d.onCancel = onCancel
	return nil
}

func (d *Dialog) Open() bool      { return d.open }
func (d *Dialog) Title() string   { return d.title }
func (d *Dialog) Message() string { return d.message }

// Confirm closes the dialog and then runs its confirm action, so the action
// is free to open a follow-up dialog.
func (d *Dialog) Confirm(ctx context.Context) error {
	if !d.open {
		return nil
	}
	fn := d.onConfirm
	d.Close()
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (d *Dialog) Cancel(ctx context.Context) error {
	if !d.open {
		return nil
	}
	fn := d.onCancel
	d.Close()
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (d *Dialog) Close() {
	d.open = false
	d.title = ""
	d.message = ""
	d.onConfirm = nil
	d.onCancel = nil
}
