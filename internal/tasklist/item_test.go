package tasklist

import (
	"context"
	"errors"
	"testing"

	"github.com/sandeepkv93/todo/internal/model"
)

type countingListener struct {
	status  int
	renamed int
	deleted int
}

func (l *countingListener) TaskStatusChanged(context.Context, *Item) error {
	l.status++
	return nil
}

func (l *countingListener) TaskRenamed(context.Context, *Item) error {
	l.renamed++
	return nil
}

func (l *countingListener) TaskDeleted(context.Context, *Item) error {
	l.deleted++
	return nil
}

func TestItemToggleNotifies(t *testing.T) {
	l := &countingListener{}
	it := NewItem(model.Task{ID: 1, Name: "a"}, l, nil)
	_ = it.ToggleCompleted(context.Background())
	_ = it.ToggleCompleted(context.Background())
	if it.Completed() || l.status != 2 {
		t.Fatalf("completed=%v notifications=%d", it.Completed(), l.status)
	}
}

func TestItemEditStateMachine(t *testing.T) {
	l := &countingListener{}
	it := NewItem(model.Task{ID: 1, Name: "draft"}, l, nil)

	it.SetDraft("ignored")
	if it.Draft() != "" {
		t.Fatal("draft must not change outside edit mode")
	}

	it.BeginEdit()
	it.SetDraft("final")
	if it.Mode() != ModeEditing || it.Draft() != "final" {
		t.Fatalf("mode=%s draft=%q", it.Mode(), it.Draft())
	}
	it.CancelEdit()
	if it.Mode() != ModeViewing || it.Name() != "draft" {
		t.Fatalf("cancel should keep name, got %q", it.Name())
	}

	it.BeginEdit()
	if err := it.SubmitEdit(context.Background(), " final "); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if it.Name() != "final" || l.renamed != 1 || it.Mode() != ModeViewing {
		t.Fatalf("name=%q renamed=%d mode=%s", it.Name(), l.renamed, it.Mode())
	}

	it.BeginEdit()
	_ = it.SubmitEdit(context.Background(), "final")
	it.BeginEdit()
	_ = it.SubmitEdit(context.Background(), "  ")
	if l.renamed != 1 {
		t.Fatalf("no-op edits must not notify, got %d", l.renamed)
	}
}

func TestItemRequestDeleteGoesThroughConfirmer(t *testing.T) {
	l := &countingListener{}
	d := NewDialog()
	it := NewItem(model.Task{ID: 7, Name: "x"}, l, d)

	if err := it.RequestDelete(); err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if l.deleted != 0 {
		t.Fatal("delete must wait for confirmation")
	}
	if err := it.RequestDelete(); !errors.Is(err, ErrDialogOpen) {
		t.Fatalf("expected ErrDialogOpen for second request, got %v", err)
	}
	if err := d.Confirm(context.Background()); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if l.deleted != 1 || d.Open() {
		t.Fatalf("deleted=%d open=%v", l.deleted, d.Open())
	}
}

func TestDialogCancelRunsCancelAction(t *testing.T) {
	d := NewDialog()
	cancelled := false
	err := d.Request("t", "m", nil, func(context.Context) error {
		cancelled = true
		return nil
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if d.ConfirmLabel != "Yes" || d.CancelLabel != "No" {
		t.Fatalf("unexpected labels %q/%q", d.ConfirmLabel, d.CancelLabel)
	}
	if err := d.Cancel(context.Background()); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if !cancelled || d.Open() {
		t.Fatalf("cancelled=%v open=%v", cancelled, d.Open())
	}
	if err := d.Confirm(context.Background()); err != nil {
		t.Fatalf("confirm on closed dialog should be a no-op, got %v", err)
	}
}
