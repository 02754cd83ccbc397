package tasklist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
)

var (
	ErrTaskNotFound = errors.New("tasklist: task not found")
	ErrNotLoaded    = errors.New("tasklist: saved tasks were not loaded")
)

type ThemeApplier interface {
	ApplyTheme(theme model.Theme)
}

type Options struct {
	Repository storage.Repository
	Confirmer  Confirmer
	Theme      ThemeApplier
	Logger     *log.Logger
	Filter     model.Filter
}

// Controller owns the ordered task list and everything derived from it.
// It is not safe for concurrent use; the UI loop is its only caller.
type Controller struct {
	repo      storage.Repository
	confirmer Confirmer
	applier   ThemeApplier
	logger    *log.Logger

	items   []*Item
	loaded  bool
	filter  model.Filter
	theme   model.Theme
	summary model.Summary
	events  itemEvents
}

func NewController(opts Options) *Controller {
	c := &Controller{
		repo:      opts.Repository,
		confirmer: opts.Confirmer,
		applier:   opts.Theme,
		logger:    opts.Logger,
		filter:    opts.Filter,
		theme:     model.ThemeLight,
	}
	if c.repo == nil {
		c.repo = storage.NewKVRepository(storage.NewMemoryStore())
	}
	if c.confirmer == nil {
		c.confirmer = NewDialog()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if !c.filter.IsValid() {
		c.filter = model.FilterAll
	}
	c.events = itemEvents{c: c}
	return c
}

func (c *Controller) Items() []*Item {
	return slices.Clone(c.items)
}

func (c *Controller) Visible() []*Item {
	out := make([]*Item, 0, len(c.items))
	for _, it := range c.items {
		if it.visible {
			out = append(out, it)
		}
	}
	return out
}

func (c *Controller) Tasks() []model.Task {
	out := make([]model.Task, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it.task)
	}
	return out
}

func (c *Controller) Item(id int) (*Item, bool) {
	for _, it := range c.items {
		if it.task.ID == id {
			return it, true
		}
	}
	return nil, false
}

func (c *Controller) Summary() model.Summary { return c.summary }
func (c *Controller) Filter() model.Filter   { return c.filter }
func (c *Controller) Theme() model.Theme     { return c.theme }

// LoadTheme reads the saved theme and hands it to the applier. A missing or
// unreadable value leaves the light theme in place.
func (c *Controller) LoadTheme(ctx context.Context) {
	theme, err := c.repo.LoadTheme(ctx)
	if err != nil {
		c.logger.Warn("saved theme ignored", "err", err)
	}
	c.theme = theme
	if !c.theme.IsValid() {
		c.theme = model.ThemeLight
	}
	c.applyTheme()
}

// LoadTasks replaces the list with the saved snapshot. A malformed snapshot
// is dropped and the list starts empty; only storage failures are returned.
// After a storage failure the list is not saved until a later load succeeds,
// so the stored tasks are never overwritten by an empty list.
func (c *Controller) LoadTasks(ctx context.Context) error {
	tasks, err := c.repo.LoadTasks(ctx)
	switch {
	case errors.Is(err, storage.ErrMalformedSnapshot):
		c.logger.Warn("saved tasks are malformed, starting empty", "err", err)
		tasks = nil
	case err != nil:
		c.items = nil
		c.loaded = false
		_ = c.render(ctx, false)
		return fmt.Errorf("load tasks: %w", err)
	}
	c.loaded = true

	c.items = make([]*Item, 0, len(tasks))
	for _, t := range tasks {
		c.items = append(c.items, c.newItem(t))
	}
	c.logger.Debug("tasks loaded", "count", len(c.items))
	return c.render(ctx, false)
}

// AddTask appends a task named after the trimmed input. Blank input is
// ignored and reported as not added.
func (c *Controller) AddTask(ctx context.Context, raw string) (model.Task, bool, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return model.Task{}, false, nil
	}
	task := model.Task{ID: c.nextID(), Name: name}
	c.items = append(c.items, c.newItem(task))
	c.logger.Debug("task added", "id", task.ID, "name", task.Name)
	return task, true, c.render(ctx, true)
}

func (c *Controller) ToggleCompleted(ctx context.Context, id int) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	return it.ToggleCompleted(ctx)
}

func (c *Controller) SetCompleted(ctx context.Context, id int, value bool) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if it.Completed() == value {
		return nil
	}
	return it.ToggleCompleted(ctx)
}

func (c *Controller) BeginEdit(id int) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	it.BeginEdit()
	return nil
}

// SubmitEdit renames through the item's guards: blank or unchanged names
// leave the task and the snapshot untouched.
func (c *Controller) SubmitEdit(ctx context.Context, id int, newName string) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	return it.SubmitEdit(ctx, newName)
}

func (c *Controller) CancelEdit(id int) {
	if it, ok := c.Item(id); ok {
		it.CancelEdit()
	}
}

func (c *Controller) RequestDelete(id int) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	return it.RequestDelete()
}

func (c *Controller) DeleteTask(ctx context.Context, id int) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	return c.events.TaskDeleted(ctx, it)
}

// RequestClearCompleted asks before clearing. It does nothing while no task
// is done, matching the disabled clear action.
func (c *Controller) RequestClearCompleted() error {
	if !c.summary.CanClear() {
		return nil
	}
	return c.confirmer.Request(confirmTitle, clearTasksMessage, c.ClearCompleted, nil)
}

func (c *Controller) ClearCompleted(ctx context.Context) error {
	c.confirmer.Close()
	var errs []error
	for _, it := range slices.Clone(c.items) {
		if !it.Completed() {
			continue
		}
		if err := c.DeleteTask(ctx, it.ID()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetFilter changes which tasks are visible. Filters are view state and are
// never persisted.
func (c *Controller) SetFilter(ctx context.Context, f model.Filter) error {
	if !f.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidFilter, f)
	}
	c.filter = f
	return c.render(ctx, false)
}

// ToggleTheme flips the theme and saves only the theme key.
func (c *Controller) ToggleTheme(ctx context.Context) error {
	c.theme = c.theme.Toggle()
	c.applyTheme()
	if err := c.repo.SaveTheme(ctx, c.theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

func (c *Controller) newItem(t model.Task) *Item {
	return NewItem(t, c.events, c.confirmer)
}

// nextID is the list length plus one, bumped past the highest id in use so
// ids stay unique after deletions.
func (c *Controller) nextID() int {
	next := len(c.items) + 1
	for _, it := range c.items {
		if it.task.ID >= next {
			next = it.task.ID + 1
		}
	}
	return next
}

func (c *Controller) applyTheme() {
	if c.applier != nil {
		c.applier.ApplyTheme(c.theme)
	}
}

// render recomputes visibility and the aggregate counters, then saves the
// list when persist is set.
func (c *Controller) render(ctx context.Context, persist bool) error {
	for _, it := range c.items {
		it.visible = c.filter.Matches(it.task)
	}
	c.summary = model.Summarize(c.Tasks())
	if !persist {
		return nil
	}
	if !c.loaded {
		c.logger.Warn("tasks not saved, load did not complete")
		return ErrNotLoaded
	}
	if err := c.repo.SaveTasks(ctx, c.Tasks()); err != nil {
		c.logger.Error("save tasks failed", "err", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (c *Controller) remove(id int) {
	c.items = slices.DeleteFunc(c.items, func(it *Item) bool { return it.task.ID == id })
}

type itemEvents struct {
	c *Controller
}

func (e itemEvents) TaskStatusChanged(ctx context.Context, it *Item) error {
	e.c.logger.Debug("task status changed", "id", it.ID(), "completed", it.Completed())
	return e.c.render(ctx, true)
}

func (e itemEvents) TaskRenamed(ctx context.Context, it *Item) error {
	e.c.logger.Debug("task renamed", "id", it.ID(), "name", it.Name())
	return e.c.render(ctx, true)
}

func (e itemEvents) TaskDeleted(ctx context.Context, it *Item) error {
	e.c.confirmer.Close()
	e.c.remove(it.ID())
	e.c.logger.Debug("task deleted", "id", it.ID())
	return e.c.render(ctx, true)
}
