package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

type getSetOnly struct{}

func (getSetOnly) Get(context.Context, string) (string, error) { return "", ErrNotFound }
func (getSetOnly) Set(context.Context, string, string) error   { return nil }
func (getSetOnly) Close() error                                { return nil }

func TestInventoryReportsWriteTimes(t *testing.T) {
	store := setupStore(t)
	fixed := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()
	_ = store.Set(ctx, KeyTheme, "dark")
	_ = store.Set(ctx, KeyTasks, "[]")

	infos, err := Inventory(ctx, store)
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(infos) != 2 || infos[0].Key != KeyTasks || infos[1].Key != KeyTheme {
		t.Fatalf("unexpected inventory: %#v", infos)
	}
	if !infos[0].UpdatedAt.Equal(fixed) {
		t.Fatalf("updated at = %s, want %s", infos[0].UpdatedAt, fixed)
	}

	mem := NewMemoryStore()
	_ = mem.Set(ctx, KeyTheme, "light")
	infos, err = Inventory(ctx, mem)
	if err != nil || len(infos) != 1 || !infos[0].UpdatedAt.IsZero() {
		t.Fatalf("memory inventory = %#v, %v", infos, err)
	}
}

func TestResetRemovesEveryKey(t *testing.T) {
	ctx := context.Background()
	file, err := OpenFile(filepath.Join(t.TempDir(), "todo.json"))
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	stores := map[string]KeyValueStore{
		"sqlite": setupStore(t),
		"file":   file,
		"memory": NewMemoryStore(),
	}
	for name, store := range stores {
		_ = store.Set(ctx, KeyTasks, `[{"id":1,"task_name":"a","is_done":false}]`)
		_ = store.Set(ctx, KeyTheme, "dark")

		removed, err := Reset(ctx, store)
		if err != nil {
			t.Fatalf("%s: reset: %v", name, err)
		}
		if len(removed) != 2 {
			t.Fatalf("%s: expected 2 removed keys, got %#v", name, removed)
		}
		if _, err := store.Get(ctx, KeyTasks); !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: tasks should be gone, got %v", name, err)
		}
		theme, err := NewKVRepository(store).LoadTheme(ctx)
		if err != nil || theme != "light" {
			t.Fatalf("%s: theme after reset = %q, %v", name, theme, err)
		}

		removed, err = Reset(ctx, store)
		if err != nil || len(removed) != 0 {
			t.Fatalf("%s: second reset = %#v, %v", name, removed, err)
		}
	}
}

func TestMaintenanceNeedsKeyListing(t *testing.T) {
	if _, err := Reset(context.Background(), getSetOnly{}); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported from reset, got %v", err)
	}
	if _, err := Inventory(context.Background(), getSetOnly{}); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported from inventory, got %v", err)
	}
}
