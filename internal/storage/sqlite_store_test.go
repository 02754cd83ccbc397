package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "todo-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSQLiteStoreGetSetDelete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, KeyTasks); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound before first write, got: %v", err)
	}

	if err := store.Set(ctx, KeyTasks, `[]`); err != nil {
		t.Fatalf("set tasks: %v", err)
	}
	if err := store.Set(ctx, KeyTasks, `[{"id":1,"task_name":"a","is_done":false}]`); err != nil {
		t.Fatalf("overwrite tasks: %v", err)
	}
	got, err := store.Get(ctx, KeyTasks)
	if err != nil {
		t.Fatalf("get tasks: %v", err)
	}
	if got != `[{"id":1,"task_name":"a","is_done":false}]` {
		t.Fatalf("unexpected value: %q", got)
	}

	if err := store.Set(ctx, KeyTheme, "light"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("list keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != KeyTasks || keys[1] != KeyTheme {
		t.Fatalf("unexpected keys: %#v", keys)
	}

	if err := store.Delete(ctx, KeyTheme); err != nil {
		t.Fatalf("delete theme: %v", err)
	}
	if err := store.Delete(ctx, KeyTheme); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
}

func TestSQLiteStoreTracksUpdatedAt(t *testing.T) {
	store := setupStore(t)
	fixed := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	if err := store.Set(context.Background(), KeyTheme, "dark"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	at, err := store.UpdatedAt(context.Background(), KeyTheme)
	if err != nil {
		t.Fatalf("updated at: %v", err)
	}
	if !at.Equal(fixed) {
		t.Fatalf("updated_at = %s, want %s", at, fixed)
	}
}

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "todo.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	if err := store.Set(context.Background(), KeyTheme, "light"); err != nil {
		t.Fatalf("set on fresh database: %v", err)
	}
}
