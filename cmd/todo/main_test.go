package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/todo/internal/storage"
)

func TestRunVersionAndArguments(t *testing.T) {
	t.Setenv("TODO_CONFIG", "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	chdirForTest(t, t.TempDir())

	if err := run([]string{"--version"}); err != nil {
		t.Fatalf("version: %v", err)
	}
	err := run([]string{"extra"})
	if err == nil || !strings.Contains(err.Error(), "unexpected argument") {
		t.Fatalf("expected unexpected argument error, got %v", err)
	}
	if err := run([]string{"--backend", "postgres"}); err == nil {
		t.Fatal("expected unknown backend error")
	}
}

func TestRunResetClearsStore(t *testing.T) {
	t.Setenv("TODO_CONFIG", "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	chdirForTest(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "todo.json")
	content := `{"tasks": "[{\"id\":1,\"task_name\":\"a\",\"is_done\":false}]", "theme": "dark"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}

	if err := run([]string{"--backend", "file", "--store", path, "--reset"}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	store, err := storage.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	keys, err := store.Keys(context.Background())
	if err != nil || len(keys) != 0 {
		t.Fatalf("expected empty store after reset, got %#v, %v", keys, err)
	}
}

// chdirForTest changes the working directory for the duration of the test.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
