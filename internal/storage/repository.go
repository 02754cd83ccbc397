package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

var (
	ErrNotFound       = errors.New("storage: not found")
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

const (
	KeyTasks = "tasks"
	KeyTheme = "theme"
)

// KeyValueStore is the client-storage seam. Values are opaque strings and
// no transactional guarantees are assumed across keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

type Repository interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
	LoadTheme(ctx context.Context) (model.Theme, error)
	SaveTheme(ctx context.Context, theme model.Theme) error
}

type KVRepository struct {
	store KeyValueStore
}

func NewKVRepository(store KeyValueStore) *KVRepository {
	return &KVRepository{store: store}
}

// LoadTasks returns an empty list when nothing was saved yet. A stored value
// that fails to decode yields an error wrapping ErrMalformedSnapshot.
func (r *KVRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	raw, err := r.store.Get(ctx, KeyTasks)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("get %s: %w", KeyTasks, err)
	}
	if strings.TrimSpace(raw) == "" {
		return []model.Task{}, nil
	}
	return DecodeSnapshot([]byte(raw))
}

func (r *KVRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	payload, err := EncodeSnapshot(tasks)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, KeyTasks, string(payload)); err != nil {
		return fmt.Errorf("set %s: %w", KeyTasks, err)
	}
	return nil
}

// LoadTheme falls back to the light theme when the key is absent or holds an
// unknown value; the latter is still reported.
func (r *KVRepository) LoadTheme(ctx context.Context) (model.Theme, error) {
	raw, err := r.store.Get(ctx, KeyTheme)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.ThemeLight, nil
		}
		return model.ThemeLight, fmt.Errorf("get %s: %w", KeyTheme, err)
	}
	theme, err := model.ParseTheme(raw)
	if err != nil {
		return model.ThemeLight, err
	}
	return theme, nil
}

func (r *KVRepository) SaveTheme(ctx context.Context, theme model.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidTheme, theme)
	}
	if err := r.store.Set(ctx, KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("set %s: %w", KeyTheme, err)
	}
	return nil
}

// Open returns the key-value store for a configured backend name.
func Open(backend, path string) (KeyValueStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "sqlite", "":
		return OpenSQLite(path)
	case "file", "json":
		return OpenFile(path)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
