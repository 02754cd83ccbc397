package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrNotSupported = errors.New("storage: operation not supported by store")

// Maintainer is implemented by stores that can list and remove keys.
type Maintainer interface {
	Keys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, key string) error
}

type updatedAtReporter interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}

// KeyInfo describes one stored key. UpdatedAt is zero when the store does
// not record write times.
type KeyInfo struct {
	Key       string
	UpdatedAt time.Time
}

// Inventory lists what the store holds, in key order.
func Inventory(ctx context.Context, store KeyValueStore) ([]KeyInfo, error) {
	m, ok := store.(Maintainer)
	if !ok {
		return nil, ErrNotSupported
	}
	keys, err := m.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	out := make([]KeyInfo, 0, len(keys))
	for _, key := range keys {
		info := KeyInfo{Key: key}
		if r, ok := store.(updatedAtReporter); ok {
			at, err := r.UpdatedAt(ctx, key)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("updated at %s: %w", key, err)
			}
			info.UpdatedAt = at
		}
		out = append(out, info)
	}
	return out, nil
}

// Reset removes every key from the store and returns the removed keys.
func Reset(ctx context.Context, store KeyValueStore) ([]string, error) {
	m, ok := store.(Maintainer)
	if !ok {
		return nil, ErrNotSupported
	}
	keys, err := m.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	removed := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := m.Delete(ctx, key); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return removed, fmt.Errorf("delete %s: %w", key, err)
		}
		removed = append(removed, key)
	}
	return removed, nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
