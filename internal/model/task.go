package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFilter = errors.New("model: invalid filter")
	ErrInvalidTheme  = errors.New("model: invalid theme")
)

type Filter string

const (
	FilterAll     Filter = "All"
	FilterNotDone Filter = "Not Done"
	FilterDone    Filter = "Done"
)

// Filters lists the tabs in display order.
var Filters = []Filter{FilterAll, FilterNotDone, FilterDone}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterNotDone, FilterDone:
		return true
	default:
		return false
	}
}

// Matches reports whether a task is visible under the filter.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterDone:
		return t.Completed
	case FilterNotDone:
		return !t.Completed
	default:
		return true
	}
}

func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

func ParseFilter(raw string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all", "":
		return FilterAll, nil
	case "active", "not done", "not-done", "notdone", "todo":
		return FilterNotDone, nil
	case "done", "completed":
		return FilterDone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(raw string) (Theme, error) {
	theme := Theme(strings.ToLower(strings.TrimSpace(raw)))
	if !theme.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}
	return theme, nil
}

type Task struct {
	ID        int
	Name      string
	Completed bool
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("model: task id must be positive, got %d", t.ID)
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: task name is required")
	}
	return nil
}
