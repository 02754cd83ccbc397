package model

import (
	"fmt"
	"math"
)

type Band string

const (
	BandRed    Band = "red"
	BandYellow Band = "yellow"
	BandAmber  Band = "amber"
	BandOrange Band = "orange"
	BandGreen  Band = "green"
)

// Summary holds the aggregate counters shown under the task list. They are
// always computed over every task, regardless of the active filter.
type Summary struct {
	Total     int
	Completed int
	Active    int
	Percent   float64
}

func Summarize(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	if s.Total > 0 {
		s.Percent = float64(s.Completed*100) / float64(s.Total)
	}
	return s
}

func (s Summary) CanClear() bool {
	return s.Completed > 0
}

func (s Summary) PercentText() string {
	return FormatPercent(s.Percent)
}

func (s Summary) Band() Band {
	return ProgressBand(s.Percent)
}

func (s Summary) ActiveText() string {
	return ActiveLabel(s.Active)
}

func FormatPercent(p float64) string {
	if p == math.Trunc(p) {
		return fmt.Sprintf("%.0f%%", p)
	}
	return fmt.Sprintf("%.2f%%", p)
}

func ProgressBand(p float64) Band {
	switch {
	case p < 30:
		return BandRed
	case p < 50:
		return BandYellow
	case p < 80:
		return BandAmber
	case p < 100:
		return BandOrange
	default:
		return BandGreen
	}
}

func ActiveLabel(n int) string {
	if n == 1 {
		return "1 active task left"
	}
	return fmt.Sprintf("%d active tasks left", n)
}
