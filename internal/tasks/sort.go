package tasks

import (
	"sort"
	"time"
)

type SortKey string

const (
	SortByDueDate  SortKey = "dueDate"
	SortByPriority SortKey = "priority"
	SortByStatus   SortKey = "status"
)

type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByDueDate, SortByPriority, SortByStatus:
		return SortKey(s), true
	}
	return "", false
}

// DefaultDirection is ascending for due dates and descending for
// priority and status, so the most urgent work surfaces first.
func (k SortKey) DefaultDirection() SortDirection {
	if k == SortByDueDate {
		return Ascending
	}
	return Descending
}

type SortConfig struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

func DefaultSortConfig() SortConfig {
	return SortConfig{Key: SortByDueDate, Direction: Ascending}
}

// Select applies the sort-control toggle policy: re-selecting dueDate
// flips its direction, while selecting any other key (or switching
// keys) resets to that key's default direction.
func (c SortConfig) Select(key SortKey) SortConfig {
	if c.Key == key && key == SortByDueDate {
		dir := Ascending
		if c.Direction == Ascending {
			dir = Descending
		}
		return SortConfig{Key: key, Direction: dir}
	}
	return SortConfig{Key: key, Direction: key.DefaultDirection()}
}

// SortTasks returns a new slice ordered by the given config. Ties keep
// the input order.
func SortTasks(ts []Task, cfg SortConfig) []Task {
	out := make([]Task, len(ts))
	copy(out, ts)

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareTasks(out[i], out[j], cfg.Key)
		if cfg.Direction == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

func compareTasks(a, b Task, key SortKey) int {
	switch key {
	case SortByDueDate:
		ta := parseDueDate(a.DueDate)
		tb := parseDueDate(b.DueDate)
		if ta.Before(tb) {
			return -1
		}
		if ta.After(tb) {
			return 1
		}
		return 0
	case SortByPriority:
		// ascending by ordinal; the descending default puts high first
		return a.Priority.Ordinal() - b.Priority.Ordinal()
	case SortByStatus:
		return a.Status.Ordinal() - b.Status.Ordinal()
	}
	return 0
}

func parseDueDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
