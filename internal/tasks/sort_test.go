package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func task(id string, due string, p Priority, s TaskStatus) Task {
	return Task{ID: id, Title: id, DueDate: due, Priority: p, Status: s}
}

func ids(ts []Task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestSortTasksByPriorityDescending(t *testing.T) {
	in := []Task{
		task("a", "2025-01-01", PriorityLow, StatusToDo),
		task("b", "2025-01-02", PriorityHigh, StatusToDo),
		task("c", "2025-01-03", PriorityMedium, StatusToDo),
		task("d", "2025-01-04", PriorityHigh, StatusToDo),
	}

	got := SortTasks(in, SortConfig{Key: SortByPriority, Direction: Descending})

	// high first, ties keep input order
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids(got))
}

func TestSortTasksByStatusDescending(t *testing.T) {
	in := []Task{
		task("done", "2025-01-01", PriorityLow, StatusDone),
		task("todo", "2025-01-01", PriorityLow, StatusToDo),
		task("doing", "2025-01-01", PriorityLow, StatusInProgress),
	}

	got := SortTasks(in, SortConfig{Key: SortByStatus, Direction: Descending})
	assert.Equal(t, []string{"todo", "doing", "done"}, ids(got))
}

func TestSortTasksByDueDate(t *testing.T) {
	in := []Task{
		task("late", "2025-03-01", PriorityLow, StatusToDo),
		task("early", "2025-01-01", PriorityLow, StatusToDo),
		task("mid", "2025-02-01", PriorityLow, StatusToDo),
	}

	asc := SortTasks(in, SortConfig{Key: SortByDueDate, Direction: Ascending})
	assert.Equal(t, []string{"early", "mid", "late"}, ids(asc))

	desc := SortTasks(in, SortConfig{Key: SortByDueDate, Direction: Descending})
	assert.Equal(t, []string{"late", "mid", "early"}, ids(desc))
}

func TestSortTasksStableOnTies(t *testing.T) {
	in := []Task{
		task("first", "2025-01-01", PriorityMedium, StatusToDo),
		task("second", "2025-01-01", PriorityMedium, StatusToDo),
		task("third", "2025-01-01", PriorityMedium, StatusToDo),
	}

	for _, cfg := range []SortConfig{
		{Key: SortByDueDate, Direction: Ascending},
		{Key: SortByDueDate, Direction: Descending},
		{Key: SortByPriority, Direction: Descending},
		{Key: SortByStatus, Direction: Descending},
	} {
		got := SortTasks(in, cfg)
		assert.Equal(t, []string{"first", "second", "third"}, ids(got), "config %+v", cfg)
	}
}

func TestSortTasksDoesNotMutateInput(t *testing.T) {
	in := []Task{
		task("b", "2025-02-01", PriorityLow, StatusToDo),
		task("a", "2025-01-01", PriorityHigh, StatusToDo),
	}

	_ = SortTasks(in, SortConfig{Key: SortByDueDate, Direction: Ascending})
	assert.Equal(t, []string{"b", "a"}, ids(in))
}

func TestSortConfigSelect(t *testing.T) {
	tests := []struct {
		name     string
		current  SortConfig
		selected SortKey
		expected SortConfig
	}{
		{
			name:     "reselecting dueDate flips to descending",
			current:  SortConfig{Key: SortByDueDate, Direction: Ascending},
			selected: SortByDueDate,
			expected: SortConfig{Key: SortByDueDate, Direction: Descending},
		},
		{
			name:     "reselecting dueDate flips back to ascending",
			current:  SortConfig{Key: SortByDueDate, Direction: Descending},
			selected: SortByDueDate,
			expected: SortConfig{Key: SortByDueDate, Direction: Ascending},
		},
		{
			name:     "switching to priority resets to its default",
			current:  SortConfig{Key: SortByDueDate, Direction: Descending},
			selected: SortByPriority,
			expected: SortConfig{Key: SortByPriority, Direction: Descending},
		},
		{
			name:     "switching to status resets to its default",
			current:  SortConfig{Key: SortByDueDate, Direction: Ascending},
			selected: SortByStatus,
			expected: SortConfig{Key: SortByStatus, Direction: Descending},
		},
		{
			name:     "reselecting priority does not flip",
			current:  SortConfig{Key: SortByPriority, Direction: Descending},
			selected: SortByPriority,
			expected: SortConfig{Key: SortByPriority, Direction: Descending},
		},
		{
			name:     "switching back to dueDate resets to ascending",
			current:  SortConfig{Key: SortByPriority, Direction: Descending},
			selected: SortByDueDate,
			expected: SortConfig{Key: SortByDueDate, Direction: Ascending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.current.Select(tt.selected))
		})
	}
}

func TestToggleDueDateTwiceReturnsToAscending(t *testing.T) {
	cfg := DefaultSortConfig()
	cfg = cfg.Select(SortByDueDate)
	cfg = cfg.Select(SortByDueDate)
	assert.Equal(t, DefaultSortConfig(), cfg)
}
