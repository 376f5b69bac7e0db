package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleDrafts(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	drafts := []Draft{
		{Title: "Học những điều cơ bản về Algebra", Description: "a", Priority: PriorityHigh},
		{Title: "Thực hành Algebra", Description: "b", Priority: PriorityMedium},
		{Title: "Nâng cao Algebra", Description: "c", Priority: PriorityLow},
	}

	got := ScheduleDrafts(drafts, now)
	require.Len(t, got, 3)

	// 3-day spacing starting 3 days out
	assert.Equal(t, "2025-06-04", got[0].DueDate)
	assert.Equal(t, "2025-06-07", got[1].DueDate)
	assert.Equal(t, "2025-06-10", got[2].DueDate)

	seen := map[string]bool{}
	for i, task := range got {
		assert.Equal(t, StatusToDo, task.Status)
		assert.Equal(t, drafts[i].Title, task.Title)
		assert.Equal(t, drafts[i].Priority, task.Priority)
		require.NotEmpty(t, task.ID)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestScheduleDraftsEmpty(t *testing.T) {
	got := ScheduleDrafts(nil, time.Now())
	assert.Empty(t, got)
}

func TestScheduleDraftsCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)
	got := ScheduleDrafts([]Draft{
		{Title: "x", Description: "x", Priority: PriorityHigh},
	}, now)

	require.Len(t, got, 1)
	assert.Equal(t, "2025-02-02", got[0].DueDate)
}
