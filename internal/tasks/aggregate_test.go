package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountByStatus(t *testing.T) {
	in := []Task{
		task("1", "2025-01-01", PriorityLow, StatusDone),
		task("2", "2025-01-01", PriorityLow, StatusToDo),
		task("3", "2025-01-01", PriorityLow, StatusDone),
	}

	got := CountByStatus(in)

	assert.Equal(t, []StatusCount{
		{Status: StatusToDo, Label: "Cần làm", Count: 1},
		{Status: StatusInProgress, Label: "Đang làm", Count: 0},
		{Status: StatusDone, Label: "Hoàn thành", Count: 2},
	}, got)
}

func TestCountByStatusEmpty(t *testing.T) {
	got := CountByStatus(nil)

	assert.Len(t, got, 3)
	for i, s := range StatusDisplayOrder {
		assert.Equal(t, s, got[i].Status)
		assert.Zero(t, got[i].Count)
		assert.NotEmpty(t, got[i].Label)
	}
}
