package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected Priority
		wantErr  bool
	}{
		{"high", PriorityHigh, false},
		{"High", PriorityHigh, false},
		{"MEDIUM", PriorityMedium, false},
		{" low ", PriorityLow, false},
		{"urgent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{ID: "t1", Title: "x", DueDate: "2025-01-01", Status: StatusToDo, Priority: PriorityLow}
	assert.NoError(t, valid.Validate())

	noID := valid
	noID.ID = "  "
	assert.Error(t, noID.Validate())

	badStatus := valid
	badStatus.Status = "paused"
	assert.Error(t, badStatus.Validate())

	badPriority := valid
	badPriority.Priority = "urgent"
	assert.Error(t, badPriority.Validate())
}

func TestOrdinals(t *testing.T) {
	assert.Greater(t, PriorityHigh.Ordinal(), PriorityMedium.Ordinal())
	assert.Greater(t, PriorityMedium.Ordinal(), PriorityLow.Ordinal())
	assert.Greater(t, StatusToDo.Ordinal(), StatusInProgress.Ordinal())
	assert.Greater(t, StatusInProgress.Ordinal(), StatusDone.Ordinal())
}
