package reminders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSortedInterleaves(t *testing.T) {
	existing := []Reminder{
		{ID: "a", Text: "sáng", RemindAt: "2025-06-01T08:00"},
		{ID: "c", Text: "tối", RemindAt: "2025-06-01T20:00"},
	}

	got := InsertSorted(existing, Reminder{ID: "b", Text: "trưa", RemindAt: "2025-06-01T12:00"})

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestInsertSortedIntoEmpty(t *testing.T) {
	got := InsertSorted(nil, Reminder{ID: "only", Text: "x", RemindAt: "2025-06-01T08:00"})
	require.Len(t, got, 1)
	assert.Equal(t, "only", got[0].ID)
}

func TestSortByRemindAtMixedLayouts(t *testing.T) {
	in := []Reminder{
		{ID: "z", Text: "x", RemindAt: "2025-06-02T09:00:00Z"},
		{ID: "y", Text: "x", RemindAt: "2025-06-01T09:00"},
	}

	got := SortByRemindAt(in)
	assert.Equal(t, "y", got[0].ID)
	assert.Equal(t, "z", got[1].ID)
	// input order untouched
	assert.Equal(t, "z", in[0].ID)
}

func TestReminderValidate(t *testing.T) {
	tests := []struct {
		name    string
		rem     Reminder
		wantErr bool
	}{
		{"valid datetime-local", Reminder{ID: "1", Text: "ôn bài", RemindAt: "2025-06-01T08:00"}, false},
		{"valid rfc3339", Reminder{ID: "1", Text: "ôn bài", RemindAt: "2025-06-01T08:00:00Z"}, false},
		{"missing id", Reminder{Text: "x", RemindAt: "2025-06-01T08:00"}, true},
		{"missing text", Reminder{ID: "1", Text: " ", RemindAt: "2025-06-01T08:00"}, true},
		{"bad timestamp", Reminder{ID: "1", Text: "x", RemindAt: "tomorrow"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rem.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
