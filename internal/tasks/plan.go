package tasks

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a plan-generation output item before id, status and due
// date are assigned.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// ScheduleDrafts turns drafts into full tasks: fresh id, status todo,
// and due dates spaced three days apart starting three days from now.
func ScheduleDrafts(drafts []Draft, now time.Time) []Task {
	out := make([]Task, 0, len(drafts))
	for i, d := range drafts {
		due := now.AddDate(0, 0, (i+1)*3)
		out = append(out, Task{
			ID:          uuid.NewString(),
			Title:       d.Title,
			Description: d.Description,
			DueDate:     due.Format("2006-01-02"),
			Status:      StatusToDo,
			Priority:    d.Priority,
		})
	}
	return out
}
