package tasks

import (
	"fmt"
	"strings"
)

type TaskStatus string

const (
	StatusToDo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inprogress"
	StatusDone       TaskStatus = "done"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// StatusDisplayOrder is the fixed order the progress summary renders in.
var StatusDisplayOrder = []TaskStatus{StatusToDo, StatusInProgress, StatusDone}

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority accepts any casing ("High", "HIGH", "high").
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority %q", s)
	}
	return p, nil
}

// Ordinal ranks priorities for sorting, highest first under the
// default (descending) direction.
func (p Priority) Ordinal() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Ordinal ranks statuses so that todo sorts ahead of inprogress ahead
// of done under the default (descending) direction.
func (s TaskStatus) Ordinal() int {
	switch s {
	case StatusToDo:
		return 3
	case StatusInProgress:
		return 2
	case StatusDone:
		return 1
	}
	return 0
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     string     `json:"dueDate"` // ISO date, no time component
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("task id required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("invalid status %q", t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("invalid priority %q", t.Priority)
	}
	return nil
}
