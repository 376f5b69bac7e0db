package reminders

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Reminder struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	RemindAt string `json:"remindAt"` // ISO timestamp
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("reminder id required")
	}
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("reminder text required")
	}
	if _, err := parseRemindAt(r.RemindAt); err != nil {
		return fmt.Errorf("invalid remindAt %q", r.RemindAt)
	}
	return nil
}

// SortByRemindAt returns a copy sorted ascending by remind time, the
// order the list is always presented in.
func SortByRemindAt(rs []Reminder) []Reminder {
	out := make([]Reminder, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := parseRemindAt(out[i].RemindAt)
		tj, _ := parseRemindAt(out[j].RemindAt)
		return ti.Before(tj)
	})
	return out
}

// InsertSorted adds a reminder and re-sorts the full collection, so a
// new entry interleaves with existing ones.
func InsertSorted(rs []Reminder, r Reminder) []Reminder {
	return SortByRemindAt(append(rs, r))
}

// remindAt values come from the browser's datetime-local input, which
// omits the zone suffix.
var remindAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseRemindAt(s string) (time.Time, error) {
	for _, layout := range remindAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
