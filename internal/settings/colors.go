package settings

import (
	"fmt"

	"studyplan-backend/internal/tasks"
)

// ColorSet is the visual treatment for one priority badge.
type ColorSet struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Badge      string `json:"badge"`
	BadgeText  string `json:"badgeText"`
}

// PriorityColors maps every priority to its colors. A valid value
// carries exactly one entry per priority; partial values only exist
// transiently on the read path before ResolveColors fills them in.
type PriorityColors map[tasks.Priority]ColorSet

func DefaultPriorityColors() PriorityColors {
	return PriorityColors{
		tasks.PriorityHigh:   {Background: "#fef2f2", Border: "#fecaca", Badge: "#ef4444", BadgeText: "#ffffff"},
		tasks.PriorityMedium: {Background: "#fefce8", Border: "#fef08a", Badge: "#eab308", BadgeText: "#1e293b"},
		tasks.PriorityLow:    {Background: "#f0fdf4", Border: "#bbf7d0", Badge: "#22c55e", BadgeText: "#ffffff"},
	}
}

// Validate enforces full coverage: one entry per priority, no strays.
func (pc PriorityColors) Validate() error {
	for _, p := range []tasks.Priority{tasks.PriorityLow, tasks.PriorityMedium, tasks.PriorityHigh} {
		if _, ok := pc[p]; !ok {
			return fmt.Errorf("missing colors for priority %q", p)
		}
	}
	for p := range pc {
		if !p.IsValid() {
			return fmt.Errorf("unknown priority %q", p)
		}
	}
	return nil
}

// ResolveColors overlays a possibly-partial stored value onto the
// defaults. Merge is shallow at the priority-key level: a stored entry
// wins wholesale, a missing key falls back to the default set.
func ResolveColors(stored PriorityColors) PriorityColors {
	out := DefaultPriorityColors()
	for p, cs := range stored {
		if p.IsValid() {
			out[p] = cs
		}
	}
	return out
}
