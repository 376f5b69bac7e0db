package tasks

// StatusCount is one progress-chart bucket.
type StatusCount struct {
	Status TaskStatus `json:"status"`
	Label  string     `json:"label"`
	Count  int        `json:"count"`
}

var statusLabels = map[TaskStatus]string{
	StatusToDo:       "Cần làm",
	StatusInProgress: "Đang làm",
	StatusDone:       "Hoàn thành",
}

// CountByStatus buckets tasks per status in the fixed display order.
// Empty buckets are kept so the chart can render a zero.
func CountByStatus(ts []Task) []StatusCount {
	counts := make(map[TaskStatus]int, len(StatusDisplayOrder))
	for _, t := range ts {
		counts[t.Status]++
	}

	out := make([]StatusCount, 0, len(StatusDisplayOrder))
	for _, s := range StatusDisplayOrder {
		out = append(out, StatusCount{
			Status: s,
			Label:  statusLabels[s],
			Count:  counts[s],
		})
	}
	return out
}
