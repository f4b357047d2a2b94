package metrics

import "github.com/HenryJaiyeoba/inawo-todo-list/internal/model"

// Bucket counts tasks and how many of them are completed.
type Bucket struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

// PriorityBucket is a Bucket restricted to one priority.
type PriorityBucket struct {
	Priority model.Priority `json:"priority"`
	Bucket
}

// CompletionStats is the overall and per-priority completion of a task set.
type CompletionStats struct {
	Overall    Bucket           `json:"overall"`
	ByPriority []PriorityBucket `json:"byPriority"`
}

// Completion computes completion percentages overall and per priority.
// ByPriority always has one entry per priority, high first.
func Completion(tasks []model.Task) CompletionStats {
	var stats CompletionStats
	byPriority := make(map[model.Priority]*Bucket, len(model.Priorities))
	for _, p := range model.Priorities {
		byPriority[p] = &Bucket{}
	}

	for _, t := range tasks {
		stats.Overall.Total++
		b := byPriority[t.Priority]
		if b != nil {
			b.Total++
		}
		if !t.Completed {
			continue
		}
		stats.Overall.Completed++
		if b != nil {
			b.Completed++
		}
	}

	stats.Overall.Percent = Percent(stats.Overall.Completed, stats.Overall.Total)
	for _, p := range model.Priorities {
		b := byPriority[p]
		b.Percent = Percent(b.Completed, b.Total)
		stats.ByPriority = append(stats.ByPriority, PriorityBucket{Priority: p, Bucket: *b})
	}
	return stats
}
