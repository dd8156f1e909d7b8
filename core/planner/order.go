package planner

import (
	"sort"

	"github.com/clinicops/pmplan/core/model"
)

// OrderTasks returns a new slice sorted for placement priority: system
// ascending to keep each subsystem's work contiguous, recurrence interval
// ascending so frequent tasks land first, then duration descending as a
// largest-first packing heuristic. The input is never mutated and fully
// tied tasks keep their input order.
func OrderTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.System != b.System {
			return a.System < b.System
		}
		if a.IntervalMonths != b.IntervalMonths {
			return a.IntervalMonths < b.IntervalMonths
		}
		return a.DurationMinutes > b.DurationMinutes
	})
	return out
}
