package model

// Task is one recurring preventive-maintenance action from the task sheet.
// The planner only reads tasks; upstream loading owns validation.
type Task struct {
	Description     string  `json:"description"`
	System          string  `json:"system"`
	Category        string  `json:"category,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	IntervalMonths  float64 `json:"interval_months"`
	ReferencePage   string  `json:"reference_page,omitempty"`
}

// Filter selects a subset of tasks, mirroring the dashboard's
// interval/system/category selections. Empty fields match everything.
type Filter struct {
	Intervals  []float64
	Systems    []string
	Categories []string
}

// Apply returns the tasks matching the filter. The input is not modified.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchFloat(f.Intervals, t.IntervalMonths) {
			continue
		}
		if !matchString(f.Systems, t.System) {
			continue
		}
		if !matchString(f.Categories, t.Category) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchFloat(set []float64, v float64) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func matchString(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
