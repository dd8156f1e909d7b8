package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/clinicops/pmplan/core/model"
)

// Summary holds the headline numbers for a task set.
type Summary struct {
	TotalTasks    int     `json:"total_tasks"`
	TotalHours    float64 `json:"total_hours"`
	UniqueSystems int     `json:"unique_systems"`
}

// Summarize computes the overview metrics shown on the dashboard cards.
func Summarize(tasks []model.Task) Summary {
	minutes := 0
	systems := make(map[string]struct{})
	for _, t := range tasks {
		minutes += t.DurationMinutes
		systems[t.System] = struct{}{}
	}
	return Summary{
		TotalTasks:    len(tasks),
		TotalHours:    float64(minutes) / 60,
		UniqueSystems: len(systems),
	}
}

// SystemBurden scores how much recurring effort a system demands: total
// duration divided by the mean recurrence interval, so long tasks on short
// cycles dominate.
type SystemBurden struct {
	System             string  `json:"system"`
	TotalMinutes       int     `json:"total_minutes"`
	MeanIntervalMonths float64 `json:"mean_interval_months"`
	Score              float64 `json:"score"`
}

// BurdenBySystem returns one burden entry per system, highest score first.
// A system whose intervals average zero gets a zero score.
func BurdenBySystem(tasks []model.Task) []SystemBurden {
	minutes := make(map[string]int)
	intervals := make(map[string][]float64)
	for _, t := range tasks {
		minutes[t.System] += t.DurationMinutes
		intervals[t.System] = append(intervals[t.System], t.IntervalMonths)
	}
	out := make([]SystemBurden, 0, len(minutes))
	for sys, mins := range minutes {
		mean := stat.Mean(intervals[sys], nil)
		score := 0.0
		if mean > 0 {
			score = float64(mins) / mean
		}
		out = append(out, SystemBurden{
			System:             sys,
			TotalMinutes:       mins,
			MeanIntervalMonths: mean,
			Score:              score,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].System < out[j].System
	})
	return out
}

// AnnualWorkload projects the recurring workload in hours for each month of
// a year, index 0 being January. A task with interval m recurs at months
// 1, 1+m, 1+2m, ... within the year; tasks without a positive interval are
// ignored.
func AnnualWorkload(tasks []model.Task) [12]float64 {
	var hours [12]float64
	for _, t := range tasks {
		if t.IntervalMonths <= 0 {
			continue
		}
		step := int(t.IntervalMonths)
		if step < 1 {
			step = 1
		}
		for m := 1; m <= 12; m += step {
			hours[m-1] += float64(t.DurationMinutes) / 60
		}
	}
	return hours
}

// Longest returns the n largest tasks by duration, ties broken by
// description for stable output.
func Longest(tasks []model.Task, n int) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DurationMinutes != out[j].DurationMinutes {
			return out[i].DurationMinutes > out[j].DurationMinutes
		}
		return out[i].Description < out[j].Description
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// GroupMinutes sums task durations keyed by the given grouping function,
// largest group first. It backs the per-system and per-category charts.
func GroupMinutes(tasks []model.Task, key func(model.Task) string) []Group {
	sums := make(map[string]int)
	for _, t := range tasks {
		sums[key(t)] += t.DurationMinutes
	}
	out := make([]Group, 0, len(sums))
	for k, v := range sums {
		out = append(out, Group{Name: k, TotalMinutes: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMinutes != out[j].TotalMinutes {
			return out[i].TotalMinutes > out[j].TotalMinutes
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Group is one aggregated duration bucket.
type Group struct {
	Name         string `json:"name"`
	TotalMinutes int    `json:"total_minutes"`
}
