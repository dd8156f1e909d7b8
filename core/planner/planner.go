package planner

import (
	"math"
	"time"

	"github.com/clinicops/pmplan/core/model"
)

// Planner packs maintenance tasks into future workdays.
type Planner struct {
	Config Config
}

// New returns a Planner with defaults filled in on top of cfg.
func New(cfg Config) Planner {
	cfg.SetDefaults()
	return Planner{Config: cfg}
}

// Plan schedules the given tasks starting at start. Tasks are placed in
// OrderTasks order onto a spread of weekdays chosen from the candidate
// window; each day holds at most Config.DailyCapacityMinutes of work,
// except that a single task larger than a whole day still gets a day to
// itself rather than being split. The date cursor only moves forward:
// once a day is left behind it is never refilled, and when the selected
// days run out the remaining tasks are dropped and Truncated is set.
func (p Planner) Plan(tasks []model.Task, start time.Time) model.Schedule {
	cfg := p.Config
	cfg.SetDefaults()

	total := 0
	for _, t := range tasks {
		total += t.DurationMinutes
	}
	if len(tasks) == 0 || total <= 0 {
		return model.Schedule{}
	}

	candidates := Window(start, cfg)
	needed := (total + cfg.DailyCapacityMinutes - 1) / cfg.DailyCapacityMinutes
	dates := spread(candidates, needed)
	if len(dates) == 0 {
		return model.Schedule{Truncated: true}
	}

	dayStart := time.Duration(cfg.DayStartHour) * time.Hour
	cursor := 0
	remaining := cfg.DailyCapacityMinutes
	var out []model.ScheduledAssignment
	for _, t := range OrderTasks(tasks) {
		if t.DurationMinutes == 0 {
			continue
		}
		// Roll to the next day while the task does not fit. A fresh day is
		// always accepted, so an oversized task occupies a day alone.
		for t.DurationMinutes > remaining && remaining < cfg.DailyCapacityMinutes {
			cursor++
			if cursor >= len(dates) {
				return model.Schedule{Assignments: out, Truncated: true}
			}
			remaining = cfg.DailyCapacityMinutes
		}
		elapsed := time.Duration(cfg.DailyCapacityMinutes-remaining) * time.Minute
		begin := dates[cursor].Add(dayStart + elapsed)
		out = append(out, model.ScheduledAssignment{
			Date:            dates[cursor],
			Description:     t.Description,
			System:          t.System,
			DurationMinutes: t.DurationMinutes,
			ReferencePage:   t.ReferencePage,
			Start:           begin,
			End:             begin.Add(time.Duration(t.DurationMinutes) * time.Minute),
		})
		remaining -= t.DurationMinutes
	}
	return model.Schedule{Assignments: out}
}

// spread picks min(needed, len(candidates)) dates evenly across the whole
// candidate list so a light workload does not cluster at the window start.
// Indices follow round(i*(len-1)/(n-1)); the result is a strictly
// increasing subsequence of candidates.
func spread(candidates []time.Time, needed int) []time.Time {
	if needed <= 0 || len(candidates) == 0 {
		return nil
	}
	n := needed
	if n > len(candidates) {
		n = len(candidates)
	}
	if n == 1 {
		return candidates[:1]
	}
	out := make([]time.Time, n)
	last := float64(len(candidates) - 1)
	for i := 0; i < n; i++ {
		idx := int(math.Round(float64(i) * last / float64(n-1)))
		out[i] = candidates[idx]
	}
	return out
}
