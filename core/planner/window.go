package planner

import "time"

// Window enumerates candidate weekdays starting at start (inclusive),
// advancing one calendar day at a time. It stops once cfg.MaxWeekdays
// weekdays are collected or cfg.LookaheadDays calendar days have been
// examined, whichever comes first. Any time-of-day component of start is
// dropped; dates keep start's location.
func Window(start time.Time, cfg Config) []time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	days := make([]time.Time, 0, cfg.MaxWeekdays)
	for i := 0; i < cfg.LookaheadDays; i++ {
		if len(days) >= cfg.MaxWeekdays {
			break
		}
		d := day.AddDate(0, 0, i)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, d)
		}
	}
	return days
}
