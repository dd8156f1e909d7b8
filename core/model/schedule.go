package model

import "time"

// ScheduledAssignment places one task on a workday with a time slot.
// Task fields are copied so the schedule stands on its own.
type ScheduledAssignment struct {
	Date            time.Time `json:"date"`
	Description     string    `json:"description"`
	System          string    `json:"system"`
	DurationMinutes int       `json:"duration_minutes"`
	ReferencePage   string    `json:"reference_page,omitempty"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
}

// Schedule is the result of one planning run. Truncated reports that the
// scheduling window's capacity ran out before every task could be placed.
type Schedule struct {
	Assignments []ScheduledAssignment `json:"assignments"`
	Truncated   bool                  `json:"truncated"`
}

// Days returns the distinct assignment dates in chronological order.
func (s Schedule) Days() []time.Time {
	var days []time.Time
	for _, a := range s.Assignments {
		if len(days) == 0 || !days[len(days)-1].Equal(a.Date) {
			days = append(days, a.Date)
		}
	}
	return days
}

// OnDay returns the assignments for the given date, in placement order.
func (s Schedule) OnDay(day time.Time) []ScheduledAssignment {
	var out []ScheduledAssignment
	for _, a := range s.Assignments {
		if a.Date.Equal(day) {
			out = append(out, a)
		}
	}
	return out
}
