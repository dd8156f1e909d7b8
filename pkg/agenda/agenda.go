// Package agenda renders a schedule as a day-by-day text agenda.
package agenda

import (
	"fmt"
	"io"

	"github.com/clinicops/pmplan/core/model"
)

// Write prints the schedule grouped by day, tasks in chronological order.
func Write(w io.Writer, s model.Schedule) error {
	if len(s.Assignments) == 0 {
		_, err := fmt.Fprintln(w, "No tasks to display in the agenda.")
		return err
	}
	for _, day := range s.Days() {
		if _, err := fmt.Fprintf(w, "%s\n", day.Format("Monday, January 02, 2006")); err != nil {
			return err
		}
		for _, a := range s.OnDay(day) {
			page := a.ReferencePage
			if page == "" {
				page = "N/A"
			}
			_, err := fmt.Fprintf(w, "  %s - %s (%d mins)\n    System: %s\n    Task: %s\n    Ref. Page: %s\n",
				a.Start.Format("03:04 PM"), a.End.Format("03:04 PM"), a.DurationMinutes,
				a.System, a.Description, page)
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if s.Truncated {
		_, err := fmt.Fprintln(w, "Warning: some tasks did not fit in the scheduling window.")
		return err
	}
	return nil
}
