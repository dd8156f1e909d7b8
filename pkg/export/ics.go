package export

import (
	"fmt"
	"io"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/clinicops/pmplan/core/model"
)

// WriteICS writes the schedule to w as an iCalendar file with one event per
// assignment, importable into any calendar client.
func WriteICS(w io.Writer, s model.Schedule) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	for _, a := range s.Assignments {
		ev := cal.AddEvent(uuid.NewString())
		ev.SetDtStampTime(a.Start)
		ev.SetStartAt(a.Start)
		ev.SetEndAt(a.End)
		ev.SetSummary("PM Task: " + a.Description)
		ev.SetDescription(fmt.Sprintf("System: %s\nDuration: %d minutes", a.System, a.DurationMinutes))
	}
	_, err := io.WriteString(w, cal.Serialize())
	return err
}
