package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/clinicops/pmplan/core/model"
)

// WriteJSON writes the schedule to w in JSON format.
func WriteJSON(w io.Writer, s model.Schedule) error {
	enc := json.NewEncoder(w)
	return enc.Encode(s)
}

// WriteCSV writes the schedule to w in CSV format, one row per assignment.
func WriteCSV(w io.Writer, s model.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "task", "start", "finish", "system", "duration_mins", "page_number"}); err != nil {
		return err
	}
	for _, a := range s.Assignments {
		rec := []string{
			a.Date.Format("2006-01-02"),
			a.Description,
			a.Start.Format(time.RFC3339),
			a.End.Format(time.RFC3339),
			a.System,
			strconv.Itoa(a.DurationMinutes),
			a.ReferencePage,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
