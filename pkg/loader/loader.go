// Package loader ingests the exported PM task sheet. Column headers drive
// field mapping, legacy sheets that still carry "Option ID" instead of
// "System" are accepted, and numeric fields that fail to parse collapse to
// zero the same way the upstream report cleaning does.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/clinicops/pmplan/core/model"
)

// Column headers recognized in the task sheet.
const (
	colDescription = "Task Description"
	colSystem      = "System"
	colOptionID    = "Option ID"
	colDuration    = "Duration (mins)"
	colInterval    = "Interval (months)"
	colCategory    = "Category of PM check"
	colPage        = "Page Number"
)

// LoadFile reads tasks from the CSV file at path.
func LoadFile(path string) ([]model.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open task sheet: %w", err)
	}
	defer f.Close()
	tasks, err := ReadTasks(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tasks, nil
}

// ReadTasks parses CSV task records from r. The first row must be a header
// naming at least the description and duration columns.
func ReadTasks(r io.Reader) ([]model.Task, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	sysCol, sysOK := idx[colSystem]
	if !sysOK {
		// Older sheets name the system column "Option ID".
		sysCol, sysOK = idx[colOptionID]
	}
	if _, ok := idx[colDescription]; !ok {
		return nil, fmt.Errorf("missing column %q", colDescription)
	}
	if _, ok := idx[colDuration]; !ok {
		return nil, fmt.Errorf("missing column %q", colDuration)
	}

	var tasks []model.Task
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		t := model.Task{
			Description:     field(rec, idx, colDescription),
			DurationMinutes: int(numeric(field(rec, idx, colDuration))),
			IntervalMonths:  numeric(field(rec, idx, colInterval)),
			ReferencePage:   field(rec, idx, colPage),
		}
		if sysOK && sysCol < len(rec) {
			t.System = cleanKey(rec[sysCol])
		}
		if t.System == "" {
			t.System = "NOT SPECIFIED"
		}
		t.Category = cleanKey(field(rec, idx, colCategory))
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func field(rec []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// numeric coerces a cell to a number, treating anything unparseable as zero.
func numeric(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func cleanKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
