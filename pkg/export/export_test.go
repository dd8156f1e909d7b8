package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicops/pmplan/core/model"
)

func sampleSchedule() model.Schedule {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	start := day.Add(16 * time.Hour)
	return model.Schedule{
		Assignments: []model.ScheduledAssignment{
			{
				Date:            day,
				Description:     "Check interlocks",
				System:          "LINAC",
				DurationMinutes: 120,
				ReferencePage:   "12",
				Start:           start,
				End:             start.Add(2 * time.Hour),
			},
			{
				Date:            day,
				Description:     "Couch inspection",
				System:          "CT",
				DurationMinutes: 45,
				Start:           start.Add(2 * time.Hour),
				End:             start.Add(2*time.Hour + 45*time.Minute),
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSchedule()))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"date", "task", "start", "finish", "system", "duration_mins", "page_number"}, recs[0])
	assert.Equal(t, "2024-01-01", recs[1][0])
	assert.Equal(t, "Check interlocks", recs[1][1])
	assert.Equal(t, "2024-01-01T16:00:00Z", recs[1][2])
	assert.Equal(t, "120", recs[1][5])
	assert.Equal(t, "CT", recs[2][4])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleSchedule()))

	var got model.Schedule
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Assignments, 2)
	assert.Equal(t, "Check interlocks", got.Assignments[0].Description)
	assert.False(t, got.Truncated)
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, sampleSchedule()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:PM Task: Check interlocks")
	assert.Contains(t, out, "DTSTART:20240101T160000Z")
	assert.Contains(t, out, "Duration: 120 minutes")
}

func TestWriteEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, model.Schedule{}))
	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	buf.Reset()
	require.NoError(t, WriteICS(&buf, model.Schedule{}))
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
}
