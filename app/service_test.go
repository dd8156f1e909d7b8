package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicops/pmplan/config"
	"github.com/clinicops/pmplan/core/model"
)

func writeSheet(t *testing.T) string {
	t.Helper()
	data := `Task Description,System,Duration (mins),Interval (months),Category of PM check,Page Number
Check interlocks,LINAC,120,1,ELECTRICAL,12
Couch inspection,CT,45,3,MECHANICAL,7
Filter swap,HVAC,30,6,MECHANICAL,3
`
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestServicePlan(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)
	require.NoError(t, svc.LoadTasks(writeSheet(t), model.Filter{}))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sched := svc.Plan(start)
	assert.False(t, sched.Truncated)
	assert.Len(t, sched.Assignments, 3)
}

func TestServiceFilter(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)
	require.NoError(t, svc.LoadTasks(writeSheet(t), model.Filter{Systems: []string{"LINAC"}}))

	assert.Len(t, svc.Tasks(), 1)
	sched := svc.Plan(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, sched.Assignments, 1)
	assert.Equal(t, "LINAC", sched.Assignments[0].System)
}

func TestServiceMissingSheet(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)
	assert.Error(t, svc.LoadTasks(filepath.Join(t.TempDir(), "nope.csv"), model.Filter{}))
}
