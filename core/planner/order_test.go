package planner

import (
	"reflect"
	"testing"

	"github.com/clinicops/pmplan/core/model"
)

func TestOrderTasksKeys(t *testing.T) {
	tasks := []model.Task{
		task("long yearly", "LINAC", 240, 12),
		task("short monthly", "CT", 30, 1),
		task("long monthly", "LINAC", 180, 1),
		task("short yearly", "LINAC", 60, 12),
		task("big monthly", "LINAC", 200, 1),
	}
	got := OrderTasks(tasks)
	want := []string{
		"short monthly", // CT before LINAC
		"big monthly",   // shortest interval, largest first
		"long monthly",
		"long yearly",
		"short yearly",
	}
	for i, w := range want {
		if got[i].Description != w {
			t.Fatalf("position %d: expected %s got %s", i, w, got[i].Description)
		}
	}
}

func TestOrderTasksStable(t *testing.T) {
	tasks := []model.Task{
		task("first", "CT", 30, 1),
		task("second", "CT", 30, 1),
		task("third", "CT", 30, 1),
	}
	got := OrderTasks(tasks)
	for i, w := range []string{"first", "second", "third"} {
		if got[i].Description != w {
			t.Fatalf("tied tasks reordered: %+v", got)
		}
	}
}

func TestOrderTasksDoesNotMutate(t *testing.T) {
	tasks := []model.Task{
		task("z", "Z", 10, 1),
		task("a", "A", 10, 1),
	}
	snapshot := make([]model.Task, len(tasks))
	copy(snapshot, tasks)
	OrderTasks(tasks)
	if !reflect.DeepEqual(tasks, snapshot) {
		t.Fatalf("input mutated: %+v", tasks)
	}
}

func TestOrderTasksEmpty(t *testing.T) {
	if got := OrderTasks(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
