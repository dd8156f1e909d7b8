package schedule

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinicops/pmplan/core/model"
	"github.com/clinicops/pmplan/core/planner"
)

func testTasks() []model.Task {
	return []model.Task{
		{Description: "Check interlocks", System: "LINAC", DurationMinutes: 120, IntervalMonths: 1},
	}
}

func TestHandlerReturnsSchedule(t *testing.T) {
	h := NewHandler(testTasks(), planner.New(planner.Config{}), "")
	req := httptest.NewRequest(http.MethodGet, "/api/schedule?start=2024-01-01", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var sched model.Schedule
	if err := json.NewDecoder(rec.Body).Decode(&sched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sched.Assignments) != 1 || sched.Assignments[0].Description != "Check interlocks" {
		t.Fatalf("bad schedule %+v", sched)
	}
}

func TestHandlerBadDate(t *testing.T) {
	h := NewHandler(testTasks(), planner.New(planner.Config{}), "")
	req := httptest.NewRequest(http.MethodGet, "/api/schedule?start=not-a-date", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestHandlerAuth(t *testing.T) {
	h := NewHandler(testTasks(), planner.New(planner.Config{}), "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}
