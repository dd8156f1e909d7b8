package metrics

import (
	"github.com/clinicops/pmplan/core/model"
)

// PlanStats summarizes one planning run for observability purposes.
type PlanStats struct {
	TasksPlanned int
	TasksDropped int
	DaysUsed     int
	TotalMinutes int
	Truncated    bool
}

// Sink records planning runs.
type Sink interface {
	RecordPlan(stats PlanStats) error
}

// NopSink discards all records.
type NopSink struct{}

// RecordPlan implements Sink.
func (NopSink) RecordPlan(PlanStats) error { return nil }

// MultiSink fans records out to several sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordPlan forwards to every sink and returns the first error seen.
func (m *MultiSink) RecordPlan(stats PlanStats) error {
	var first error
	for _, s := range m.sinks {
		if err := s.RecordPlan(stats); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// StatsFor derives PlanStats from the planner's input and output. Tasks
// with zero duration never count as dropped since the planner skips them
// by contract.
func StatsFor(tasks []model.Task, s model.Schedule) PlanStats {
	schedulable := 0
	for _, t := range tasks {
		if t.DurationMinutes != 0 {
			schedulable++
		}
	}
	minutes := 0
	for _, a := range s.Assignments {
		minutes += a.DurationMinutes
	}
	return PlanStats{
		TasksPlanned: len(s.Assignments),
		TasksDropped: schedulable - len(s.Assignments),
		DaysUsed:     len(s.Days()),
		TotalMinutes: minutes,
		Truncated:    s.Truncated,
	}
}

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled" yaml:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port" yaml:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled" yaml:"influx_enabled"`
	InfluxURL         string `json:"influx_url" yaml:"influx_url"`
	InfluxToken       string `json:"influx_token" yaml:"influx_token"`
	InfluxOrg         string `json:"influx_org" yaml:"influx_org"`
	InfluxBucket      string `json:"influx_bucket" yaml:"influx_bucket"`
}
