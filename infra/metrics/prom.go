package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/clinicops/pmplan/core/metrics"
)

// PromSink records planning runs in Prometheus metrics.
type PromSink struct {
	runs    *prometheus.CounterVec
	planned prometheus.Counter
	dropped prometheus.Counter
	load    prometheus.Histogram
}

// NewPromSink registers planning metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pmplan_runs_total",
		Help: "Total number of planning runs",
	}, []string{"truncated"})
	planned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pmplan_tasks_planned_total",
		Help: "Total number of tasks placed on the schedule",
	})
	dropped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pmplan_tasks_dropped_total",
		Help: "Total number of tasks dropped for lack of capacity",
	})
	load := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pmplan_day_load_minutes",
		Help:    "Average scheduled minutes per selected workday",
		Buckets: prometheus.LinearBuckets(0, 60, 6),
	})

	s := &PromSink{runs: runs, planned: planned, dropped: dropped, load: load}
	for _, c := range []prometheus.Collector{runs, planned, dropped, load} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch existing := are.ExistingCollector.(type) {
			case *prometheus.CounterVec:
				s.runs = existing
			case prometheus.Histogram:
				s.load = existing
			case prometheus.Counter:
				if c == planned {
					s.planned = existing
				} else {
					s.dropped = existing
				}
			}
		}
	}
	return s, nil
}

// RecordPlan implements coremetrics.Sink.
func (s *PromSink) RecordPlan(stats coremetrics.PlanStats) error {
	s.runs.WithLabelValues(strconv.FormatBool(stats.Truncated)).Inc()
	s.planned.Add(float64(stats.TasksPlanned))
	s.dropped.Add(float64(stats.TasksDropped))
	if stats.DaysUsed > 0 {
		s.load.Observe(float64(stats.TotalMinutes) / float64(stats.DaysUsed))
	}
	return nil
}
