package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/clinicops/pmplan/api/schedule"
	"github.com/clinicops/pmplan/config"
	coremetrics "github.com/clinicops/pmplan/core/metrics"
	"github.com/clinicops/pmplan/core/model"
	"github.com/clinicops/pmplan/core/planner"
	"github.com/clinicops/pmplan/infra/logger"
	"github.com/clinicops/pmplan/infra/metrics"
	"github.com/clinicops/pmplan/pkg/loader"
)

// Service ties the task loader, planner and metrics sinks together.
type Service struct {
	Planner planner.Planner
	cfg     *config.Config
	tasks   []model.Task
	sink    coremetrics.Sink
	log     logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}

	return &Service{
		Planner: planner.New(cfg.Planner),
		cfg:     cfg,
		sink:    sink,
		log:     logg,
	}, nil
}

// LoadTasks reads the task sheet at path and keeps the tasks matching the
// filter for later planning.
func (s *Service) LoadTasks(path string, f model.Filter) error {
	tasks, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	s.tasks = f.Apply(tasks)
	s.log.Infof("loaded %d tasks (%d after filters) from %s", len(tasks), len(s.tasks), path)
	return nil
}

// Tasks returns the loaded, filtered task set.
func (s *Service) Tasks() []model.Task { return s.tasks }

// Plan schedules the loaded tasks from the given start date and records the
// run on the configured sinks.
func (s *Service) Plan(start time.Time) model.Schedule {
	sched := s.Planner.Plan(s.tasks, start)
	stats := coremetrics.StatsFor(s.tasks, sched)
	if err := s.sink.RecordPlan(stats); err != nil {
		s.log.Errorf("record plan: %v", err)
	}
	if sched.Truncated {
		s.log.Warnf("scheduling window capacity exceeded: %d of %d tasks placed",
			stats.TasksPlanned, stats.TasksPlanned+stats.TasksDropped)
	}
	return sched
}

// Run serves the schedule API and, when enabled, the Prometheus endpoint
// until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()
	mux.Handle("/api/schedule", schedule.NewHandler(s.tasks, s.Planner, s.cfg.API.Token))
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()
	s.log.Infof("schedule API listening on %s", s.cfg.API.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
