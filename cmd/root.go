package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clinicops/pmplan/app"
	"github.com/clinicops/pmplan/config"
	"github.com/clinicops/pmplan/core/model"
)

var (
	cfgPath    string
	taskPath   string
	startStr   string
	systems    []string
	categories []string
	intervals  []float64
)

var rootCmd = &cobra.Command{
	Use:   "pmplan",
	Short: "Preventive-maintenance planning toolkit",
	Long: `pmplan schedules recurring preventive-maintenance tasks into a
bounded window of future workdays and renders agenda, analysis and
calendar outputs from the resulting plan.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file")
	rootCmd.PersistentFlags().StringVarP(&taskPath, "tasks", "f", "", "PM task sheet (CSV)")
	rootCmd.PersistentFlags().StringVar(&startStr, "start", "", "schedule start date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().StringSliceVar(&systems, "system", nil, "only include these systems")
	rootCmd.PersistentFlags().StringSliceVar(&categories, "category", nil, "only include these PM categories")
	rootCmd.PersistentFlags().Float64SliceVar(&intervals, "interval", nil, "only include these intervals (months)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// newService loads the configuration and the task sheet shared by all
// subcommands.
func newService() (*app.Service, error) {
	if taskPath == "" {
		return nil, fmt.Errorf("a task sheet is required (--tasks)")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	filter := model.Filter{Intervals: intervals, Systems: systems, Categories: categories}
	if err := svc.LoadTasks(taskPath, filter); err != nil {
		return nil, err
	}
	return svc, nil
}

func startDate() (time.Time, error) {
	if startStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", startStr, err)
	}
	return t, nil
}
