package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clinicops/pmplan/core/model"
	"github.com/clinicops/pmplan/pkg/export"
)

var (
	csvOut  string
	jsonOut string
	icsOut  string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Schedule the task sheet and export the result",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&csvOut, "csv", "", "write the schedule as CSV to this file")
	planCmd.Flags().StringVar(&jsonOut, "json", "", "write the schedule as JSON to this file")
	planCmd.Flags().StringVar(&icsOut, "ics", "", "write the schedule as an iCalendar file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	start, err := startDate()
	if err != nil {
		return err
	}
	sched := svc.Plan(start)

	type writer struct {
		path  string
		write func(io.Writer, model.Schedule) error
	}
	writers := []writer{
		{csvOut, export.WriteCSV},
		{jsonOut, export.WriteJSON},
		{icsOut, export.WriteICS},
	}
	for _, wr := range writers {
		if wr.path == "" {
			continue
		}
		f, err := os.Create(wr.path)
		if err != nil {
			return fmt.Errorf("create %s: %w", wr.path, err)
		}
		if err := wr.write(f, sched); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", wr.path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if csvOut == "" && jsonOut == "" && icsOut == "" {
		if err := export.WriteCSV(cmd.OutOrStdout(), sched); err != nil {
			return err
		}
	}
	if sched.Truncated {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: total task duration exceeds the capacity of the scheduling window; some tasks were not scheduled")
	}
	return nil
}
