package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinicops/pmplan/core/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize the task sheet: totals, burden scores, annual workload",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	tasks := svc.Tasks()
	out := cmd.OutOrStdout()

	sum := analysis.Summarize(tasks)
	fmt.Fprintf(out, "Tasks: %d\nTotal duration: %.2f hours\nSystems: %d\n\n",
		sum.TotalTasks, sum.TotalHours, sum.UniqueSystems)

	fmt.Fprintln(out, "Maintenance burden by system:")
	for _, b := range analysis.BurdenBySystem(tasks) {
		fmt.Fprintf(out, "  %-24s %6d min  mean interval %.1f mo  score %.1f\n",
			b.System, b.TotalMinutes, b.MeanIntervalMonths, b.Score)
	}

	fmt.Fprintln(out, "\nProjected annual workload (hours):")
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, h := range analysis.AnnualWorkload(tasks) {
		fmt.Fprintf(out, "  %s %7.1f\n", months[i], h)
	}

	fmt.Fprintln(out, "\nLongest tasks:")
	for _, t := range analysis.Longest(tasks, 10) {
		fmt.Fprintf(out, "  %4d min  %s\n", t.DurationMinutes, t.Description)
	}
	return nil
}
