package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clinicops/pmplan/pkg/agenda"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Print the schedule as a day-by-day agenda",
	RunE:  runAgenda,
}

func init() {
	rootCmd.AddCommand(agendaCmd)
}

func runAgenda(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	start, err := startDate()
	if err != nil {
		return err
	}
	return agenda.Write(cmd.OutOrStdout(), svc.Plan(start))
}
