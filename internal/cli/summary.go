package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgetdash/internal/models"
)

func newSummaryCommand(svc *Services) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:     "summary",
		Short:   "Show the month's spending against its budget",
		Args:    cobra.NoArgs,
		PreRunE: requireSession(svc),
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := svc.Viewport.Show(cmd.Context(), models.MonthKey(month))
			if err != nil {
				return err
			}
			for _, n := range d.Notices {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", n.Source, n.Message)
			}
			if d.Stale {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: showing the last loaded figures")
			}
			return renderSummary(cmd.OutOrStdout(), d.Summary)
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default current month)")
	return cmd
}
