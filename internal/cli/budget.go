package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/models"
)

func newBudgetCommand(svc *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "budget",
		Short:             "Show or set the monthly limit",
		PersistentPreRunE: requireSession(svc),
	}
	cmd.AddCommand(newBudgetShowCommand(svc), newBudgetSetCommand(svc))
	return cmd
}

func newBudgetShowCommand(svc *Services) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the budget for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := svc.Budgets.GetBudget(cmd.Context(), monthOrCurrent(month))
			if err != nil {
				return err
			}
			if !view.HasBudget {
				fmt.Fprintf(cmd.OutOrStdout(), "No budget set for %s.\n", view.Month.Label())
				return nil
			}
			t := Table{Title: "Budget", Rows: [][]string{
				{"Month", view.Month.Label()},
				{"Limit", money(view.Budget.LimitAmount.OrZero())},
			}}
			if view.Budget.SpentAmount.Valid {
				t.Rows = append(t.Rows, []string{"Spent (reported)", money(view.Budget.SpentAmount.Value)})
			}
			return writeTable(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default current month)")
	return cmd
}

func newBudgetSetCommand(svc *Services) *cobra.Command {
	var month, limit string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the limit for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := parseAmount("limitAmount", limit, "Please enter a valid budget amount greater than zero.")
			if err != nil {
				return err
			}
			b, err := svc.Budgets.SetBudget(cmd.Context(), models.BudgetInput{Month: monthOrCurrent(month), LimitAmount: amount})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s set to %s.\n", b.Month.Label(), money(b.LimitAmount.OrZero()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default current month)")
	cmd.Flags().StringVarP(&limit, "limit", "l", "", "Limit greater than zero")
	return cmd
}

// parseAmount parses a decimal flag. An empty flag yields zero so the
// services report the missing value.
func parseAmount(field, s, message string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		appErr := apperrors.WithFields(apperrors.ErrValidation, map[string]string{field: message})
		return decimal.Zero, apperrors.WithMessage(appErr, message)
	}
	return d, nil
}
