package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgetdash/internal/models"
	"budgetdash/internal/pagination"
)

func newExpenseCommand(svc *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "expense",
		Short:             "Record and list expenses",
		PersistentPreRunE: requireSession(svc),
	}
	cmd.AddCommand(newExpenseAddCommand(svc), newExpenseListCommand(svc))
	return cmd
}

func newExpenseAddCommand(svc *Services) *cobra.Command {
	var input models.NewExpense
	var amount, category string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := parseAmount("amount", amount, "Valid amount is required.")
			if err != nil {
				return err
			}
			input.Amount = models.NewAmount(a)
			input.Category = models.Category(category)
			if input.Date == "" {
				input.Date = models.FormatDay(now())
			}

			e, err := svc.Expenses.CreateExpense(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s on %s.\n", money(e.Amount.OrZero()), e.Category.Bucket(), e.Date)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input.Description, "description", "d", "", "What the money was spent on")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount greater than zero")
	cmd.Flags().StringVarP(&category, "category", "c", "", "One of Food, Transport, Entertainment, Housing, Utilities, Other")
	cmd.Flags().StringVar(&input.Date, "date", "", "Date as YYYY-MM-DD (default today)")
	return cmd
}

func newExpenseListCommand(svc *Services) *cobra.Command {
	var month string
	var page pagination.PageRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a month's expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := svc.Expenses.ListExpenses(cmd.Context(), monthOrCurrent(month), page)
			if err != nil {
				return err
			}
			if resp.TotalItems == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses recorded.")
				return nil
			}
			if err := renderExpenses(cmd.OutOrStdout(), resp.Data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%d expenses)\n", resp.Page, resp.TotalPages, resp.TotalItems)
			return nil
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default current month)")
	cmd.Flags().IntVar(&page.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&page.PageSize, "page-size", 20, "Expenses per page")
	return cmd
}
