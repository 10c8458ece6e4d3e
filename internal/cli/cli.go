// Package cli implements the budget command-line client on top of the
// budgetdash services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/services"
	"budgetdash/internal/session"
)

// SessionSource returns the stored session.
type SessionSource interface {
	Current(ctx context.Context) (session.Session, error)
}

// Services are the operations the commands call.
type Services struct {
	Sessions SessionSource
	Auth     services.AuthServicer
	Viewport services.ViewportServicer
	Budgets  services.BudgetServicer
	Expenses services.ExpenseServicer
	Goals    services.GoalServicer
}

// NewRootCommand builds the command tree. Output goes to the command's
// configured writer.
func NewRootCommand(svc *Services) *cobra.Command {
	root := &cobra.Command{
		Use:           "budget",
		Short:         "Personal budget dashboard",
		Long:          "Track a monthly budget, record expenses, and plan a savings goal against the budget service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(svc),
		newRegisterCommand(svc),
		newLogoutCommand(svc),
		newWhoamiCommand(svc),
		newSummaryCommand(svc),
		newBudgetCommand(svc),
		newExpenseCommand(svc),
		newGoalCommand(svc),
	)
	return root
}

// requireSession loads the stored session onto the command context so the
// budget service calls are authenticated.
func requireSession(svc *Services) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		sess, err := svc.Sessions.Current(cmd.Context())
		if err != nil {
			return err
		}
		cmd.SetContext(session.NewContext(cmd.Context(), sess))
		return nil
	}
}

// PrintError writes err for a terminal user, including any per-field messages.
func PrintError(w io.Writer, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Error: %s\n", appErr.Message)
	if len(appErr.Fields) > 1 {
		keys := make([]string, 0, len(appErr.Fields))
		for k := range appErr.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %s: %s\n", k, appErr.Fields[k])
		}
	}
	if errors.Is(err, apperrors.ErrUnauthenticated) {
		fmt.Fprintln(w, "Run `budget login` to sign in.")
	}
}
