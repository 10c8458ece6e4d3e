package cli

import (
	"github.com/spf13/cobra"

	"budgetdash/internal/models"
)

func newGoalCommand(svc *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Plan a savings goal",
	}
	cmd.AddCommand(newGoalShowCommand(svc), newGoalSaveCommand(svc), newGoalCalcCommand(svc))
	return cmd
}

func newGoalShowCommand(svc *Services) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := svc.Goals.GetGoal(cmd.Context())
			if err != nil {
				return err
			}
			return renderGoal(cmd.OutOrStdout(), state, false)
		},
	}
}

type goalFlags struct {
	goal, saved string
	months      int
}

func (f *goalFlags) input() (models.GoalInput, error) {
	g, err := parseAmount("goalAmount", f.goal, "Enter a valid goal amount greater than 0.")
	if err != nil {
		return models.GoalInput{}, err
	}
	s, err := parseAmount("savedAmount", f.saved, "Saved amount cannot be negative.")
	if err != nil {
		return models.GoalInput{}, err
	}
	return models.GoalInput{GoalAmount: g, SavedAmount: s, MonthsToSave: f.months}, nil
}

func newGoalSaveCommand(svc *Services) *cobra.Command {
	var f goalFlags
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Store the goal and amount saved so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := f.input()
			if err != nil {
				return err
			}
			state, err := svc.Goals.SaveGoal(cmd.Context(), input)
			if err != nil {
				return err
			}
			return renderGoal(cmd.OutOrStdout(), state, false)
		},
	}
	cmd.Flags().StringVarP(&f.goal, "goal", "g", "", "Goal amount")
	cmd.Flags().StringVarP(&f.saved, "saved", "s", "", "Amount saved so far")
	return cmd
}

func newGoalCalcCommand(svc *Services) *cobra.Command {
	var f goalFlags
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the monthly contribution for a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := f.input()
			if err != nil {
				return err
			}
			state, err := svc.Goals.CalculateGoal(input)
			if err != nil {
				return err
			}
			return renderGoal(cmd.OutOrStdout(), state, true)
		},
	}
	cmd.Flags().StringVarP(&f.goal, "goal", "g", "", "Goal amount")
	cmd.Flags().StringVarP(&f.saved, "saved", "s", "", "Amount saved so far")
	cmd.Flags().IntVarP(&f.months, "months", "n", 1, "Months to save")
	return cmd
}
