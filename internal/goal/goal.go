// Package goal computes savings-goal progress and the monthly contribution
// needed to reach a goal.
package goal

import (
	"github.com/shopspring/decimal"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/models"
)

// DefaultMonths is used when the months-to-save input is missing or not positive.
const DefaultMonths = 1

var hundred = decimal.NewFromInt(100)

// Progress returns saved / goal * 100 clamped to [0, 100]. It never fails: a
// goal that is not positive shows 0%.
func Progress(goalAmount, savedAmount decimal.Decimal) decimal.Decimal {
	if !goalAmount.IsPositive() {
		return decimal.Zero
	}
	pct := savedAmount.Div(goalAmount).Mul(hundred)
	if pct.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(pct, hundred)
}

// NormalizeMonths returns months, or DefaultMonths when months < 1.
func NormalizeMonths(months int) int {
	if months < 1 {
		return DefaultMonths
	}
	return months
}

// Calculate derives the full goal state. It fails with a validation error when
// the goal is not positive or the saved amount is negative.
func Calculate(goalAmount, savedAmount decimal.Decimal, months int) (*models.GoalState, error) {
	if !goalAmount.IsPositive() {
		return nil, invalid("goalAmount", "Enter a valid goal amount greater than 0.")
	}
	if savedAmount.IsNegative() {
		return nil, invalid("savedAmount", "Saved amount cannot be negative.")
	}

	months = NormalizeMonths(months)
	return &models.GoalState{
		GoalAmount:                  goalAmount,
		SavedAmount:                 savedAmount,
		MonthsToSave:                months,
		ProgressPercentage:          Progress(goalAmount, savedAmount).Round(2),
		MonthlyContributionRequired: goalAmount.Div(decimal.NewFromInt(int64(months))).Round(2),
	}, nil
}

func invalid(field, message string) error {
	err := apperrors.WithFields(apperrors.ErrValidation, map[string]string{field: message})
	return apperrors.WithMessage(err, message)
}
