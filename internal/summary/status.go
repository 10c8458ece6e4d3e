package summary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"budgetdash/internal/models"
)

// Status band thresholds, in percent of the limit.
var (
	CautionThreshold = decimal.NewFromInt(75)
	WarningThreshold = decimal.NewFromInt(90)
)

// Classify maps a month's usage onto one status band:
//
//	limit <= 0          no_budget
//	remaining < 0       exceeded
//	pct in [90, 100]    warning
//	pct in [75, 90)     caution
//	pct < 75            on_track
func Classify(pct, limit, remaining decimal.Decimal) models.BudgetStatus {
	switch {
	case !limit.IsPositive():
		return models.StatusNoBudget
	case remaining.IsNegative():
		return models.StatusExceeded
	case pct.GreaterThanOrEqual(WarningThreshold):
		return models.StatusWarning
	case pct.GreaterThanOrEqual(CautionThreshold):
		return models.StatusCaution
	default:
		return models.StatusOnTrack
	}
}

// Message returns the user-facing notice for a status.
func Message(status models.BudgetStatus, remaining decimal.Decimal) string {
	switch status {
	case models.StatusNoBudget:
		return "No budget set for this month."
	case models.StatusExceeded:
		return fmt.Sprintf("Budget exceeded! Overspent by %s.", remaining.Neg().StringFixed(2))
	case models.StatusWarning:
		return fmt.Sprintf("Warning: 90%% of your budget is used. Remaining: %s.", remaining.StringFixed(2))
	case models.StatusCaution:
		return "75% of your budget is already used. Spend carefully!"
	default:
		return "You are on track."
	}
}
