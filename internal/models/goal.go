package models

import "github.com/shopspring/decimal"

// GoalState is the derived savings-goal view.
type GoalState struct {
	GoalAmount                  decimal.Decimal `json:"goalAmount"`
	SavedAmount                 decimal.Decimal `json:"savedAmount"`
	MonthsToSave                int             `json:"monthsToSave"`
	ProgressPercentage          decimal.Decimal `json:"progressPercentage"`
	MonthlyContributionRequired decimal.Decimal `json:"monthlyContributionRequired"`
}

// StoredGoal is the persisted goal shape. Values saved by older clients may be
// strings, which Amount decodes leniently.
type StoredGoal struct {
	GoalAmount  Amount `json:"goalAmount"`
	SavedAmount Amount `json:"savedAmount"`
}

// GoalInput is the goal form. MonthsToSave is only used by calculations.
type GoalInput struct {
	GoalAmount   decimal.Decimal `json:"goalAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	MonthsToSave int             `json:"monthsToSave"`
}
