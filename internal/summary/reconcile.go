package summary

import (
	"github.com/shopspring/decimal"

	"budgetdash/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Reconcile picks the authoritative spent amount for a month. The backend
// figure wins only when it is a valid positive number; a zero backend value
// cannot be told apart from "never computed", so the fresh local sum is used.
func Reconcile(budget *models.Budget, expenses []models.Expense) (decimal.Decimal, models.SpentSource) {
	if budget != nil && budget.SpentAmount.IsPositive() {
		return budget.SpentAmount.Value, models.SpentFromBackend
	}
	return ComputeSpent(expenses), models.SpentFromExpenses
}

// LimitOf returns the month's limit. A missing budget, or one whose limit is
// invalid or not positive, has a limit of zero.
func LimitOf(budget *models.Budget) decimal.Decimal {
	if budget == nil || !budget.LimitAmount.IsPositive() {
		return decimal.Zero
	}
	return budget.LimitAmount.Value
}

// PercentageUsed returns spent / limit * 100, or zero when limit is not positive.
func PercentageUsed(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(limit).Mul(hundred)
}

// Build assembles the Summary for month. It is idempotent: the same inputs
// always give the same Summary.
func Build(month models.MonthKey, budget *models.Budget, expenses []models.Expense) models.Summary {
	limit := LimitOf(budget)
	spent, source := Reconcile(budget, expenses)
	remaining := limit.Sub(spent)
	pct := PercentageUsed(spent, limit).Round(2)
	status := Classify(pct, limit, remaining)

	overspent := decimal.Zero
	if remaining.IsNegative() {
		overspent = remaining.Neg()
	}

	totals := ComputeCategoryTotals(expenses)
	trend := ComputeTrend(expenses)

	return models.Summary{
		Month:           month,
		HasBudget:       limit.IsPositive(),
		LimitAmount:     limit,
		SpentAmount:     spent,
		SpentSource:     source,
		RemainingAmount: remaining,
		OverspentAmount: overspent,
		PercentageUsed:  pct,
		ProgressPercent: decimal.Min(pct, hundred).Round(2),
		Status:          status,
		StatusMessage:   Message(status, remaining),
		CategoryTotals:  totals,
		CategoryRanking: RankCategories(totals),
		Trend:           trend,
		TrendSufficient: trend.Sufficient(),
		Recent:          ComputeRecent(expenses, DefaultRecent),
		ExpenseCount:    len(expenses),
	}
}
