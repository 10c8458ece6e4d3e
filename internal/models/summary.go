package models

import "github.com/shopspring/decimal"

// BudgetStatus classifies how much of a month's limit has been used.
type BudgetStatus string

const (
	StatusNoBudget BudgetStatus = "no_budget"
	StatusOnTrack  BudgetStatus = "on_track"
	StatusCaution  BudgetStatus = "caution"
	StatusWarning  BudgetStatus = "warning"
	StatusExceeded BudgetStatus = "exceeded"
)

// Severity orders statuses from least to most severe. NoBudget sits outside
// the scale and returns -1.
func (s BudgetStatus) Severity() int {
	switch s {
	case StatusOnTrack:
		return 0
	case StatusCaution:
		return 1
	case StatusWarning:
		return 2
	case StatusExceeded:
		return 3
	}
	return -1
}

// SpentSource records which figure the spent amount came from.
type SpentSource string

const (
	SpentFromBackend  SpentSource = "backend"
	SpentFromExpenses SpentSource = "computed"
)

// CategoryTotal is one entry of the category ranking.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TrendPoint is the total spent on one day.
type TrendPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary is the display-ready view of one month. It is derived, never stored.
type Summary struct {
	Month           MonthKey                   `json:"month"`
	HasBudget       bool                       `json:"hasBudget"`
	LimitAmount     decimal.Decimal            `json:"limitAmount"`
	SpentAmount     decimal.Decimal            `json:"spentAmount"`
	SpentSource     SpentSource                `json:"spentSource"`
	RemainingAmount decimal.Decimal            `json:"remainingAmount"`
	OverspentAmount decimal.Decimal            `json:"overspentAmount"`
	PercentageUsed  decimal.Decimal            `json:"percentageUsed"`
	ProgressPercent decimal.Decimal            `json:"progressPercent"`
	Status          BudgetStatus               `json:"status"`
	StatusMessage   string                     `json:"statusMessage"`
	CategoryTotals  map[string]decimal.Decimal `json:"categoryTotals"`
	CategoryRanking []CategoryTotal            `json:"categoryRanking"`
	Trend           []TrendPoint               `json:"trend"`
	TrendSufficient bool                       `json:"trendSufficient"`
	Recent          []Expense                  `json:"recent"`
	ExpenseCount    int                        `json:"expenseCount"`
}
