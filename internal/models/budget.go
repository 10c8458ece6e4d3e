package models

import "github.com/shopspring/decimal"

// Budget is the spending limit for one month. SpentAmount is whatever the
// budget service last computed and may be stale, zero, or absent.
type Budget struct {
	ID          ID       `json:"id,omitempty"`
	Month       MonthKey `json:"month"`
	LimitAmount Amount   `json:"limitAmount"`
	SpentAmount Amount   `json:"spentAmount"`
}

// Equal reports whether two budgets carry the same data. Two nil budgets are equal.
func (b *Budget) Equal(o *Budget) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.ID == o.ID &&
		b.Month == o.Month &&
		b.LimitAmount.Equal(o.LimitAmount) &&
		b.SpentAmount.Equal(o.SpentAmount)
}

// BudgetInput sets the limit for a month.
type BudgetInput struct {
	Month       MonthKey        `json:"month" binding:"required,month_key"`
	LimitAmount decimal.Decimal `json:"limitAmount" binding:"required,gt=0"`
}
