// Package summary derives display-ready month aggregates from the budget and
// expense records reported by the budget service. Everything here is a pure
// function of its inputs.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"budgetdash/internal/models"
)

// DefaultRecent is the number of expenses ComputeRecent returns when n <= 0.
const DefaultRecent = 5

// ComputeSpent sums expense amounts. Missing, non-numeric, and negative
// amounts count as zero, so the result is never negative.
func ComputeSpent(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount.NonNegative())
	}
	return total
}

// ComputeCategoryTotals sums amounts per category bucket. Expenses without a
// category land in models.Uncategorized.
func ComputeCategoryTotals(expenses []models.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		key := e.Category.Bucket()
		totals[key] = totals[key].Add(e.Amount.NonNegative())
	}
	return totals
}

// RankCategories orders category totals by amount, largest first, dropping
// entries that are zero or negative. Equal amounts are ordered by name.
func RankCategories(totals map[string]decimal.Decimal) []models.CategoryTotal {
	ranked := make([]models.CategoryTotal, 0, len(totals))
	for name, amount := range totals {
		if !amount.IsPositive() {
			continue
		}
		ranked = append(ranked, models.CategoryTotal{Category: name, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].Amount.Cmp(ranked[j].Amount); c != 0 {
			return c > 0
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}

// Trend is a daily spending series in ascending date order.
type Trend []models.TrendPoint

// Sufficient reports whether the series has enough distinct days to plot.
func (t Trend) Sufficient() bool { return len(t) >= 2 }

// ComputeTrend sums amounts per calendar day. Expenses whose date is missing
// or unparseable are left out.
func ComputeTrend(expenses []models.Expense) Trend {
	byDay := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		day, ok := e.Day()
		if !ok {
			continue
		}
		key := models.FormatDay(day)
		byDay[key] = byDay[key].Add(e.Amount.NonNegative())
	}

	trend := make(Trend, 0, len(byDay))
	for day, amount := range byDay {
		trend = append(trend, models.TrendPoint{Date: day, Amount: amount})
	}
	// YYYY-MM-DD sorts chronologically as text.
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

// ComputeRecent returns the n most recent expenses, newest first. Expenses on
// the same day keep their original relative order; undated expenses go last.
func ComputeRecent(expenses []models.Expense, n int) []models.Expense {
	if n <= 0 {
		n = DefaultRecent
	}

	type dated struct {
		expense models.Expense
		day     time.Time
		ok      bool
	}
	items := make([]dated, len(expenses))
	for i, e := range expenses {
		day, ok := e.Day()
		items[i] = dated{expense: e, day: day, ok: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ok != items[j].ok {
			return items[i].ok
		}
		return items[i].day.After(items[j].day)
	})

	if len(items) > n {
		items = items[:n]
	}
	recent := make([]models.Expense, len(items))
	for i, it := range items {
		recent[i] = it.expense
	}
	return recent
}
