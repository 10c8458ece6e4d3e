package testutil

import (
	"fmt"
	"sync/atomic"

	"budgetdash/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Expense builds an expense with a unique ID.
func Expense(category, amount, date string) models.Expense {
	n := nextID()
	day, _ := models.ParseDay(date)
	return models.Expense{
		ID:          models.ID(fmt.Sprintf("%d", n)),
		Description: fmt.Sprintf("Test Expense %d", n),
		Category:    models.Category(category),
		Amount:      models.AmountFromString(amount),
		Date:        date,
		Month:       models.MonthOf(day),
	}
}

// Budget builds a budget for month. An empty spent leaves SpentAmount absent.
func Budget(month models.MonthKey, limit, spent string) *models.Budget {
	b := &models.Budget{
		ID:          models.ID(fmt.Sprintf("%d", nextID())),
		Month:       month,
		LimitAmount: models.AmountFromString(limit),
	}
	if spent != "" {
		b.SpentAmount = models.AmountFromString(spent)
	}
	return b
}
