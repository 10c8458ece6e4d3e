package summary

import (
	"sync"

	"budgetdash/internal/models"
)

// Memo caches the last Build result and recomputes only when the month,
// budget, or expense list differ from the previous call.
type Memo struct {
	mu       sync.Mutex
	month    models.MonthKey
	budget   *models.Budget
	expenses []models.Expense
	result   models.Summary
	primed   bool
}

// Build returns the Summary for the inputs, reusing the previous result when
// they are unchanged.
func (m *Memo) Build(month models.MonthKey, budget *models.Budget, expenses []models.Expense) models.Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.primed && m.month == month && m.budget.Equal(budget) && sameExpenses(m.expenses, expenses) {
		return m.result
	}

	m.month = month
	m.budget = cloneBudget(budget)
	m.expenses = append([]models.Expense(nil), expenses...)
	m.result = Build(month, budget, expenses)
	m.primed = true
	return m.result
}

// Reset drops the cached result.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.month = ""
	m.budget = nil
	m.expenses = nil
	m.result = models.Summary{}
	m.primed = false
}

func sameExpenses(a, b []models.Expense) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func cloneBudget(b *models.Budget) *models.Budget {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
