package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"budgetdash/internal/logger"
	"budgetdash/internal/models"
)

// GetExpenses lists the expenses recorded for month. A reply that is not a
// JSON array is treated as no expenses.
func (c *BudgetClient) GetExpenses(ctx context.Context, month models.MonthKey) ([]models.Expense, error) {
	data, err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/expenses",
		query:  url.Values{"month": {month.String()}},
	})
	if err != nil {
		return nil, err
	}

	if !isArray(data) {
		return []models.Expense{}, nil
	}
	var expenses []models.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		logger.Named("client").Warnw("discarding malformed expense list", "month", month, "error", err)
		return []models.Expense{}, nil
	}
	return expenses, nil
}

// CreateExpense records an expense. The budget service may echo the created
// record; otherwise the submitted one is returned.
func (c *BudgetClient) CreateExpense(ctx context.Context, e models.Expense) (*models.Expense, error) {
	payload := struct {
		Description string          `json:"description"`
		Amount      models.Amount   `json:"amount"`
		Category    models.Category `json:"category"`
		Date        string          `json:"date"`
		Month       models.MonthKey `json:"month"`
	}{e.Description, e.Amount, e.Category, e.Date, e.Month}

	data, err := c.do(ctx, call{method: http.MethodPost, path: "/expenses", body: payload})
	if err != nil {
		return nil, err
	}

	if isObject(data) {
		var created models.Expense
		if err := json.Unmarshal(data, &created); err == nil {
			return &created, nil
		}
	}
	return &e, nil
}
