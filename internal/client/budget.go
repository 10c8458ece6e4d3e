package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"budgetdash/internal/models"
)

// GetBudget fetches the budget for month. A 404 comes back as NOT_FOUND; a
// reply that is not a JSON object means no budget and returns nil.
func (c *BudgetClient) GetBudget(ctx context.Context, month models.MonthKey) (*models.Budget, error) {
	data, err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/budget",
		query:  url.Values{"month": {month.String()}},
	})
	if err != nil {
		return nil, err
	}
	return decodeBudget(data), nil
}

// SetBudget creates or replaces the limit for month.
func (c *BudgetClient) SetBudget(ctx context.Context, month models.MonthKey, limit decimal.Decimal) (*models.Budget, error) {
	data, err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/budget",
		query:  url.Values{"month": {month.String()}, "limitAmount": {limit.String()}},
	})
	if err != nil {
		return nil, err
	}

	if b := decodeBudget(data); b != nil {
		return b, nil
	}
	return &models.Budget{Month: month, LimitAmount: models.NewAmount(limit)}, nil
}

func decodeBudget(data []byte) *models.Budget {
	if !isObject(data) {
		return nil
	}
	var b models.Budget
	if err := json.Unmarshal(data, &b); err != nil {
		return nil
	}
	return &b
}
