package services

import (
	"context"
	"errors"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/logger"
	"budgetdash/internal/models"
	"budgetdash/internal/validator"
)

// budgetService handles budget-related operations.
type budgetService struct {
	sessionGuard
	api BudgetAPI
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(api BudgetAPI, sessions SessionManager) BudgetServicer {
	return &budgetService{sessionGuard: sessionGuard{sessions: sessions}, api: api}
}

// GetBudget returns the budget for month. A month without a budget is not an error.
func (s *budgetService) GetBudget(ctx context.Context, month models.MonthKey) (*models.BudgetView, error) {
	month, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	b, err := s.api.GetBudget(ctx, month)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, s.check(ctx, err)
	}
	return &models.BudgetView{Month: month, HasBudget: b != nil, Budget: b}, nil
}

// SetBudget validates the limit and saves it for the month.
func (s *budgetService) SetBudget(ctx context.Context, input models.BudgetInput) (*models.Budget, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	b, err := s.api.SetBudget(ctx, input.Month, input.LimitAmount)
	if err != nil {
		return nil, s.check(ctx, err)
	}
	if b.Month == "" {
		b.Month = input.Month
	}

	logger.Get().Infow("budget saved", "month", input.Month, "limit", input.LimitAmount.String())
	return b, nil
}
