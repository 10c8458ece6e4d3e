package services

import (
	"context"
	"strings"

	"budgetdash/internal/logger"
	"budgetdash/internal/models"
	"budgetdash/internal/pagination"
	"budgetdash/internal/summary"
	"budgetdash/internal/validator"
)

// expenseService handles expense-related operations.
type expenseService struct {
	sessionGuard
	api BudgetAPI
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(api BudgetAPI, sessions SessionManager) ExpenseServicer {
	return &expenseService{sessionGuard: sessionGuard{sessions: sessions}, api: api}
}

// ListExpenses returns one page of the month's expenses, newest first.
func (s *expenseService) ListExpenses(ctx context.Context, month models.MonthKey, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	month, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	expenses, err := s.api.GetExpenses(ctx, month)
	if err != nil {
		return nil, s.check(ctx, err)
	}

	resp := pagination.Slice(summary.ComputeRecent(expenses, len(expenses)), page)
	return &resp, nil
}

// CreateExpense validates and records an expense. Invalid input is never
// sent to the budget service. The month is derived from the date.
func (s *expenseService) CreateExpense(ctx context.Context, input models.NewExpense) (*models.Expense, error) {
	input.Description = strings.TrimSpace(input.Description)
	input.Date = strings.TrimSpace(input.Date)
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	day, _ := models.ParseDay(input.Date)
	e := models.Expense{
		Description: input.Description,
		Category:    input.Category,
		Amount:      input.Amount,
		Date:        models.FormatDay(day),
		Month:       models.MonthOf(day),
	}

	created, err := s.api.CreateExpense(ctx, e)
	if err != nil {
		return nil, s.check(ctx, err)
	}

	logger.Get().Infow("expense recorded", "month", e.Month, "category", e.Category, "amount", input.Amount.Value.String())
	return created, nil
}
