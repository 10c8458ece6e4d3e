package services

import (
	"context"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"budgetdash/internal/logger"
	"budgetdash/internal/models"
	"budgetdash/internal/session"
	"budgetdash/internal/validator"
)

func init() {
	logger.Init("test")
	validator.Register()
}

// mockAPI implements BudgetAPI for testing.
type mockAPI struct {
	getBudgetFn     func(ctx context.Context, month models.MonthKey) (*models.Budget, error)
	setBudgetFn     func(ctx context.Context, month models.MonthKey, limit decimal.Decimal) (*models.Budget, error)
	getExpensesFn   func(ctx context.Context, month models.MonthKey) ([]models.Expense, error)
	createExpenseFn func(ctx context.Context, e models.Expense) (*models.Expense, error)
}

func (m *mockAPI) GetBudget(ctx context.Context, month models.MonthKey) (*models.Budget, error) {
	return m.getBudgetFn(ctx, month)
}

func (m *mockAPI) SetBudget(ctx context.Context, month models.MonthKey, limit decimal.Decimal) (*models.Budget, error) {
	return m.setBudgetFn(ctx, month, limit)
}

func (m *mockAPI) GetExpenses(ctx context.Context, month models.MonthKey) ([]models.Expense, error) {
	return m.getExpensesFn(ctx, month)
}

func (m *mockAPI) CreateExpense(ctx context.Context, e models.Expense) (*models.Expense, error) {
	return m.createExpenseFn(ctx, e)
}

// mockSessions implements SessionManager for testing.
type mockSessions struct {
	loginFn    func(ctx context.Context, creds models.Credentials) (session.Session, error)
	registerFn func(ctx context.Context, reg models.Registration) error
	currentFn  func(ctx context.Context) (session.Session, error)
	restoreFn  func(ctx context.Context) (session.Session, *models.Profile, error)
	logoutFn   func(ctx context.Context) error

	invalidated atomic.Int32
}

func (m *mockSessions) Login(ctx context.Context, creds models.Credentials) (session.Session, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockSessions) Register(ctx context.Context, reg models.Registration) error {
	return m.registerFn(ctx, reg)
}

func (m *mockSessions) Current(ctx context.Context) (session.Session, error) {
	return m.currentFn(ctx)
}

func (m *mockSessions) Restore(ctx context.Context) (session.Session, *models.Profile, error) {
	return m.restoreFn(ctx)
}

func (m *mockSessions) Invalidate(context.Context) error {
	m.invalidated.Add(1)
	return nil
}

func (m *mockSessions) Logout(ctx context.Context) error {
	return m.logoutFn(ctx)
}
