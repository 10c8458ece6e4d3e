package services

import (
	"context"

	"github.com/shopspring/decimal"

	"budgetdash/internal/models"
	"budgetdash/internal/pagination"
	"budgetdash/internal/session"
)

// BudgetAPI is the part of the budget service the services call. Every
// method authenticates with the Session carried by ctx.
type BudgetAPI interface {
	GetBudget(ctx context.Context, month models.MonthKey) (*models.Budget, error)
	SetBudget(ctx context.Context, month models.MonthKey, limit decimal.Decimal) (*models.Budget, error)
	GetExpenses(ctx context.Context, month models.MonthKey) ([]models.Expense, error)
	CreateExpense(ctx context.Context, e models.Expense) (*models.Expense, error)
}

// SessionManager owns the session token.
type SessionManager interface {
	Login(ctx context.Context, creds models.Credentials) (session.Session, error)
	Register(ctx context.Context, reg models.Registration) error
	Current(ctx context.Context) (session.Session, error)
	Restore(ctx context.Context) (session.Session, *models.Profile, error)
	Invalidate(ctx context.Context) error
	Logout(ctx context.Context) error
}

// AuthServicer defines the contract for session-related operations.
type AuthServicer interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthStatus, error)
	Register(ctx context.Context, reg models.Registration) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) *models.AuthStatus
	Profile(ctx context.Context) (*models.Profile, error)
}

// DashboardServicer defines the contract for loading a month's Summary.
type DashboardServicer interface {
	Fetch(ctx context.Context, month models.MonthKey) (*Inputs, error)
	Load(ctx context.Context, month models.MonthKey) (*models.Dashboard, error)
}

// ViewportServicer defines the contract for the selected-month view.
type ViewportServicer interface {
	Show(ctx context.Context, month models.MonthKey) (*models.Dashboard, error)
	Current() (*models.Dashboard, bool)
	Selected() models.MonthKey
}

// BudgetServicer defines the contract for budget operations.
type BudgetServicer interface {
	GetBudget(ctx context.Context, month models.MonthKey) (*models.BudgetView, error)
	SetBudget(ctx context.Context, input models.BudgetInput) (*models.Budget, error)
}

// ExpenseServicer defines the contract for expense operations.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context, month models.MonthKey, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	CreateExpense(ctx context.Context, input models.NewExpense) (*models.Expense, error)
}

// GoalServicer defines the contract for the savings goal.
type GoalServicer interface {
	GetGoal(ctx context.Context) (*models.GoalState, error)
	SaveGoal(ctx context.Context, input models.GoalInput) (*models.GoalState, error)
	CalculateGoal(input models.GoalInput) (*models.GoalState, error)
}
