// Package app assembles the budgetdash object graph from configuration.
package app

import (
	"fmt"

	"budgetdash/internal/client"
	"budgetdash/internal/config"
	"budgetdash/internal/database"
	"budgetdash/internal/handlers"
	"budgetdash/internal/services"
	"budgetdash/internal/session"
	"budgetdash/internal/storage"
)

// App holds the services shared by the HTTP server and the CLI.
type App struct {
	Sessions  *session.Manager
	Auth      services.AuthServicer
	Dashboard services.DashboardServicer
	Viewport  services.ViewportServicer
	Budgets   services.BudgetServicer
	Expenses  services.ExpenseServicer
	Goals     services.GoalServicer

	db *database.Manager
}

// New opens the local store, applies migrations and wires the services
// against the budget service at cfg.BudgetAPIURL.
func New(cfg *config.Config) (*App, error) {
	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		_ = dbManager.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	a, err := Wire(storage.NewStore(dbManager.DB()), client.NewBudgetClient(cfg.BudgetAPIURL, client.NewHTTPClient(cfg.RequestTimeout)), cfg.SessionSecret)
	if err != nil {
		_ = dbManager.Close()
		return nil, err
	}
	a.db = dbManager
	return a, nil
}

// Wire builds the services on an existing store and budget client.
func Wire(store storage.Store, api *client.BudgetClient, secret string) (*App, error) {
	sessions, err := session.NewManager(store, api, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	dashboard := services.NewDashboardService(api, sessions)
	return &App{
		Sessions:  sessions,
		Auth:      services.NewAuthService(sessions),
		Dashboard: dashboard,
		Viewport:  services.NewViewport(dashboard),
		Budgets:   services.NewBudgetService(api, sessions),
		Expenses:  services.NewExpenseService(api, sessions),
		Goals:     services.NewGoalService(store),
	}, nil
}

// Handlers returns the HTTP handlers for the services.
func (a *App) Handlers() handlers.Handlers {
	return handlers.Handlers{
		Auth:      handlers.NewAuthHandler(a.Auth),
		Dashboard: handlers.NewDashboardHandler(a.Viewport),
		Budget:    handlers.NewBudgetHandler(a.Budgets),
		Expense:   handlers.NewExpenseHandler(a.Expenses),
		Goal:      handlers.NewGoalHandler(a.Goals),
	}
}

// Close releases the local store.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
