package services

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/logger"
	"budgetdash/internal/models"
	"budgetdash/internal/summary"
)

// Inputs is what the budget service returned for one month. A nil Budget
// means no budget is set; failed fetches are listed in Notices.
type Inputs struct {
	Month    models.MonthKey
	Budget   *models.Budget
	Expenses []models.Expense
	Notices  []models.Notice
}

// unreachable reports whether a notice was caused by the budget service
// being offline.
func (in *Inputs) unreachable() bool {
	for _, n := range in.Notices {
		if n.Code == apperrors.ErrNetworkUnavailable.Code {
			return true
		}
	}
	return false
}

// dashboardService loads and reconciles a month's budget and expenses.
type dashboardService struct {
	sessionGuard
	api BudgetAPI
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(api BudgetAPI, sessions SessionManager) DashboardServicer {
	return &dashboardService{sessionGuard: sessionGuard{sessions: sessions}, api: api}
}

// Fetch retrieves the budget and expenses for month concurrently. A missing
// budget is not a failure. An UNAUTHENTICATED reply from either fetch ends the
// load; any other failure becomes a Notice and the input defaults to empty.
func (s *dashboardService) Fetch(ctx context.Context, month models.MonthKey) (*Inputs, error) {
	month, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	in := &Inputs{Month: month, Expenses: []models.Expense{}}
	var mu sync.Mutex
	degrade := func(source string, err error) error {
		if errors.Is(err, apperrors.ErrUnauthenticated) || errors.Is(err, context.Canceled) {
			return err
		}
		logger.Get().Warnw("dashboard input unavailable", "source", source, "month", month, "error", err)
		notice := models.Notice{Source: source, Code: apperrors.CodeOf(err), Message: err.Error()}
		if notice.Code == "" {
			notice.Code = apperrors.ErrInternalServer.Code
		}
		mu.Lock()
		in.Notices = append(in.Notices, notice)
		mu.Unlock()
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.api.GetBudget(gctx, month)
		switch {
		case err == nil:
			in.Budget = b
		case errors.Is(err, apperrors.ErrNotFound):
			in.Budget = nil
		default:
			return degrade("budget", err)
		}
		return nil
	})
	g.Go(func() error {
		expenses, err := s.api.GetExpenses(gctx, month)
		if err != nil {
			return degrade("expenses", err)
		}
		if expenses != nil {
			in.Expenses = expenses
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, s.check(ctx, err)
	}
	return in, nil
}

// Load fetches the month and builds its Summary.
func (s *dashboardService) Load(ctx context.Context, month models.MonthKey) (*models.Dashboard, error) {
	in, err := s.Fetch(ctx, month)
	if err != nil {
		return nil, err
	}
	return &models.Dashboard{
		Summary: summary.Build(in.Month, in.Budget, in.Expenses),
		Notices: in.Notices,
		Partial: len(in.Notices) > 0,
	}, nil
}
