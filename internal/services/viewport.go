package services

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/models"
	"budgetdash/internal/summary"
)

// viewport is the selected-month view. Selecting a month while a previous
// selection is still loading supersedes it: only the latest selection's
// result is applied.
type viewport struct {
	dashboard DashboardServicer
	memo      summary.Memo
	now       func() time.Time

	mu         sync.Mutex
	generation uint64
	selected   models.MonthKey
	current    *models.Dashboard
}

// NewViewport creates a new ViewportServicer.
func NewViewport(dashboard DashboardServicer) ViewportServicer {
	return &viewport{dashboard: dashboard, now: time.Now}
}

// Show selects month and loads it. An empty month keeps the current
// selection, or the calendar month on first use. If another Show starts
// before this one finishes, the result is discarded with SUPERSEDED.
func (v *viewport) Show(ctx context.Context, month models.MonthKey) (*models.Dashboard, error) {
	v.mu.Lock()
	if month == "" {
		month = v.selected
	}
	if month == "" {
		month = models.CurrentMonth(v.now())
	}
	month, err := parseMonth(month)
	if err != nil {
		v.mu.Unlock()
		return nil, err
	}
	v.generation++
	gen := v.generation
	v.selected = month
	v.mu.Unlock()

	in, err := v.dashboard.Fetch(ctx, month)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		return nil, apperrors.ErrSuperseded
	}
	if err != nil {
		// The account is gone; nothing shown for it stays visible.
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			v.current = nil
			v.memo.Reset()
		}
		return nil, err
	}

	// Offline: keep what was shown for this month rather than blanking it.
	if in.unreachable() && v.current != nil && v.current.Summary.Month == in.Month {
		kept := *v.current
		kept.Notices = in.Notices
		kept.Partial = true
		kept.Stale = true
		v.current = &kept
		return &kept, nil
	}

	d := &models.Dashboard{
		Summary: v.memo.Build(in.Month, in.Budget, in.Expenses),
		Notices: in.Notices,
		Partial: len(in.Notices) > 0,
	}
	v.current = d
	return d, nil
}

// Current returns the last applied view.
func (v *viewport) Current() (*models.Dashboard, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.current == nil {
		return nil, false
	}
	d := *v.current
	return &d, true
}

// Selected returns the selected month, which may still be loading.
func (v *viewport) Selected() models.MonthKey {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}
