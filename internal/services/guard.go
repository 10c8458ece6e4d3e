package services

import (
	"context"
	"errors"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/logger"
	"budgetdash/internal/models"
)

// sessionGuard drops the local session whenever the budget service rejects it.
type sessionGuard struct {
	sessions SessionManager
}

// check passes err through, invalidating the session first if err is UNAUTHENTICATED.
func (g sessionGuard) check(ctx context.Context, err error) error {
	if err != nil && errors.Is(err, apperrors.ErrUnauthenticated) {
		if ierr := g.sessions.Invalidate(ctx); ierr != nil {
			logger.Get().Errorw("failed to invalidate session", "error", ierr)
		}
	}
	return err
}

func parseMonth(month models.MonthKey) (models.MonthKey, error) {
	m, err := models.ParseMonth(string(month))
	if err != nil {
		return "", apperrors.WithFields(
			apperrors.WithMessage(apperrors.ErrValidation, "Month must be in YYYY-MM format."),
			map[string]string{"month": "Month must be in YYYY-MM format."},
		)
	}
	return m, nil
}
