package services

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/goal"
	"budgetdash/internal/logger"
	"budgetdash/internal/models"
	"budgetdash/internal/storage"
)

// goalService persists the savings goal in the local store.
type goalService struct {
	store storage.Store
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(store storage.Store) GoalServicer {
	return &goalService{store: store}
}

// GetGoal loads the saved goal. A missing or unreadable entry is an empty goal.
func (s *goalService) GetGoal(ctx context.Context) (*models.GoalState, error) {
	raw, ok, err := s.store.Get(ctx, models.SavingsGoalKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stored models.StoredGoal
	if ok {
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			logger.Get().Warnw("ignoring unreadable savings goal", "error", err)
			stored = models.StoredGoal{}
		}
	}
	return stateOf(stored.GoalAmount.OrZero(), stored.SavedAmount.OrZero()), nil
}

// SaveGoal stores the goal and saved amounts. Neither may be negative.
func (s *goalService) SaveGoal(ctx context.Context, input models.GoalInput) (*models.GoalState, error) {
	if input.GoalAmount.IsNegative() {
		return nil, fieldError("goalAmount", "Goal amount cannot be negative.")
	}
	if input.SavedAmount.IsNegative() {
		return nil, fieldError("savedAmount", "Saved amount cannot be negative.")
	}

	data, err := json.Marshal(models.StoredGoal{
		GoalAmount:  models.NewAmount(input.GoalAmount),
		SavedAmount: models.NewAmount(input.SavedAmount),
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.store.Set(ctx, models.SavingsGoalKey, string(data)); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stateOf(input.GoalAmount, input.SavedAmount), nil
}

// CalculateGoal computes the monthly contribution for the input. Nothing is saved.
func (s *goalService) CalculateGoal(input models.GoalInput) (*models.GoalState, error) {
	return goal.Calculate(input.GoalAmount, input.SavedAmount, input.MonthsToSave)
}

func stateOf(goalAmount, savedAmount decimal.Decimal) *models.GoalState {
	return &models.GoalState{
		GoalAmount:         goalAmount,
		SavedAmount:        savedAmount,
		ProgressPercentage: goal.Progress(goalAmount, savedAmount).Round(2),
	}
}

func fieldError(field, message string) error {
	return apperrors.WithFields(apperrors.WithMessage(apperrors.ErrValidation, message), map[string]string{field: message})
}
