package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"budgetdash/internal/models"
	"budgetdash/internal/storage"
	"budgetdash/internal/testutil"
)

func TestGoalPersistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := storage.NewStore(db)
	svc := NewGoalService(store)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		state, err := svc.GetGoal(ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "progress", state.ProgressPercentage, "0")
	})

	t.Run("save and reload", func(t *testing.T) {
		_, err := svc.SaveGoal(ctx, models.GoalInput{
			GoalAmount:  decimal.NewFromInt(1200),
			SavedAmount: decimal.NewFromInt(200),
		})
		testutil.AssertNoError(t, err)

		raw, ok, err := store.Get(ctx, models.SavingsGoalKey)
		testutil.AssertNoError(t, err)
		if !ok || raw != `{"goalAmount":1200,"savedAmount":200}` {
			t.Errorf("unexpected stored shape %q", raw)
		}

		state, err := svc.GetGoal(ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "goal", state.GoalAmount, "1200")
		testutil.AssertDecimal(t, "progress", state.ProgressPercentage, "16.67")
	})

	t.Run("string values from older clients", func(t *testing.T) {
		testutil.AssertNoError(t, store.Set(ctx, models.SavingsGoalKey, `{"goalAmount":"500","savedAmount":"750"}`))
		state, err := svc.GetGoal(ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "progress", state.ProgressPercentage, "100")
	})

	t.Run("unreadable entry is an empty goal", func(t *testing.T) {
		testutil.AssertNoError(t, store.Set(ctx, models.SavingsGoalKey, `not json`))
		state, err := svc.GetGoal(ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "goal", state.GoalAmount, "0")
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		_, err := svc.SaveGoal(ctx, models.GoalInput{GoalAmount: decimal.NewFromInt(-1)})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestCalculateGoal(t *testing.T) {
	svc := NewGoalService(nil)

	state, err := svc.CalculateGoal(models.GoalInput{
		GoalAmount:   decimal.NewFromInt(1200),
		SavedAmount:  decimal.NewFromInt(200),
		MonthsToSave: 12,
	})
	testutil.AssertNoError(t, err)
	testutil.AssertDecimal(t, "monthly", state.MonthlyContributionRequired, "100")
	testutil.AssertDecimal(t, "progress", state.ProgressPercentage, "16.67")

	_, err = svc.CalculateGoal(models.GoalInput{GoalAmount: decimal.Zero, MonthsToSave: 12})
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")
}
