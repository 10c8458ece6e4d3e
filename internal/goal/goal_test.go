package goal

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "budgetdash/internal/errors"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculate(t *testing.T) {
	state, err := Calculate(dec("1200"), dec("200"), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.MonthlyContributionRequired.Equal(dec("100")) {
		t.Errorf("expected 100.00 per month, got %s", state.MonthlyContributionRequired)
	}
	if !state.ProgressPercentage.Equal(dec("16.67")) {
		t.Errorf("expected 16.67%%, got %s", state.ProgressPercentage)
	}
	if state.MonthsToSave != 12 {
		t.Errorf("expected 12 months, got %d", state.MonthsToSave)
	}
}

func TestCalculateDefaultsMonths(t *testing.T) {
	for _, months := range []int{0, -3} {
		state, err := Calculate(dec("600"), decimal.Zero, months)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.MonthsToSave != 1 || !state.MonthlyContributionRequired.Equal(dec("600")) {
			t.Errorf("months=%d: expected one month of 600, got %d / %s", months, state.MonthsToSave, state.MonthlyContributionRequired)
		}
	}
}

func TestCalculateRejectsNonPositiveGoal(t *testing.T) {
	for _, g := range []string{"0", "-10"} {
		_, err := Calculate(dec(g), dec("10"), 3)
		if apperrors.CodeOf(err) != "VALIDATION_ERROR" {
			t.Fatalf("goal=%s: expected VALIDATION_ERROR, got %v", g, err)
		}
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Fields["goalAmount"] == "" {
			t.Errorf("goal=%s: expected goalAmount field message, got %+v", g, appErr)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		goal, saved, want string
	}{
		{"1000", "250", "25"},
		{"1000", "1500", "100"},
		{"0", "50", "0"},
		{"-5", "50", "0"},
		{"1000", "-20", "0"},
	}
	for _, tt := range tests {
		if got := Progress(dec(tt.goal), dec(tt.saved)); !got.Equal(dec(tt.want)) {
			t.Errorf("Progress(%s, %s) = %s, want %s", tt.goal, tt.saved, got, tt.want)
		}
	}
}
