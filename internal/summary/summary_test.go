package summary

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"budgetdash/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func amt(s string) models.Amount { return models.AmountFromString(s) }

func expense(id, category, amount, date string) models.Expense {
	return models.Expense{
		ID:          models.ID(id),
		Description: "expense " + id,
		Category:    models.Category(category),
		Amount:      amt(amount),
		Date:        date,
	}
}

func budget(limit, spent string) *models.Budget {
	return &models.Budget{Month: "2026-03", LimitAmount: amt(limit), SpentAmount: amt(spent)}
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s: expected %s, got %s", name, want, got)
	}
}

func TestComputeSpent(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assertDecimal(t, "spent", ComputeSpent(nil), "0")
	})

	t.Run("coerces bad amounts to zero", func(t *testing.T) {
		expenses := []models.Expense{
			expense("1", "Food", "10.25", "2026-03-01"),
			expense("2", "Food", "-4", "2026-03-01"),
			expense("3", "Food", "abc", "2026-03-01"),
			{ID: "4"},
			expense("5", "Food", "0.75", "2026-03-02"),
		}
		assertDecimal(t, "spent", ComputeSpent(expenses), "11")
	})
}

func TestComputeCategoryTotals(t *testing.T) {
	expenses := []models.Expense{
		expense("1", "Food", "100", "2026-03-01"),
		expense("2", "", "40", "2026-03-01"),
		expense("3", "Transport", "60", "2026-03-02"),
		expense("4", "Food", "25.5", "2026-03-03"),
		expense("5", "Housing", "0", "2026-03-03"),
	}

	totals := ComputeCategoryTotals(expenses)
	assertDecimal(t, "Food", totals["Food"], "125.5")
	assertDecimal(t, "Uncategorized", totals[models.Uncategorized], "40")
	assertDecimal(t, "Transport", totals["Transport"], "60")

	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}
	if !sum.Equal(ComputeSpent(expenses)) {
		t.Errorf("category totals %s should sum to spent %s", sum, ComputeSpent(expenses))
	}

	ranked := RankCategories(totals)
	if len(ranked) != 3 {
		t.Fatalf("expected zero totals to be dropped, got %+v", ranked)
	}
	order := []string{"Food", "Transport", models.Uncategorized}
	for i, name := range order {
		if ranked[i].Category != name {
			t.Errorf("rank %d: expected %s, got %s", i, name, ranked[i].Category)
		}
	}
}

func TestComputeTrend(t *testing.T) {
	expenses := []models.Expense{
		expense("1", "Food", "5", "2026-03-10"),
		expense("2", "Food", "7", "2026-03-02"),
		expense("3", "Food", "3", "unknown"),
		expense("4", "Food", "1", ""),
		expense("5", "Food", "2", "2026-03-10T18:00:00Z"),
	}

	trend := ComputeTrend(expenses)
	if len(trend) != 2 {
		t.Fatalf("expected 2 days, got %+v", trend)
	}
	if trend[0].Date != "2026-03-02" || trend[1].Date != "2026-03-10" {
		t.Errorf("trend not in ascending order: %+v", trend)
	}
	assertDecimal(t, "day 10", trend[1].Amount, "7")
	if !trend.Sufficient() {
		t.Error("two distinct days should be sufficient")
	}

	single := ComputeTrend(expenses[:1])
	if single.Sufficient() {
		t.Error("one day should signal insufficient data")
	}
	if len(ComputeTrend(nil)) != 0 {
		t.Error("no expenses should give an empty trend")
	}
}

func TestComputeRecent(t *testing.T) {
	expenses := []models.Expense{
		expense("a", "Food", "1", "2026-03-01"),
		expense("b", "Food", "1", "2026-03-05"),
		expense("c", "Food", "1", "bad"),
		expense("d", "Food", "1", "2026-03-05"),
		expense("e", "Food", "1", "2026-03-03"),
		expense("f", "Food", "1", "2026-03-04"),
		expense("g", "Food", "1", "2026-03-02"),
	}

	recent := ComputeRecent(expenses, 0)
	want := []models.ID{"b", "d", "f", "e", "g"}
	if len(recent) != len(want) {
		t.Fatalf("expected %d expenses, got %d", len(want), len(recent))
	}
	for i, id := range want {
		if recent[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, recent[i].ID)
		}
	}

	all := ComputeRecent(expenses, 10)
	if all[len(all)-1].ID != "c" {
		t.Errorf("undated expense should sort last, got %s", all[len(all)-1].ID)
	}
	if expenses[0].ID != "a" {
		t.Error("input must not be reordered")
	}
}

func TestClassify(t *testing.T) {
	limit := dec("1000")
	tests := []struct {
		spent string
		want  models.BudgetStatus
	}{
		{"0", models.StatusOnTrack},
		{"749.99", models.StatusOnTrack},
		{"750", models.StatusCaution},
		{"899.99", models.StatusCaution},
		{"900", models.StatusWarning},
		{"1000", models.StatusWarning},
		{"1000.01", models.StatusExceeded},
		{"5000", models.StatusExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.spent, func(t *testing.T) {
			spent := dec(tt.spent)
			got := Classify(PercentageUsed(spent, limit), limit, limit.Sub(spent))
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	if got := Classify(decimal.Zero, decimal.Zero, dec("-50")); got != models.StatusNoBudget {
		t.Errorf("zero limit should be no_budget, got %s", got)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	limit := dec("500")
	prev := -1
	for spent := int64(0); spent <= 800; spent += 5 {
		s := decimal.NewFromInt(spent)
		status := Classify(PercentageUsed(s, limit), limit, limit.Sub(s))
		if status == models.StatusNoBudget {
			t.Fatalf("no_budget with a positive limit at spent=%d", spent)
		}
		if status.Severity() < prev {
			t.Fatalf("status moved backward to %s at spent=%d", status, spent)
		}
		prev = status.Severity()
	}
}

func TestBuildScenarios(t *testing.T) {
	t.Run("on track", func(t *testing.T) {
		s := Build("2026-03", budget("5000", ""), []models.Expense{
			expense("1", "Food", "1000", "2026-03-01"),
			expense("2", "Transport", "500", "2026-03-02"),
		})
		assertDecimal(t, "spent", s.SpentAmount, "1500")
		assertDecimal(t, "remaining", s.RemainingAmount, "3500")
		assertDecimal(t, "percentage", s.PercentageUsed, "30")
		if s.Status != models.StatusOnTrack {
			t.Errorf("expected on_track, got %s", s.Status)
		}
	})

	t.Run("exceeded", func(t *testing.T) {
		s := Build("2026-03", budget("1000", ""), []models.Expense{
			expense("1", "Housing", "1200", "2026-03-01"),
		})
		assertDecimal(t, "spent", s.SpentAmount, "1200")
		assertDecimal(t, "remaining", s.RemainingAmount, "-200")
		assertDecimal(t, "overspent", s.OverspentAmount, "200")
		assertDecimal(t, "progress", s.ProgressPercent, "100")
		if s.Status != models.StatusExceeded {
			t.Errorf("expected exceeded, got %s", s.Status)
		}
		if s.StatusMessage != "Budget exceeded! Overspent by 200.00." {
			t.Errorf("unexpected message %q", s.StatusMessage)
		}
	})

	t.Run("no budget", func(t *testing.T) {
		s := Build("2026-03", nil, []models.Expense{expense("1", "Food", "50", "2026-03-01")})
		assertDecimal(t, "limit", s.LimitAmount, "0")
		assertDecimal(t, "percentage", s.PercentageUsed, "0")
		if s.Status != models.StatusNoBudget || s.HasBudget {
			t.Errorf("expected no_budget, got %s (hasBudget=%v)", s.Status, s.HasBudget)
		}
	})

	t.Run("zero backend spent falls back to expenses", func(t *testing.T) {
		s := Build("2026-03", budget("1000", "0"), []models.Expense{
			expense("1", "Food", "100", "2026-03-01"),
			expense("2", "Food", "200", "2026-03-02"),
		})
		assertDecimal(t, "spent", s.SpentAmount, "300")
		if s.SpentSource != models.SpentFromExpenses {
			t.Errorf("expected computed source, got %s", s.SpentSource)
		}
	})

	t.Run("positive backend spent wins", func(t *testing.T) {
		s := Build("2026-03", budget("1000", "450"), []models.Expense{
			expense("1", "Food", "100", "2026-03-01"),
		})
		assertDecimal(t, "spent", s.SpentAmount, "450")
		if s.SpentSource != models.SpentFromBackend {
			t.Errorf("expected backend source, got %s", s.SpentSource)
		}
	})

	t.Run("status follows the displayed percentage", func(t *testing.T) {
		tests := []struct {
			spent string
			pct   string
			want  models.BudgetStatus
		}{
			{"899.96", "90", models.StatusWarning},
			{"749.96", "75", models.StatusCaution},
			{"899.94", "89.99", models.StatusCaution},
		}
		for _, tt := range tests {
			s := Build("2026-03", budget("1000", tt.spent), nil)
			assertDecimal(t, "percentage "+tt.spent, s.PercentageUsed, tt.pct)
			if s.Status != tt.want {
				t.Errorf("spent %s: expected %s, got %s", tt.spent, tt.want, s.Status)
			}
		}
	})

	t.Run("invalid limit counts as no budget", func(t *testing.T) {
		s := Build("2026-03", budget("n/a", ""), nil)
		if s.Status != models.StatusNoBudget {
			t.Errorf("expected no_budget, got %s", s.Status)
		}
	})
}

func TestBuildIdempotent(t *testing.T) {
	b := budget("800", "0")
	expenses := []models.Expense{
		expense("1", "Food", "300", "2026-03-01"),
		expense("2", "Utilities", "320", "2026-03-04"),
	}

	first := Build("2026-03", b, expenses)
	second := Build("2026-03", b, expenses)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("build should be idempotent:\n%+v\n%+v", first, second)
	}
}

func TestMemo(t *testing.T) {
	var memo Memo
	b := budget("800", "")
	expenses := []models.Expense{expense("1", "Food", "300", "2026-03-01")}

	first := memo.Build("2026-03", b, expenses)
	again := memo.Build("2026-03", budget("800", ""), []models.Expense{expense("1", "Food", "300", "2026-03-01")})
	if reflect.ValueOf(first.CategoryTotals).Pointer() != reflect.ValueOf(again.CategoryTotals).Pointer() {
		t.Error("equal inputs should reuse the cached summary")
	}

	changed := memo.Build("2026-03", b, append(expenses, expense("2", "Food", "1", "2026-03-02")))
	assertDecimal(t, "spent", changed.SpentAmount, "301")

	other := memo.Build("2026-04", b, expenses)
	if other.Month != "2026-04" {
		t.Errorf("month change should recompute, got %s", other.Month)
	}
}
