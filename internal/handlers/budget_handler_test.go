package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/models"
)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectSession("alice"))
	auth.GET("/budget", handler.GetBudget)
	auth.POST("/budget", handler.SetBudget)
	return r
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("defaults to the current month", func(t *testing.T) {
		defer func(orig func() time.Time) { now = orig }(now)
		now = func() time.Time { return time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC) }

		var asked models.MonthKey
		svc := &mockBudgetService{getBudgetFn: func(_ context.Context, month models.MonthKey) (*models.BudgetView, error) {
			asked = month
			return &models.BudgetView{Month: month}, nil
		}}
		rec := doRequest(setupBudgetRouter(NewBudgetHandler(svc)), "GET", "/budget", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if asked != "2026-10" {
			t.Errorf("expected 2026-10, got %s", asked)
		}
		if parseJSON(t, rec)["hasBudget"] != false {
			t.Error("expected hasBudget false")
		}
	})

	t.Run("returns 400 on invalid month", func(t *testing.T) {
		svc := &mockBudgetService{getBudgetFn: func(context.Context, models.MonthKey) (*models.BudgetView, error) {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "Month must be in YYYY-MM format.")
		}}
		rec := doRequest(setupBudgetRouter(NewBudgetHandler(svc)), "GET", "/budget?month=March", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_SetBudget(t *testing.T) {
	var got models.BudgetInput
	svc := &mockBudgetService{setBudgetFn: func(_ context.Context, input models.BudgetInput) (*models.Budget, error) {
		got = input
		return &models.Budget{Month: input.Month, LimitAmount: models.NewAmount(input.LimitAmount)}, nil
	}}
	r := setupBudgetRouter(NewBudgetHandler(svc))

	t.Run("query parameters", func(t *testing.T) {
		rec := doRequest(r, "POST", "/budget?month=2026-03&limitAmount=5000", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Month != "2026-03" || got.LimitAmount.String() != "5000" {
			t.Errorf("unexpected input %+v", got)
		}
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["limitAmount"].(float64) != 5000 {
			t.Errorf("unexpected budget %v", budget)
		}
	})

	t.Run("json body", func(t *testing.T) {
		rec := doRequest(r, "POST", "/budget", `{"month":"2026-04","limitAmount":1250.75}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Month != "2026-04" || got.LimitAmount.String() != "1250.75" {
			t.Errorf("unexpected input %+v", got)
		}
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		for _, req := range []struct{ target, body string }{
			{"/budget?month=2026-03&limitAmount=lots", ""},
			{"/budget", `{"month":"2026-03","limitAmount":"lots"}`},
		} {
			rec := doRequest(r, "POST", req.target, req.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", req.target, rec.Code)
			}
			fields := errorFields(t, parseJSON(t, rec))
			if fields["limitAmount"] != "Please enter a valid budget amount greater than zero." {
				t.Errorf("%s: unexpected fields %v", req.target, fields)
			}
		}
	})
}
