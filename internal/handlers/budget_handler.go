package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/models"
	"budgetdash/internal/services"
	"budgetdash/internal/validator"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudgetRequest represents the request payload for setting a budget. The
// same fields are accepted as query parameters.
type SetBudgetRequest struct {
	Month       string         `json:"month"`
	LimitAmount *models.Amount `json:"limitAmount"`
}

// GetBudget returns the budget for a month.
// @Summary     Get budget
// @Description Get the budget for a month. A month without a budget is not an error.
// @Tags        budget
// @Produce     json
// @Param       month query string false "Month as YYYY-MM (default current month)"
// @Success     200 {object} models.BudgetView "Budget"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Session expired"
// @Failure     503 {object} ErrorResponse "Budget service unreachable"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	view, err := h.budgetService.GetBudget(c.Request.Context(), monthQuery(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetBudget creates or replaces the limit for a month.
// @Summary     Set budget
// @Description Set the spending limit for a month. Query parameters take precedence over the body.
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       month       query string           false "Month as YYYY-MM (default current month)"
// @Param       limitAmount query number           false "Limit greater than zero"
// @Param       request     body  SetBudgetRequest false "Budget details"
// @Success     200 {object} map[string]models.Budget "Budget saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Session expired"
// @Failure     503 {object} ErrorResponse "Budget service unreachable"
// @Router      /budget [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, validator.Translate(err))
			return
		}
	}

	input := models.BudgetInput{Month: monthQuery(c)}
	if c.Query("month") == "" && req.Month != "" {
		input.Month = models.MonthKey(req.Month)
	}
	if q := c.Query("limitAmount"); q != "" {
		limit := models.AmountFromString(q)
		req.LimitAmount = &limit
	}
	if req.LimitAmount != nil {
		if !req.LimitAmount.Valid {
			msg := "Please enter a valid budget amount greater than zero."
			respondWithError(c, apperrors.WithFields(apperrors.WithMessage(apperrors.ErrValidation, msg), map[string]string{"limitAmount": msg}))
			return
		}
		input.LimitAmount = req.LimitAmount.Value
	}

	budget, err := h.budgetService.SetBudget(c.Request.Context(), input)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}
