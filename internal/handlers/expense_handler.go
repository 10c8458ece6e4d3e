package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetdash/internal/models"
	"budgetdash/internal/pagination"
	"budgetdash/internal/services"
	"budgetdash/internal/validator"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ListExpenses lists a month's expenses, newest first.
// @Summary     List expenses
// @Description Get a paginated list of the month's expenses, newest first
// @Tags        expenses
// @Produce     json
// @Param       month     query string false "Month as YYYY-MM (default current month)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Session expired"
// @Failure     503 {object} ErrorResponse "Budget service unreachable"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, validator.Translate(err))
		return
	}

	resp, err := h.expenseService.ListExpenses(c.Request.Context(), monthQuery(c), page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateExpense records an expense.
// @Summary     Add expense
// @Description Record an expense. The month is derived from the date.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body models.NewExpense true "Expense details"
// @Success     201 {object} map[string]models.Expense "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Session expired"
// @Failure     503 {object} ErrorResponse "Budget service unreachable"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req models.NewExpense
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}
