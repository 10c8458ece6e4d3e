package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetdash/internal/models"
	"budgetdash/internal/services"
)

// GoalHandler handles the savings goal.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// GetGoal returns the saved goal.
// @Summary     Get savings goal
// @Tags        goal
// @Produce     json
// @Success     200 {object} map[string]models.GoalState "Goal"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goal [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	state, err := h.goalService.GetGoal(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": state})
}

// SaveGoal stores the goal and saved amounts.
// @Summary     Save savings goal
// @Tags        goal
// @Accept      json
// @Produce     json
// @Param       request body models.GoalInput true "Goal"
// @Success     200 {object} map[string]models.GoalState "Goal saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /goal [put]
func (h *GoalHandler) SaveGoal(c *gin.Context) {
	var req models.GoalInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.goalService.SaveGoal(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": state})
}

// CalculateGoal computes the monthly contribution needed to reach a goal.
// @Summary     Calculate savings plan
// @Description Compute progress and the monthly contribution. Months default to 1. Nothing is saved.
// @Tags        goal
// @Accept      json
// @Produce     json
// @Param       request body models.GoalInput true "Goal and months to save"
// @Success     200 {object} map[string]models.GoalState "Calculation"
// @Failure     400 {object} ErrorResponse "Goal amount not positive"
// @Router      /goal/calculate [post]
func (h *GoalHandler) CalculateGoal(c *gin.Context) {
	var req models.GoalInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.goalService.CalculateGoal(req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": state})
}
