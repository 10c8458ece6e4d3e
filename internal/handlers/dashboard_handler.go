package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetdash/internal/models"
	"budgetdash/internal/services"
)

// DashboardHandler serves the month summary.
type DashboardHandler struct {
	viewport services.ViewportServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(viewport services.ViewportServicer) *DashboardHandler {
	return &DashboardHandler{viewport: viewport}
}

// GetDashboard selects a month and returns its summary.
// @Summary     Get dashboard
// @Description Select a month and return its reconciled summary. Without a month the current selection (or calendar month) is used. Inputs that could not be fetched are reported as notices.
// @Tags        dashboard
// @Produce     json
// @Param       month query string false "Month as YYYY-MM"
// @Success     200 {object} models.Dashboard "Summary"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Session expired"
// @Failure     409 {object} ErrorResponse "Superseded by a newer month selection"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.viewport.Show(c.Request.Context(), models.MonthKey(c.Query("month")))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
