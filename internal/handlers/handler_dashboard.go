package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
)

// dashboardHandler serves the aggregated company summary. The company comes
// from the caller's last selected company rather than the path.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("", h.getSummary)
}

// getSummary godoc
// @Summary Get the dashboard summary for the active company
// @Description Totals by account type, invoice count, expense total and recent journal entries.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse "No company selected"
// @Failure 403 {object} ErrorResponse
// @Router /dashboard [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), companyID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
