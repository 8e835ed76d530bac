package handlers

import (
	"net/http"

	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the consolidated dashboard view.
type dashboardHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newDashboardHandler(ss portssvc.SummarySvcFacade) *dashboardHandler {
	return &dashboardHandler{summaryService: ss}
}

func registerDashboardRoutes(rg *gin.RouterGroup, ss portssvc.SummarySvcFacade) {
	h := newDashboardHandler(ss)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getDashboardSummary)
	}
}

// getDashboardSummary godoc
// @Summary Get the dashboard summary
// @Description Returns the full financial snapshot: capital, per-ledger totals, paid/remaining splits and record counts
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 503 {object} map[string]string "Store unavailable"
// @Failure 500 {object} map[string]string "Failed to compute dashboard summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getDashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.summaryService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Dashboard data not found", "Failed to compute dashboard summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}
