package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// capitalHandler handles HTTP requests for the singleton capital record and
// its summary view.
type capitalHandler struct {
	capitalService portssvc.CapitalSvcFacade
	summaryService portssvc.SummarySvcFacade
}

func newCapitalHandler(cs portssvc.CapitalSvcFacade, ss portssvc.SummarySvcFacade) *capitalHandler {
	return &capitalHandler{
		capitalService: cs,
		summaryService: ss,
	}
}

// RegisterCapitalRoutes registers routes related to the capital record.
func RegisterCapitalRoutes(rg *gin.RouterGroup, cs portssvc.CapitalSvcFacade, ss portssvc.SummarySvcFacade) {
	h := newCapitalHandler(cs, ss)

	capital := rg.Group("/capital")
	{
		capital.GET("", h.getCapital)
		capital.POST("", h.setCapital)
		capital.POST("/lock", h.lockCapital)
		capital.GET("/summary", h.getCapitalSummary)
	}
}

// getCapital godoc
// @Summary Get the capital record
// @Description Retrieves the site's opening capital record
// @Tags capital
// @Produce  json
// @Success 200 {object} dto.CapitalResponse
// @Failure 404 {object} map[string]string "Capital not set"
// @Failure 500 {object} map[string]string "Failed to retrieve capital"
// @Router /capital [get]
func (h *capitalHandler) getCapital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	capital, err := h.capitalService.GetCapital(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Capital has not been set", "Failed to retrieve capital")
		return
	}

	c.JSON(http.StatusOK, dto.ToCapitalResponse(capital))
}

// setCapital godoc
// @Summary Set or update the capital record
// @Description Creates the capital record on first call, overwrites balance and date on later calls while unlocked
// @Tags capital
// @Accept  json
// @Produce  json
// @Param   capital body dto.SetCapitalRequest true "Capital details"
// @Success 200 {object} dto.CapitalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Capital is locked"
// @Failure 500 {object} map[string]string "Failed to set capital"
// @Router /capital [post]
func (h *capitalHandler) setCapital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetCapitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCapital", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	capital, err := h.capitalService.SetOrUpdateCapital(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Attempted to modify locked capital")
			c.JSON(http.StatusConflict, gin.H{"error": "Capital is locked and cannot be modified"})
			return
		}
		respondServiceError(c, logger, err, "Capital has not been set", "Failed to set capital")
		return
	}

	logger.Info("Capital set", slog.String("opening_balance", capital.OpeningBalance.String()))
	c.JSON(http.StatusOK, dto.ToCapitalResponse(capital))
}

// lockCapital godoc
// @Summary Lock the capital record
// @Description Makes the opening balance and date immutable; locking an already locked record is a no-op
// @Tags capital
// @Produce  json
// @Success 200 {object} dto.CapitalResponse
// @Failure 404 {object} map[string]string "Capital not set"
// @Failure 500 {object} map[string]string "Failed to lock capital"
// @Router /capital/lock [post]
func (h *capitalHandler) lockCapital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	capital, err := h.capitalService.LockCapital(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Capital has not been set", "Failed to lock capital")
		return
	}

	logger.Info("Capital locked")
	c.JSON(http.StatusOK, dto.ToCapitalResponse(capital))
}

// getCapitalSummary godoc
// @Summary Get the capital summary
// @Description Returns opening balance, total funding and combined available capital
// @Tags capital
// @Produce  json
// @Success 200 {object} dto.CapitalSummaryResponse
// @Failure 404 {object} map[string]string "Capital not set"
// @Failure 500 {object} map[string]string "Failed to compute capital summary"
// @Router /capital/summary [get]
func (h *capitalHandler) getCapitalSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.summaryService.GetCapitalSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Capital has not been set", "Failed to compute capital summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToCapitalSummaryResponse(summary))
}
