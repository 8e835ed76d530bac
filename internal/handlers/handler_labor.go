package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pieceworkHandler handles HTTP requests for the piecework labor ledger.
type pieceworkHandler struct {
	pieceworkService portssvc.PieceworkSvcFacade
}

func newPieceworkHandler(ps portssvc.PieceworkSvcFacade) *pieceworkHandler {
	return &pieceworkHandler{pieceworkService: ps}
}

func registerPieceworkRoutes(rg *gin.RouterGroup, ps portssvc.PieceworkSvcFacade) {
	h := newPieceworkHandler(ps)

	piecework := rg.Group("/piecework")
	{
		piecework.POST("", h.createPiecework)
		piecework.GET("", h.listPiecework)
		piecework.GET("/:pieceworkID", h.getPiecework)
		piecework.PUT("/:pieceworkID", h.updatePiecework)
		piecework.DELETE("/:pieceworkID", h.deletePiecework)
	}
}

// createPiecework godoc
// @Summary Create a piecework entry
// @Description Records labor paid per unit of output; totalPrice and remainingAmount are derived server-side
// @Tags piecework
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreatePieceworkRequest true "Piecework details"
// @Success 201 {object} dto.PieceworkResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown worker"
// @Failure 500 {object} map[string]string "Failed to create piecework entry"
// @Router /piecework [post]
func (h *pieceworkHandler) createPiecework(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePieceworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePiecework", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.pieceworkService.CreatePiecework(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Piecework entry not found", "Failed to create piecework entry")
		return
	}

	logger.Info("Piecework entry created", slog.String("piecework_id", created.PieceworkID))
	c.JSON(http.StatusCreated, dto.ToPieceworkResponse(created))
}

// listPiecework godoc
// @Summary List piecework entries
// @Tags piecework
// @Produce  json
// @Success 200 {array} dto.PieceworkResponse
// @Failure 500 {object} map[string]string "Failed to list piecework entries"
// @Router /piecework [get]
func (h *pieceworkHandler) listPiecework(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.pieceworkService.ListPiecework(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Piecework entries not found", "Failed to list piecework entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPieceworkResponse(entries))
}

// getPiecework godoc
// @Summary Get a piecework entry
// @Tags piecework
// @Produce  json
// @Param   pieceworkID path string true "Piecework ID"
// @Success 200 {object} dto.PieceworkResponse
// @Failure 404 {object} map[string]string "Piecework entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve piecework entry"
// @Router /piecework/{pieceworkID} [get]
func (h *pieceworkHandler) getPiecework(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pieceworkID := c.Param("pieceworkID")

	entry, err := h.pieceworkService.GetPieceworkByID(c.Request.Context(), pieceworkID)
	if err != nil {
		respondServiceError(c, logger, err, "Piecework entry not found", "Failed to retrieve piecework entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToPieceworkResponse(entry))
}

// updatePiecework godoc
// @Summary Update a piecework entry
// @Tags piecework
// @Accept  json
// @Produce  json
// @Param   pieceworkID path string true "Piecework ID"
// @Param   entry body dto.CreatePieceworkRequest true "Piecework details"
// @Success 200 {object} dto.PieceworkResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown worker"
// @Failure 404 {object} map[string]string "Piecework entry not found"
// @Failure 500 {object} map[string]string "Failed to update piecework entry"
// @Router /piecework/{pieceworkID} [put]
func (h *pieceworkHandler) updatePiecework(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pieceworkID := c.Param("pieceworkID")

	var req dto.CreatePieceworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePiecework", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.pieceworkService.UpdatePiecework(c.Request.Context(), pieceworkID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Piecework entry not found", "Failed to update piecework entry")
		return
	}

	logger.Info("Piecework entry updated", slog.String("piecework_id", pieceworkID))
	c.JSON(http.StatusOK, dto.ToPieceworkResponse(updated))
}

// deletePiecework godoc
// @Summary Delete a piecework entry
// @Tags piecework
// @Produce  json
// @Param   pieceworkID path string true "Piecework ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Piecework entry not found"
// @Failure 500 {object} map[string]string "Failed to delete piecework entry"
// @Router /piecework/{pieceworkID} [delete]
func (h *pieceworkHandler) deletePiecework(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pieceworkID := c.Param("pieceworkID")

	if err := h.pieceworkService.DeletePiecework(c.Request.Context(), pieceworkID); err != nil {
		respondServiceError(c, logger, err, "Piecework entry not found", "Failed to delete piecework entry")
		return
	}

	logger.Info("Piecework entry deleted", slog.String("piecework_id", pieceworkID))
	c.Status(http.StatusNoContent)
}

// dailyWageHandler handles HTTP requests for the daily-wage labor ledger.
type dailyWageHandler struct {
	dailyWageService portssvc.DailyWageSvcFacade
}

func newDailyWageHandler(ds portssvc.DailyWageSvcFacade) *dailyWageHandler {
	return &dailyWageHandler{dailyWageService: ds}
}

func registerDailyWageRoutes(rg *gin.RouterGroup, ds portssvc.DailyWageSvcFacade) {
	h := newDailyWageHandler(ds)

	dailyWages := rg.Group("/dailywages")
	{
		dailyWages.POST("", h.createDailyWage)
		dailyWages.GET("", h.listDailyWages)
		dailyWages.GET("/:dailyWageID", h.getDailyWage)
		dailyWages.PUT("/:dailyWageID", h.updateDailyWage)
		dailyWages.DELETE("/:dailyWageID", h.deleteDailyWage)
	}
}

// createDailyWage godoc
// @Summary Create a daily-wage entry
// @Description Records labor paid per day worked; totalPrice and remainingAmount are derived server-side
// @Tags dailywages
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateDailyWageRequest true "Daily wage details"
// @Success 201 {object} dto.DailyWageResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown worker"
// @Failure 500 {object} map[string]string "Failed to create daily wage entry"
// @Router /dailywages [post]
func (h *dailyWageHandler) createDailyWage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDailyWageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDailyWage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.dailyWageService.CreateDailyWage(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Daily wage entry not found", "Failed to create daily wage entry")
		return
	}

	logger.Info("Daily wage entry created", slog.String("daily_wage_id", created.DailyWageID))
	c.JSON(http.StatusCreated, dto.ToDailyWageResponse(created))
}

// listDailyWages godoc
// @Summary List daily-wage entries
// @Tags dailywages
// @Produce  json
// @Success 200 {array} dto.DailyWageResponse
// @Failure 500 {object} map[string]string "Failed to list daily wage entries"
// @Router /dailywages [get]
func (h *dailyWageHandler) listDailyWages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.dailyWageService.ListDailyWages(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Daily wage entries not found", "Failed to list daily wage entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDailyWageResponse(entries))
}

// getDailyWage godoc
// @Summary Get a daily-wage entry
// @Tags dailywages
// @Produce  json
// @Param   dailyWageID path string true "Daily wage ID"
// @Success 200 {object} dto.DailyWageResponse
// @Failure 404 {object} map[string]string "Daily wage entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve daily wage entry"
// @Router /dailywages/{dailyWageID} [get]
func (h *dailyWageHandler) getDailyWage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dailyWageID := c.Param("dailyWageID")

	entry, err := h.dailyWageService.GetDailyWageByID(c.Request.Context(), dailyWageID)
	if err != nil {
		respondServiceError(c, logger, err, "Daily wage entry not found", "Failed to retrieve daily wage entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyWageResponse(entry))
}

// updateDailyWage godoc
// @Summary Update a daily-wage entry
// @Tags dailywages
// @Accept  json
// @Produce  json
// @Param   dailyWageID path string true "Daily wage ID"
// @Param   entry body dto.CreateDailyWageRequest true "Daily wage details"
// @Success 200 {object} dto.DailyWageResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown worker"
// @Failure 404 {object} map[string]string "Daily wage entry not found"
// @Failure 500 {object} map[string]string "Failed to update daily wage entry"
// @Router /dailywages/{dailyWageID} [put]
func (h *dailyWageHandler) updateDailyWage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dailyWageID := c.Param("dailyWageID")

	var req dto.CreateDailyWageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDailyWage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.dailyWageService.UpdateDailyWage(c.Request.Context(), dailyWageID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Daily wage entry not found", "Failed to update daily wage entry")
		return
	}

	logger.Info("Daily wage entry updated", slog.String("daily_wage_id", dailyWageID))
	c.JSON(http.StatusOK, dto.ToDailyWageResponse(updated))
}

// deleteDailyWage godoc
// @Summary Delete a daily-wage entry
// @Tags dailywages
// @Produce  json
// @Param   dailyWageID path string true "Daily wage ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Daily wage entry not found"
// @Failure 500 {object} map[string]string "Failed to delete daily wage entry"
// @Router /dailywages/{dailyWageID} [delete]
func (h *dailyWageHandler) deleteDailyWage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dailyWageID := c.Param("dailyWageID")

	if err := h.dailyWageService.DeleteDailyWage(c.Request.Context(), dailyWageID); err != nil {
		respondServiceError(c, logger, err, "Daily wage entry not found", "Failed to delete daily wage entry")
		return
	}

	logger.Info("Daily wage entry deleted", slog.String("daily_wage_id", dailyWageID))
	c.Status(http.StatusNoContent)
}
