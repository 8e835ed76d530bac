package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fundingHandler handles HTTP requests for the funding ledger.
type fundingHandler struct {
	fundingService portssvc.FundingSvcFacade
}

func newFundingHandler(fs portssvc.FundingSvcFacade) *fundingHandler {
	return &fundingHandler{fundingService: fs}
}

func registerFundingRoutes(rg *gin.RouterGroup, fs portssvc.FundingSvcFacade) {
	h := newFundingHandler(fs)

	funding := rg.Group("/funding")
	{
		funding.POST("", h.createFunding)
		funding.GET("", h.listFunding)
		funding.GET("/:fundingID", h.getFunding)
		funding.PUT("/:fundingID", h.updateFunding)
		funding.DELETE("/:fundingID", h.deleteFunding)
	}
}

// createFunding godoc
// @Summary Create a funding entry
// @Description Records additional money injected into the site budget
// @Tags funding
// @Accept  json
// @Produce  json
// @Param   funding body dto.CreateFundingRequest true "Funding details"
// @Success 201 {object} dto.FundingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create funding entry"
// @Router /funding [post]
func (h *fundingHandler) createFunding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFunding", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.fundingService.CreateFunding(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Funding entry not found", "Failed to create funding entry")
		return
	}

	logger.Info("Funding entry created", slog.String("funding_id", created.FundingID))
	c.JSON(http.StatusCreated, dto.ToFundingResponse(created))
}

// listFunding godoc
// @Summary List funding entries
// @Tags funding
// @Produce  json
// @Success 200 {array} dto.FundingResponse
// @Failure 500 {object} map[string]string "Failed to list funding entries"
// @Router /funding [get]
func (h *fundingHandler) listFunding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.fundingService.ListFunding(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Funding entries not found", "Failed to list funding entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFundingResponse(entries))
}

// getFunding godoc
// @Summary Get a funding entry
// @Tags funding
// @Produce  json
// @Param   fundingID path string true "Funding ID"
// @Success 200 {object} dto.FundingResponse
// @Failure 404 {object} map[string]string "Funding entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve funding entry"
// @Router /funding/{fundingID} [get]
func (h *fundingHandler) getFunding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundingID := c.Param("fundingID")

	entry, err := h.fundingService.GetFundingByID(c.Request.Context(), fundingID)
	if err != nil {
		respondServiceError(c, logger, err, "Funding entry not found", "Failed to retrieve funding entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToFundingResponse(entry))
}

// updateFunding godoc
// @Summary Update a funding entry
// @Tags funding
// @Accept  json
// @Produce  json
// @Param   fundingID path string true "Funding ID"
// @Param   funding body dto.CreateFundingRequest true "Funding details"
// @Success 200 {object} dto.FundingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Funding entry not found"
// @Failure 500 {object} map[string]string "Failed to update funding entry"
// @Router /funding/{fundingID} [put]
func (h *fundingHandler) updateFunding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundingID := c.Param("fundingID")

	var req dto.CreateFundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFunding", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.fundingService.UpdateFunding(c.Request.Context(), fundingID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Funding entry not found", "Failed to update funding entry")
		return
	}

	logger.Info("Funding entry updated", slog.String("funding_id", fundingID))
	c.JSON(http.StatusOK, dto.ToFundingResponse(updated))
}

// deleteFunding godoc
// @Summary Delete a funding entry
// @Tags funding
// @Produce  json
// @Param   fundingID path string true "Funding ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Funding entry not found"
// @Failure 500 {object} map[string]string "Failed to delete funding entry"
// @Router /funding/{fundingID} [delete]
func (h *fundingHandler) deleteFunding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundingID := c.Param("fundingID")

	if err := h.fundingService.DeleteFunding(c.Request.Context(), fundingID); err != nil {
		respondServiceError(c, logger, err, "Funding entry not found", "Failed to delete funding entry")
		return
	}

	logger.Info("Funding entry deleted", slog.String("funding_id", fundingID))
	c.Status(http.StatusNoContent)
}
