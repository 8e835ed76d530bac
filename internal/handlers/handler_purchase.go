package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests for the purchase ledger.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

func registerPurchaseRoutes(rg *gin.RouterGroup, ps portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(ps)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:purchaseID", h.getPurchase)
		purchases.PUT("/:purchaseID", h.updatePurchase)
		purchases.DELETE("/:purchaseID", h.deletePurchase)
	}
}

// createPurchase godoc
// @Summary Create a purchase
// @Description Records goods bought from a supplier; totalPrice and remainingAmount are derived server-side
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown supplier"
// @Failure 500 {object} map[string]string "Failed to create purchase"
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Purchase not found", "Failed to create purchase")
		return
	}

	logger.Info("Purchase created", slog.String("purchase_id", created.PurchaseID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(created))
}

// listPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce  json
// @Success 200 {array} dto.PurchaseResponse
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.purchaseService.ListPurchases(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Purchases not found", "Failed to list purchases")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseResponse(entries))
}

// getPurchase godoc
// @Summary Get a purchase
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to retrieve purchase"
// @Router /purchases/{purchaseID} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	entry, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		respondServiceError(c, logger, err, "Purchase not found", "Failed to retrieve purchase")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(entry))
}

// updatePurchase godoc
// @Summary Update a purchase
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown supplier"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to update purchase"
// @Router /purchases/{purchaseID} [put]
func (h *purchaseHandler) updatePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.purchaseService.UpdatePurchase(c.Request.Context(), purchaseID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Purchase not found", "Failed to update purchase")
		return
	}

	logger.Info("Purchase updated", slog.String("purchase_id", purchaseID))
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(updated))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to delete purchase"
// @Router /purchases/{purchaseID} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), purchaseID); err != nil {
		respondServiceError(c, logger, err, "Purchase not found", "Failed to delete purchase")
		return
	}

	logger.Info("Purchase deleted", slog.String("purchase_id", purchaseID))
	c.Status(http.StatusNoContent)
}
