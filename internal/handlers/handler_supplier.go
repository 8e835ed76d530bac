package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// supplierHandler handles HTTP requests for supplier identity records.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{supplierService: ss}
}

func registerSupplierRoutes(rg *gin.RouterGroup, ss portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(ss)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:supplierID", h.getSupplier)
		suppliers.PUT("/:supplierID", h.updateSupplier)
		suppliers.DELETE("/:supplierID", h.deleteSupplier)
	}
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create supplier"
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Supplier not found", "Failed to create supplier")
		return
	}

	logger.Info("Supplier created", slog.String("supplier_id", created.SupplierID))
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(created))
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce  json
// @Success 200 {array} dto.SupplierResponse
// @Failure 500 {object} map[string]string "Failed to list suppliers"
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Suppliers not found", "Failed to list suppliers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSupplierResponse(suppliers))
}

// getSupplier godoc
// @Summary Get a supplier
// @Tags suppliers
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to retrieve supplier"
// @Router /suppliers/{supplierID} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		respondServiceError(c, logger, err, "Supplier not found", "Failed to retrieve supplier")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to update supplier"
// @Router /suppliers/{supplierID} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.supplierService.UpdateSupplier(c.Request.Context(), supplierID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Supplier not found", "Failed to update supplier")
		return
	}

	logger.Info("Supplier updated", slog.String("supplier_id", supplierID))
	c.JSON(http.StatusOK, dto.ToSupplierResponse(updated))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Description Removes the supplier identity record; purchases referencing it are kept and display a placeholder name
// @Tags suppliers
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to delete supplier"
// @Router /suppliers/{supplierID} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), supplierID); err != nil {
		respondServiceError(c, logger, err, "Supplier not found", "Failed to delete supplier")
		return
	}

	logger.Info("Supplier deleted", slog.String("supplier_id", supplierID))
	c.Status(http.StatusNoContent)
}
