package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workerPaymentHandler handles HTTP requests for the worker-payment ledger.
type workerPaymentHandler struct {
	paymentService portssvc.WorkerPaymentSvcFacade
}

func newWorkerPaymentHandler(ps portssvc.WorkerPaymentSvcFacade) *workerPaymentHandler {
	return &workerPaymentHandler{paymentService: ps}
}

func registerWorkerPaymentRoutes(rg *gin.RouterGroup, ps portssvc.WorkerPaymentSvcFacade) {
	h := newWorkerPaymentHandler(ps)

	payments := rg.Group("/worker-payments")
	{
		payments.POST("", h.createWorkerPayment)
		payments.GET("", h.listWorkerPayments)
		payments.GET("/:paymentID", h.getWorkerPayment)
		payments.PUT("/:paymentID", h.updateWorkerPayment)
		payments.DELETE("/:paymentID", h.deleteWorkerPayment)
	}
}

// createWorkerPayment godoc
// @Summary Create a worker payment
// @Description Records money disbursed to a worker, independent of any labor entry
// @Tags worker-payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreateWorkerPaymentRequest true "Payment details"
// @Success 201 {object} dto.WorkerPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown worker"
// @Failure 500 {object} map[string]string "Failed to create worker payment"
// @Router /worker-payments [post]
func (h *workerPaymentHandler) createWorkerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWorkerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorkerPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.paymentService.CreateWorkerPayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Worker payment not found", "Failed to create worker payment")
		return
	}

	logger.Info("Worker payment created", slog.String("payment_id", created.PaymentID))
	c.JSON(http.StatusCreated, dto.ToWorkerPaymentResponse(created))
}

// listWorkerPayments godoc
// @Summary List worker payments
// @Tags worker-payments
// @Produce  json
// @Success 200 {array} dto.WorkerPaymentResponse
// @Failure 500 {object} map[string]string "Failed to list worker payments"
// @Router /worker-payments [get]
func (h *workerPaymentHandler) listWorkerPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.paymentService.ListWorkerPayments(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Worker payments not found", "Failed to list worker payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkerPaymentResponse(entries))
}

// getWorkerPayment godoc
// @Summary Get a worker payment
// @Tags worker-payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.WorkerPaymentResponse
// @Failure 404 {object} map[string]string "Worker payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve worker payment"
// @Router /worker-payments/{paymentID} [get]
func (h *workerPaymentHandler) getWorkerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	entry, err := h.paymentService.GetWorkerPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		respondServiceError(c, logger, err, "Worker payment not found", "Failed to retrieve worker payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerPaymentResponse(entry))
}

// updateWorkerPayment godoc
// @Summary Update a worker payment
// @Tags worker-payments
// @Accept  json
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Param   payment body dto.CreateWorkerPaymentRequest true "Payment details"
// @Success 200 {object} dto.WorkerPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown worker"
// @Failure 404 {object} map[string]string "Worker payment not found"
// @Failure 500 {object} map[string]string "Failed to update worker payment"
// @Router /worker-payments/{paymentID} [put]
func (h *workerPaymentHandler) updateWorkerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	var req dto.CreateWorkerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWorkerPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.paymentService.UpdateWorkerPayment(c.Request.Context(), paymentID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Worker payment not found", "Failed to update worker payment")
		return
	}

	logger.Info("Worker payment updated", slog.String("payment_id", paymentID))
	c.JSON(http.StatusOK, dto.ToWorkerPaymentResponse(updated))
}

// deleteWorkerPayment godoc
// @Summary Delete a worker payment
// @Tags worker-payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Worker payment not found"
// @Failure 500 {object} map[string]string "Failed to delete worker payment"
// @Router /worker-payments/{paymentID} [delete]
func (h *workerPaymentHandler) deleteWorkerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	if err := h.paymentService.DeleteWorkerPayment(c.Request.Context(), paymentID); err != nil {
		respondServiceError(c, logger, err, "Worker payment not found", "Failed to delete worker payment")
		return
	}

	logger.Info("Worker payment deleted", slog.String("payment_id", paymentID))
	c.Status(http.StatusNoContent)
}
