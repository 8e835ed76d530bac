package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workerHandler handles HTTP requests for worker identity records and the
// per-worker statement view.
type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

func newWorkerHandler(ws portssvc.WorkerSvcFacade) *workerHandler {
	return &workerHandler{workerService: ws}
}

func registerWorkerRoutes(rg *gin.RouterGroup, ws portssvc.WorkerSvcFacade) {
	h := newWorkerHandler(ws)

	workers := rg.Group("/workers")
	{
		workers.POST("", h.createWorker)
		workers.GET("", h.listWorkers)
		workers.GET("/:workerID", h.getWorker)
		workers.PUT("/:workerID", h.updateWorker)
		workers.DELETE("/:workerID", h.deleteWorker)
		workers.GET("/:workerID/statement", h.getWorkerStatement)
	}
}

// createWorker godoc
// @Summary Create a worker
// @Tags workers
// @Accept  json
// @Produce  json
// @Param   worker body dto.CreateWorkerRequest true "Worker details"
// @Success 201 {object} dto.WorkerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create worker"
// @Router /workers [post]
func (h *workerHandler) createWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.workerService.CreateWorker(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Worker not found", "Failed to create worker")
		return
	}

	logger.Info("Worker created", slog.String("worker_id", created.WorkerID))
	c.JSON(http.StatusCreated, dto.ToWorkerResponse(created))
}

// listWorkers godoc
// @Summary List workers
// @Tags workers
// @Produce  json
// @Success 200 {array} dto.WorkerResponse
// @Failure 500 {object} map[string]string "Failed to list workers"
// @Router /workers [get]
func (h *workerHandler) listWorkers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	workers, err := h.workerService.ListWorkers(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Workers not found", "Failed to list workers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkerResponse(workers))
}

// getWorker godoc
// @Summary Get a worker
// @Tags workers
// @Produce  json
// @Param   workerID path string true "Worker ID"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} map[string]string "Worker not found"
// @Failure 500 {object} map[string]string "Failed to retrieve worker"
// @Router /workers/{workerID} [get]
func (h *workerHandler) getWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID := c.Param("workerID")

	worker, err := h.workerService.GetWorkerByID(c.Request.Context(), workerID)
	if err != nil {
		respondServiceError(c, logger, err, "Worker not found", "Failed to retrieve worker")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// updateWorker godoc
// @Summary Update a worker
// @Tags workers
// @Accept  json
// @Produce  json
// @Param   workerID path string true "Worker ID"
// @Param   worker body dto.CreateWorkerRequest true "Worker details"
// @Success 200 {object} dto.WorkerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Worker not found"
// @Failure 500 {object} map[string]string "Failed to update worker"
// @Router /workers/{workerID} [put]
func (h *workerHandler) updateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID := c.Param("workerID")

	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.workerService.UpdateWorker(c.Request.Context(), workerID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Worker not found", "Failed to update worker")
		return
	}

	logger.Info("Worker updated", slog.String("worker_id", workerID))
	c.JSON(http.StatusOK, dto.ToWorkerResponse(updated))
}

// deleteWorker godoc
// @Summary Delete a worker
// @Description Removes the worker identity record; labor entries and payments referencing it are kept and display a placeholder name
// @Tags workers
// @Produce  json
// @Param   workerID path string true "Worker ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Worker not found"
// @Failure 500 {object} map[string]string "Failed to delete worker"
// @Router /workers/{workerID} [delete]
func (h *workerHandler) deleteWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID := c.Param("workerID")

	if err := h.workerService.DeleteWorker(c.Request.Context(), workerID); err != nil {
		respondServiceError(c, logger, err, "Worker not found", "Failed to delete worker")
		return
	}

	logger.Info("Worker deleted", slog.String("worker_id", workerID))
	c.Status(http.StatusNoContent)
}

// getWorkerStatement godoc
// @Summary Get a worker's statement
// @Description Returns what a worker earned across both labor ledgers next to what the payment ledger says was disbursed
// @Tags workers
// @Produce  json
// @Param   workerID path string true "Worker ID"
// @Success 200 {object} dto.WorkerStatementResponse
// @Failure 404 {object} map[string]string "Worker not found"
// @Failure 500 {object} map[string]string "Failed to compute worker statement"
// @Router /workers/{workerID}/statement [get]
func (h *workerHandler) getWorkerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID := c.Param("workerID")

	statement, err := h.workerService.GetWorkerStatement(c.Request.Context(), workerID)
	if err != nil {
		respondServiceError(c, logger, err, "Worker not found", "Failed to compute worker statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerStatementResponse(statement))
}
