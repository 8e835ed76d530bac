package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests for the expense ledger.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

func registerExpenseRoutes(rg *gin.RouterGroup, es portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(es)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expenseID", h.getExpense)
		expenses.PUT("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Create an expense
// @Description Records a general site expense, fully spent at creation
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create expense"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Expense not found", "Failed to create expense")
		return
	}

	logger.Info("Expense created", slog.String("expense_id", created.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(created))
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce  json
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Expenses not found", "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(entries))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to retrieve expense"
// @Router /expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	entry, err := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID)
	if err != nil {
		respondServiceError(c, logger, err, "Expense not found", "Failed to retrieve expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(entry))
}

// updateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to update expense"
// @Router /expenses/{expenseID} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.expenseService.UpdateExpense(c.Request.Context(), expenseID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Expense not found", "Failed to update expense")
		return
	}

	logger.Info("Expense updated", slog.String("expense_id", expenseID))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(updated))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to delete expense"
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		respondServiceError(c, logger, err, "Expense not found", "Failed to delete expense")
		return
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID))
	c.Status(http.StatusNoContent)
}
