package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "khata/internal/errors"
	"khata/internal/services"
)

// ExpenseHandler handles ledger requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents a submitted ledger entry, pre-validation.
// Amount is kept as raw JSON so numeric strings survive binding and an
// explicit null stays distinguishable from an absent field; the validation
// layer judges the value.
type ExpenseRequest struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Bank        string          `json:"bank"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount" swaggertype:"number"`
}

// AddExpense handles the creation of a new ledger entry
// @Summary     Add an expense
// @Description Validate and store a new ledger entry
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense record"
// @Success     200 {object} MessageResponse "Entry saved"
// @Failure     400 {object} ErrorResponse "Validation failure"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /add-expense [post]
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	_, err := h.expenseService.CreateExpense(req.Date, req.Type, req.Bank, req.Category, req.Description, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "saved"})
}

// ListExpenses handles the retrieval of the full ledger
// @Summary     List expenses
// @Description Get every ledger entry ordered by date ascending
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Expense "Ledger entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// UpdateExpense handles the full-field replacement of a ledger entry
// @Summary     Update an expense
// @Description Validate and replace all fields of a ledger entry; unknown ids succeed silently
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Param       request body ExpenseRequest true "Expense record"
// @Success     200 {object} MessageResponse "Entry updated"
// @Failure     400 {object} ErrorResponse "Validation failure or invalid id"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.expenseService.UpdateExpense(id, req.Date, req.Type, req.Bank, req.Category, req.Description, req.Amount); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "updated"})
}

// DeleteExpense handles the removal of a ledger entry
// @Summary     Delete an expense
// @Description Delete a ledger entry; unknown ids succeed silently
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Entry deleted"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
