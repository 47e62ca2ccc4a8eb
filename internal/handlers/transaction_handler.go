package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"roundup/internal/models"
	"roundup/internal/services"
)

// TransactionHandler handles transaction and savings requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the transaction creation payload
type CreateTransactionRequest struct {
	Amount       json.Number `json:"amount" binding:"required,positive_amount" swaggertype:"number"`
	Date         string      `json:"date"`
	RoundingType string      `json:"roundingType" binding:"required,rounding_type" enums:"nearest-decimal,nearest-tens,nearest-hundreds"`
}

// TotalSavingsResponse reports accumulated round-up savings.
type TotalSavingsResponse struct {
	TotalSavings float64 `json:"totalSavings"`
}

// CreateTransaction records a purchase
// @Summary     Create transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction data"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), userID,
		amount.InexactFloat64(), date, models.RoundingType(req.RoundingType))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// GetUserTransactions lists the caller's transactions
// @Summary     List transactions
// @Description Lists the caller's transactions ordered by date ascending
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.Transaction "Transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txs, err := h.transactionService.GetUserTransactions(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

// GetTotalSavings returns accumulated round-up savings
// @Summary     Total savings
// @Description Sum of round-up spare change over every transaction, to 2 decimal places
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} TotalSavingsResponse "Total savings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/budget/total-savings [get]
func (h *TransactionHandler) GetTotalSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.transactionService.TotalSavings(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TotalSavingsResponse{TotalSavings: total.Round(2).InexactFloat64()})
}
