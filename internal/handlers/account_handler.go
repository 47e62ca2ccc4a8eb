package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"roundup/internal/services"
)

// AccountHandler handles account-related requests
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ExpenseRequest is one expense line. ID and value accept strings or numbers.
type ExpenseRequest struct {
	ID       json.RawMessage `json:"id" swaggertype:"string"`
	Name     string          `json:"name"`
	Value    json.RawMessage `json:"value" swaggertype:"number"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

// UpdateAccountRequest replaces income and/or the expense list.
type UpdateAccountRequest struct {
	Income   *float64          `json:"income"`
	Expenses *[]ExpenseRequest `json:"expenses"`
}

// GetAccount returns the caller's account
// @Summary     Get account
// @Description Returns the caller's account, creating an empty one on first access
// @Tags        account
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Account "Account"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount replaces income and/or expenses
// @Summary     Update account
// @Description Replaces income and/or the whole expense list; expense and balance are recomputed
// @Tags        account
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateAccountRequest true "Account data"
// @Success     200 {object} models.Account "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /account [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var expenses *[]services.ExpenseInput
	if req.Expenses != nil {
		in := make([]services.ExpenseInput, 0, len(*req.Expenses))
		for _, e := range *req.Expenses {
			in = append(in, services.ExpenseInput{
				ID:       rawText(e.ID),
				Name:     e.Name,
				Value:    rawText(e.Value),
				Category: e.Category,
				Date:     e.Date,
			})
		}
		expenses = &in
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), userID, req.Income, expenses)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
