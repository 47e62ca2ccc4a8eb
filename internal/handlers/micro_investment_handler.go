package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"roundup/internal/services"
)

// MicroInvestmentHandler handles savings allocations
type MicroInvestmentHandler struct {
	investmentService services.MicroInvestmentServicer
	savings           services.SavingsCalculator
}

// NewMicroInvestmentHandler creates a new MicroInvestmentHandler
func NewMicroInvestmentHandler(investmentService services.MicroInvestmentServicer, savings services.SavingsCalculator) *MicroInvestmentHandler {
	return &MicroInvestmentHandler{investmentService: investmentService, savings: savings}
}

// CreateMicroInvestmentRequest allocates savings to a bucket.
type CreateMicroInvestmentRequest struct {
	Category    string      `json:"category" binding:"required,max=100"`
	Amount      json.Number `json:"amount" binding:"required,positive_amount" swaggertype:"number"`
	Description string      `json:"description" binding:"max=500"`
}

// AllocationSummaryResponse reports how much of the savings is still free.
type AllocationSummaryResponse struct {
	TotalSavings       float64 `json:"totalSavings"`
	AllocatedSavings   float64 `json:"allocatedSavings"`
	UnallocatedSavings float64 `json:"unallocatedSavings"`
}

// GetUserMicroInvestments lists the caller's allocations
// @Summary     List allocations
// @Tags        microinvestment
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.MicroInvestment "Allocations"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/microinvestment [get]
func (h *MicroInvestmentHandler) GetUserMicroInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	invs, err := h.investmentService.GetUserMicroInvestments(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invs)
}

// CreateMicroInvestment allocates savings
// @Summary     Create allocation
// @Description Allocates part of the caller's unallocated round-up savings
// @Tags        microinvestment
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateMicroInvestmentRequest true "Allocation"
// @Success     200 {object} models.MicroInvestment "Allocation"
// @Failure     400 {object} ErrorResponse "Invalid input or over-allocation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/microinvestment [post]
func (h *MicroInvestmentHandler) CreateMicroInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateMicroInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	inv, err := h.investmentService.CreateMicroInvestment(c.Request.Context(), userID, req.Category, amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, inv)
}

// DeleteMicroInvestment removes an allocation
// @Summary     Delete allocation
// @Tags        microinvestment
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Allocation ID"
// @Success     200 {object} MessageResponse "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Allocation owned by another user"
// @Failure     404 {object} ErrorResponse "Allocation not found"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/microinvestment/{id} [delete]
func (h *MicroInvestmentHandler) DeleteMicroInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteMicroInvestment(c.Request.Context(), userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Allocation deleted"})
}

// GetSummary reports total, allocated and unallocated savings
// @Summary     Allocation summary
// @Tags        microinvestment
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} AllocationSummaryResponse "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/microinvestment/summary [get]
func (h *MicroInvestmentHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	total, err := h.savings.TotalSavings(ctx, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	unallocated, err := h.investmentService.UnallocatedSavings(ctx, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AllocationSummaryResponse{
		TotalSavings:       total.Round(2).InexactFloat64(),
		AllocatedSavings:   total.Sub(unallocated).Round(2).InexactFloat64(),
		UnallocatedSavings: unallocated.Round(2).InexactFloat64(),
	})
}
