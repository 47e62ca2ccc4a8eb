package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"roundup/internal/models"
	"roundup/internal/services"
)

// GoalHandler handles goal-related requests
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// SetGoalsRequest overwrites both monthly targets.
type SetGoalsRequest struct {
	ExpenditureGoal *float64 `json:"expenditureGoal" binding:"required,gte=0"`
	SavingsGoal     *float64 `json:"savingsGoal" binding:"required,gte=0"`
}

// GoalEntryRequest files one expenditure or savings entry.
type GoalEntryRequest struct {
	Category    string      `json:"category" binding:"required,goal_category" enums:"medical,home,investment,emergency,others"`
	Amount      json.Number `json:"amount" binding:"required,positive_amount" swaggertype:"number"`
	Description string      `json:"description" binding:"max=500"`
}

// GetGoal returns the caller's goal
// @Summary     Get goals
// @Description Returns the caller's goal, creating a zeroed one on first access
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Goal "Goal"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/goals [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// SetGoals overwrites the monthly targets
// @Summary     Set goals
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetGoalsRequest true "Targets"
// @Success     200 {object} models.Goal "Goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/goals [post]
func (h *GoalHandler) SetGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	goal, err := h.goalService.SetGoals(c.Request.Context(), userID, *req.ExpenditureGoal, *req.SavingsGoal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// AddExpenditure files an expenditure entry
// @Summary     Add expenditure entry
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body GoalEntryRequest true "Entry"
// @Success     200 {object} models.Goal "Goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/goals/expenditure [post]
func (h *GoalHandler) AddExpenditure(c *gin.Context) {
	h.addEntry(c, h.goalService.AddExpenditureEntry)
}

// AddSavings files a savings entry
// @Summary     Add savings entry
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body GoalEntryRequest true "Entry"
// @Success     200 {object} models.Goal "Goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     503 {object} ErrorResponse "Database not connected"
// @Router      /api/goals/savings [post]
func (h *GoalHandler) AddSavings(c *gin.Context) {
	h.addEntry(c, h.goalService.AddSavingsEntry)
}

type addEntryFunc func(ctx context.Context, userID string, category models.GoalCategory, amount float64, description string) (*models.Goal, error)

func (h *GoalHandler) addEntry(c *gin.Context, add addEntryFunc) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GoalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := add(c.Request.Context(), userID, models.GoalCategory(req.Category), amount.InexactFloat64(), req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}
