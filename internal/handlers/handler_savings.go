package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/SscSPs/lifefin_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type savingsHandler struct {
	savingsService portssvc.SavingsSvcFacade
}

// RegisterSavingsRoutes registers routes related to savings goals.
func RegisterSavingsRoutes(rg *gin.RouterGroup, savingsService portssvc.SavingsSvcFacade) {
	h := &savingsHandler{savingsService: savingsService}

	savings := rg.Group("/savings")
	{
		savings.POST("", h.createGoal)
		savings.GET("", h.listGoals)
		savings.POST("/:id/deposit", h.deposit)
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Tags savings
// @Accept json
// @Produce json
// @Param goal body dto.CreateSavingsGoalRequest true "Goal details"
// @Success 201 {object} dto.SavingsGoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings [post]
func (h *savingsHandler) createGoal(c *gin.Context) {
	var req dto.CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	goal, err := h.savingsService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create savings goal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSavingsGoalResponse(goal))
}

// listGoals godoc
// @Summary List savings goals
// @Tags savings
// @Produce json
// @Success 200 {array} dto.SavingsGoalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings [get]
func (h *savingsHandler) listGoals(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	goals, err := h.savingsService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list savings goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToSavingsGoalResponses(goals))
}

// deposit godoc
// @Summary Deposit into a savings goal
// @Description Adds the amount to the goal and books a matching expense in the same database transaction
// @Tags savings
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param deposit body dto.DepositRequest true "Deposit amount"
// @Success 200 {object} dto.SavingsGoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings/{id}/deposit [post]
func (h *savingsHandler) deposit(c *gin.Context) {
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	goal, err := h.savingsService.Deposit(c.Request.Context(), userID, goalID, req)
	if err != nil {
		respondWithError(c, err, "Failed to deposit into savings goal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Savings deposit applied",
		slog.String("goal_id", goal.GoalID),
		slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusOK, dto.ToSavingsGoalResponse(goal))
}
