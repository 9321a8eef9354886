package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/SscSPs/lifefin_backend/internal/middleware"
	"github.com/SscSPs/lifefin_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
	posthogClient     *utils.PosthogClientWrapper
}

// RegisterInvestmentRoutes registers routes related to the product catalog and open positions.
// posthogClient may be nil.
func RegisterInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := &investmentHandler{investmentService: investmentService, posthogClient: posthogClient}

	inv := rg.Group("/investments")
	{
		inv.GET("/products", h.listProducts)
		inv.GET("", h.listInvestments)
		inv.POST("", h.buyInvestment)
		inv.POST("/:id/withdraw", h.withdrawInvestment)
	}
}

// listProducts godoc
// @Summary List investment products
// @Tags investments
// @Produce json
// @Param risk query string false "Filter by risk tier" Enums(Rendah, Sedang, Tinggi)
// @Success 200 {array} domain.InvestmentProduct
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/products [get]
func (h *investmentHandler) listProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.investmentService.ListProducts(c.Request.Context(), params))
}

// listInvestments godoc
// @Summary List my open positions
// @Tags investments
// @Produce json
// @Success 200 {array} domain.Investment
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	positions, err := h.investmentService.ListInvestments(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list investments")
		return
	}
	c.JSON(http.StatusOK, positions)
}

// buyInvestment godoc
// @Summary Buy an investment product
// @Description Opens a position and books the purchase as an expense. The amount must reach the product minimum.
// @Tags investments
// @Accept json
// @Produce json
// @Param order body dto.BuyInvestmentRequest true "Product and amount"
// @Success 201 {object} domain.Investment
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) buyInvestment(c *gin.Context) {
	var req dto.BuyInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	position, err := h.investmentService.BuyInvestment(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to buy investment")
		return
	}
	c.JSON(http.StatusCreated, position)
}

// withdrawInvestment godoc
// @Summary Withdraw an investment
// @Description Simulates the market outcome, books the payoff as income and closes the position
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} domain.Withdrawal
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{id}/withdraw [post]
func (h *investmentHandler) withdrawInvestment(c *gin.Context) {
	investmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	w, err := h.investmentService.WithdrawInvestment(c.Request.Context(), userID, investmentID)
	if err != nil {
		respondWithError(c, err, "Failed to withdraw investment")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "investment_outcome", map[string]any{
		"product_id":         w.Investment.ProductID,
		"risk":               string(w.Investment.Risk),
		"actual_return_rate": w.Outcome.ActualReturnRate.String(),
		"narrative":          w.Outcome.Narrative,
	})
	c.JSON(http.StatusOK, w)
}
