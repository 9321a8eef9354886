package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/SscSPs/lifefin_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type scoreHandler struct {
	scoringService     portssvc.ScoringSvc
	scoreConfigService portssvc.ScoreConfigSvcFacade
}

// RegisterScoreRoutes registers the merchant's score route.
func RegisterScoreRoutes(rg *gin.RouterGroup, scoringService portssvc.ScoringSvc) {
	h := &scoreHandler{scoringService: scoringService}
	rg.GET("/score", h.getScore)
}

// RegisterScoreConfigRoutes registers the score configuration routes on an admin-only group.
func RegisterScoreConfigRoutes(admin *gin.RouterGroup, scoreConfigService portssvc.ScoreConfigSvcFacade) {
	h := &scoreHandler{scoreConfigService: scoreConfigService}

	cfg := admin.Group("/score-config")
	{
		cfg.GET("", h.getScoreConfig)
		cfg.PUT("", h.updateScoreConfig)
	}
}

// getScore godoc
// @Summary Get my credit score
// @Description Recomputes the caller's score and loan ceiling from their full transaction and savings history
// @Tags score
// @Produce json
// @Success 200 {object} domain.ScoreReport
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /score [get]
func (h *scoreHandler) getScore(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	report, err := h.scoringService.GetScoreReport(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute score")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getScoreConfig godoc
// @Summary Get the score configuration
// @Tags admin
// @Produce json
// @Success 200 {object} domain.ScoreConfig
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/score-config [get]
func (h *scoreHandler) getScoreConfig(c *gin.Context) {
	cfg, err := h.scoreConfigService.GetScoreConfig(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to load score configuration")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// updateScoreConfig godoc
// @Summary Replace the score configuration
// @Description Base must be 1-850, trxWeight 1-200 and savingWeight 1-150
// @Tags admin
// @Accept json
// @Produce json
// @Param config body dto.UpdateScoreConfigRequest true "New configuration"
// @Success 200 {object} domain.ScoreConfig
// @Failure 400 {object} ErrorResponse "Out-of-range configuration"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/score-config [put]
func (h *scoreHandler) updateScoreConfig(c *gin.Context) {
	var req dto.UpdateScoreConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	adminID, ok := callerID(c)
	if !ok {
		return
	}

	cfg, err := h.scoreConfigService.UpdateScoreConfig(c.Request.Context(), req, adminID)
	if err != nil {
		respondWithError(c, err, "Failed to update score configuration")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Score configuration updated",
		slog.Int("base", cfg.Base),
		slog.Int("trx_weight", cfg.TrxWeight),
		slog.Int("saving_weight", cfg.SavingWeight))
	c.JSON(http.StatusOK, cfg)
}
