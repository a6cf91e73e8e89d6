package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/service"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// GamificationHandler serves the leaderboard, badges and XP awards.
type GamificationHandler struct {
	service *service.GamificationService
}

// NewGamificationHandler creates a new handler.
func NewGamificationHandler(svc *service.GamificationService) *GamificationHandler {
	return &GamificationHandler{service: svc}
}

// Leaderboard godoc
// @Summary XP leaderboard
// @Tags Gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /gamification/leaderboard [get]
func (h *GamificationHandler) Leaderboard(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Leaderboard(c.Request.Context()))
}

// Badges godoc
// @Summary Achievement catalog
// @Tags Gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /gamification/badges [get]
func (h *GamificationHandler) Badges(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Badges(c.Request.Context()))
}

// AwardXP godoc
// @Summary Grant XP to the current student session
// @Tags Gamification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.AwardXPRequest true "Award"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /gamification/xp [post]
func (h *GamificationHandler) AwardXP(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.AwardXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid award payload"))
		return
	}

	session, err := h.service.AwardXP(c.Request.Context(), claims.SessionID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session.Identity)
}
