package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/service"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// WellnessHandler serves the stress-management endpoints.
type WellnessHandler struct {
	service *service.WellnessService
}

// NewWellnessHandler creates a new handler.
func NewWellnessHandler(svc *service.WellnessService) *WellnessHandler {
	return &WellnessHandler{service: svc}
}

// Affirmation godoc
// @Summary One random affirmation
// @Tags Wellness
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /wellness/affirmation [get]
func (h *WellnessHandler) Affirmation(c *gin.Context) {
	line, err := h.service.Affirmation(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"affirmation": line})
}

// Breathing godoc
// @Summary Guided breathing cycle
// @Tags Wellness
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /wellness/breathing [get]
func (h *WellnessHandler) Breathing(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Breathing(c.Request.Context()))
}

// CheckIn godoc
// @Summary Record a mood check-in
// @Tags Wellness
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.MoodCheckinRequest true "Mood"
// @Success 201 {object} response.Envelope
// @Router /wellness/moods [post]
func (h *WellnessHandler) CheckIn(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.MoodCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mood payload"))
		return
	}

	history, err := h.service.CheckIn(c.Request.Context(), claims.SessionID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, history)
}

// Moods godoc
// @Summary Mood check-in history
// @Tags Wellness
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /wellness/moods [get]
func (h *WellnessHandler) Moods(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, h.service.Moods(c.Request.Context(), claims.SessionID))
}
