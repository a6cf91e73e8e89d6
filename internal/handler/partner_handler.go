package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/service"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// PartnerHandler serves the study-partner matching deck and match chats.
type PartnerHandler struct {
	service *service.PartnerService
}

// NewPartnerHandler creates a new handler.
func NewPartnerHandler(svc *service.PartnerService) *PartnerHandler {
	return &PartnerHandler{service: svc}
}

// Deck godoc
// @Summary Full candidate deck
// @Tags Partners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /partners/deck [get]
func (h *PartnerHandler) Deck(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Deck(c.Request.Context()))
}

// Current godoc
// @Summary Card on top of the deck
// @Tags Partners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /partners/current [get]
func (h *PartnerHandler) Current(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, h.service.Current(c.Request.Context(), claims.SessionID))
}

// Swipe godoc
// @Summary Swipe on the top card
// @Tags Partners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.SwipeRequest true "Swipe"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /partners/swipe [post]
func (h *PartnerHandler) Swipe(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid swipe payload"))
		return
	}

	result, err := h.service.Swipe(c.Request.Context(), claims.SessionID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Matches godoc
// @Summary Matched partners
// @Tags Partners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /partners/matches [get]
func (h *PartnerHandler) Matches(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, h.service.Matches(c.Request.Context(), claims.SessionID))
}

// Chat godoc
// @Summary Conversation with a matched partner
// @Tags Partners
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner id"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /partners/{id}/chat [get]
func (h *PartnerHandler) Chat(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	msgs, err := h.service.Chat(c.Request.Context(), claims.SessionID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msgs)
}

// SendToPartner godoc
// @Summary Message a matched partner
// @Tags Partners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner id"
// @Param payload body models.SendMessageRequest true "Message"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /partners/{id}/chat [post]
func (h *PartnerHandler) SendToPartner(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid message payload"))
		return
	}

	msgs, err := h.service.SendToPartner(c.Request.Context(), claims.SessionID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msgs)
}
