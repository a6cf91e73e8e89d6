package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/service"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// MessageHandler serves the chat threads.
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler creates a new handler.
func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{service: svc}
}

// Thread godoc
// @Summary Messages of a thread
// @Description Defaults to the class teacher conversation
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param thread query string false "Thread id"
// @Success 200 {object} response.Envelope
// @Router /messages [get]
func (h *MessageHandler) Thread(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Thread(c.Request.Context(), c.Query("thread")))
}

// Send godoc
// @Summary Send a message
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param thread query string false "Thread id"
// @Param payload body models.SendMessageRequest true "Message"
// @Success 201 {object} response.Envelope
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid message payload"))
		return
	}

	msg, err := h.service.Send(c.Request.Context(), c.Query("thread"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}
