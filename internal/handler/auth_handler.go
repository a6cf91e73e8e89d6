package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/service"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// AuthHandler wires the staged login flow to HTTP endpoints.
type AuthHandler struct {
	service *service.AuthService
	metrics *service.MetricsService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, metrics *service.MetricsService) *AuthHandler {
	return &AuthHandler{service: svc, metrics: metrics}
}

// StartFlow godoc
// @Summary Open a login flow
// @Description Create a fresh login flow at the role selection step
// @Tags Authentication
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /auth/flows [post]
func (h *AuthHandler) StartFlow(c *gin.Context) {
	flow := h.service.StartFlow(c.Request.Context())
	h.metrics.RecordLoginStarted()
	response.Created(c, flow)
}

// GetFlow godoc
// @Summary Inspect a login flow
// @Tags Authentication
// @Produce json
// @Param id path string true "Flow id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /auth/flows/{id} [get]
func (h *AuthHandler) GetFlow(c *gin.Context) {
	flow, err := h.service.GetFlow(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, flow)
}

// SelectRole godoc
// @Summary Choose the actor role
// @Tags Authentication
// @Accept json
// @Produce json
// @Param id path string true "Flow id"
// @Param payload body models.SelectRoleRequest true "Role selection"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/flows/{id}/role [post]
func (h *AuthHandler) SelectRole(c *gin.Context) {
	var req models.SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid role payload"))
		return
	}

	flow, err := h.service.SelectRole(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, flow)
}

// Back godoc
// @Summary Step the flow backwards
// @Description Return to the previous step, discarding the data entered on the current one
// @Tags Authentication
// @Produce json
// @Param id path string true "Flow id"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/flows/{id}/back [post]
func (h *AuthHandler) Back(c *gin.Context) {
	flow, err := h.service.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, flow)
}

// SubmitDetails godoc
// @Summary Submit the details form
// @Description Validate the role-dependent form and dispatch a verification code
// @Tags Authentication
// @Accept json
// @Produce json
// @Param id path string true "Flow id"
// @Param payload body models.LoginForm true "Details form"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/flows/{id}/details [post]
func (h *AuthHandler) SubmitDetails(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid details payload"))
		return
	}

	flow, err := h.service.SubmitDetails(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, flow)
}

// UpdateCodeDigit godoc
// @Summary Update one verification code position
// @Tags Authentication
// @Accept json
// @Produce json
// @Param id path string true "Flow id"
// @Param payload body models.CodeDigitRequest true "Digit update"
// @Success 200 {object} response.Envelope
// @Router /auth/flows/{id}/code [patch]
func (h *AuthHandler) UpdateCodeDigit(c *gin.Context) {
	var req models.CodeDigitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid digit payload"))
		return
	}

	res, err := h.service.UpdateCodeDigit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// VerifyCode godoc
// @Summary Verify the code and finish the login
// @Description Exchange a completed verification code for an access token
// @Tags Authentication
// @Produce json
// @Param id path string true "Flow id"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /auth/flows/{id}/verify [post]
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	result, err := h.service.VerifyCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordLoginCompleted(string(result.User.Role))
	response.JSON(c, http.StatusOK, result)
}

// Me godoc
// @Summary Current identity
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	identity, err := h.service.CurrentUser(c.Request.Context(), claims.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, identity)
}

// Logout godoc
// @Summary End the current session
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 204 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	h.service.Logout(c.Request.Context(), claims.SessionID)
	response.NoContent(c)
}
