package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/service"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// ViewHandler exposes navigation over the session's current view.
type ViewHandler struct {
	service *service.ViewService
}

// NewViewHandler creates a new handler.
func NewViewHandler(svc *service.ViewService) *ViewHandler {
	return &ViewHandler{service: svc}
}

// Navigate godoc
// @Summary Navigate the session to a view
// @Description Store the requested view and resolve what it renders for the session role
// @Tags Views
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.NavigateRequest true "Target view"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /views/navigate [post]
func (h *ViewHandler) Navigate(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid navigation payload"))
		return
	}

	dispatch, err := h.service.Navigate(c.Request.Context(), claims.SessionID, req.View)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dispatch)
}

// Current godoc
// @Summary Resolve the session's current view
// @Tags Views
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /views/current [get]
func (h *ViewHandler) Current(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	dispatch, err := h.service.Current(c.Request.Context(), claims.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dispatch)
}

// Title godoc
// @Summary Header title for a view
// @Description Resolve the header title of any view without touching the session's current view
// @Tags Views
// @Produce json
// @Security BearerAuth
// @Param view path string true "View identifier"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /views/{view}/title [get]
func (h *ViewHandler) Title(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	view := models.View(c.Param("view"))
	response.JSON(c, http.StatusOK, gin.H{"view": view, "title": service.TitleFor(view)})
}

// Dispatch godoc
// @Summary Resolve what a view renders for the session role
// @Description Read-only resolution; the session's current view is left untouched
// @Tags Views
// @Produce json
// @Security BearerAuth
// @Param view path string true "View identifier"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /views/{view}/dispatch [get]
func (h *ViewHandler) Dispatch(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	view := models.View(c.Param("view"))
	dispatch := service.Resolve(claims.Role, view)
	response.JSON(c, http.StatusOK, dispatch)
}

// Navigation godoc
// @Summary Navigation set for the session role
// @Tags Views
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /views/navigation [get]
func (h *ViewHandler) Navigation(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	response.JSON(c, http.StatusOK, h.service.Navigation(claims.Role))
}
