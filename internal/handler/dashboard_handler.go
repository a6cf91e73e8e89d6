package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/service"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// DashboardHandler serves the role-specific dashboard summaries.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Summary godoc
// @Summary Dashboard for the session role
// @Description Student, parent and college sessions each get their own dashboard shape
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	summary, err := h.service.ForRole(c.Request.Context(), claims.Role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}
