package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
	"github.com/edutrackr/edutrackr-api/internal/service"
)

func newViewHandlerFixture(role models.UserRole) (*ViewHandler, string) {
	sessions := repository.NewSessionRepository()
	var stats *models.GamificationStats
	if role == models.RoleStudent {
		stats = &models.GamificationStats{Level: 1, XP: 0, MaxXP: 100}
	}
	session := sessions.Create(models.NewIdentity("u-1", "Test User", role, "", stats))
	return NewViewHandler(service.NewViewService(sessions, nil)), session.ID
}

func TestViewHandler_NavigateResolvesDashboard(t *testing.T) {
	handler, sessionID := newViewHandlerFixture(models.RoleParent)

	c, rec := jsonContext(t, http.MethodPost, "/views/navigate", models.NavigateRequest{View: models.ViewDashboard})
	authenticate(c, sessionID, models.RoleParent)
	handler.Navigate(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var dispatch models.Dispatch
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &dispatch))
	assert.Equal(t, "parent-dashboard", dispatch.Content)
	assert.False(t, dispatch.Fallback)
}

func TestViewHandler_UnknownViewFallsBack(t *testing.T) {
	handler, sessionID := newViewHandlerFixture(models.RoleStudent)

	c, rec := jsonContext(t, http.MethodPost, "/views/navigate", models.NavigateRequest{View: "mystery-screen"})
	authenticate(c, sessionID, models.RoleStudent)
	handler.Navigate(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var dispatch models.Dispatch
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &dispatch))
	assert.True(t, dispatch.Fallback)
	assert.Equal(t, "EduTrackr", dispatch.Title)
}

func TestViewHandler_CurrentTracksNavigation(t *testing.T) {
	handler, sessionID := newViewHandlerFixture(models.RoleStudent)

	c, rec := jsonContext(t, http.MethodPost, "/views/navigate", models.NavigateRequest{View: models.ViewTimetable})
	authenticate(c, sessionID, models.RoleStudent)
	handler.Navigate(c)
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = jsonContext(t, http.MethodGet, "/views/current", nil)
	authenticate(c, sessionID, models.RoleStudent)
	handler.Current(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var dispatch models.Dispatch
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &dispatch))
	assert.Equal(t, models.ViewTimetable, dispatch.View)
}

func TestViewHandler_TitleWithoutNavigating(t *testing.T) {
	handler, sessionID := newViewHandlerFixture(models.RoleStudent)

	c, rec := jsonContext(t, http.MethodGet, "/views/timetable/title", nil)
	c.Params = gin.Params{{Key: "view", Value: "timetable"}}
	authenticate(c, sessionID, models.RoleStudent)
	handler.Title(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, "Schedule", body["title"])

	c, rec = jsonContext(t, http.MethodGet, "/views/current", nil)
	authenticate(c, sessionID, models.RoleStudent)
	handler.Current(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var dispatch models.Dispatch
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &dispatch))
	assert.Equal(t, models.ViewDashboard, dispatch.View)
}

func TestViewHandler_DispatchBranchesOnRole(t *testing.T) {
	handler, sessionID := newViewHandlerFixture(models.RoleCollege)

	c, rec := jsonContext(t, http.MethodGet, "/views/dashboard/dispatch", nil)
	c.Params = gin.Params{{Key: "view", Value: "dashboard"}}
	authenticate(c, sessionID, models.RoleCollege)
	handler.Dispatch(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var dispatch models.Dispatch
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &dispatch))
	assert.Equal(t, "college-dashboard", dispatch.Content)
	assert.False(t, dispatch.Fallback)

	c, rec = jsonContext(t, http.MethodGet, "/views/mystery-screen/dispatch", nil)
	c.Params = gin.Params{{Key: "view", Value: "mystery-screen"}}
	authenticate(c, sessionID, models.RoleCollege)
	handler.Dispatch(c)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &dispatch))
	assert.True(t, dispatch.Fallback)
	assert.Equal(t, "work-in-progress", dispatch.Content)
}

func TestViewHandler_NavigationSetByRole(t *testing.T) {
	handler, sessionID := newViewHandlerFixture(models.RoleCollege)

	c, rec := jsonContext(t, http.MethodGet, "/views/navigation", nil)
	authenticate(c, sessionID, models.RoleCollege)
	handler.Navigation(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.NavigationItem
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
	assert.Len(t, items, 3)
}

func TestViewHandler_RequiresClaims(t *testing.T) {
	handler, _ := newViewHandlerFixture(models.RoleStudent)

	c, rec := jsonContext(t, http.MethodGet, "/views/current", nil)
	handler.Current(c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
