package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
)

func newViewFixture(role models.UserRole) (*ViewService, *models.Session) {
	sessions := repository.NewSessionRepository()
	var stats *models.GamificationStats
	if role == models.RoleStudent {
		stats = &models.GamificationStats{Level: 12, XP: 2320, MaxXP: 3000}
	}
	session := sessions.Create(models.NewIdentity("u1", "Alex Johnson", role, "", stats))
	return NewViewService(sessions, zap.NewNop()), session
}

func TestViewServiceSessionStartsAtDashboard(t *testing.T) {
	svc, session := newViewFixture(models.RoleStudent)

	dispatch, err := svc.Current(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ViewDashboard, dispatch.View)
	assert.Equal(t, "student-dashboard", dispatch.Content)
	assert.Equal(t, "Dashboard", dispatch.Title)
}

func TestViewServiceDashboardBranchesByRole(t *testing.T) {
	cases := []struct {
		role    models.UserRole
		content string
	}{
		{models.RoleStudent, "student-dashboard"},
		{models.RoleParent, "parent-dashboard"},
		{models.RoleCollege, "college-dashboard"},
	}
	for _, tc := range cases {
		dispatch := Resolve(tc.role, models.ViewDashboard)
		assert.Equal(t, tc.content, dispatch.Content, string(tc.role))
		assert.False(t, dispatch.Fallback)
	}
}

func TestViewServiceNavigateUpdatesSession(t *testing.T) {
	svc, session := newViewFixture(models.RoleStudent)
	ctx := context.Background()

	dispatch, err := svc.Navigate(ctx, session.ID, models.ViewTimetable)
	require.NoError(t, err)
	assert.Equal(t, "timetable", dispatch.Content)
	assert.Equal(t, "Schedule", dispatch.Title)

	current, err := svc.Current(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ViewTimetable, current.View)
}

func TestViewServiceNavigateIsUnconditional(t *testing.T) {
	// A parent can navigate to a college admin view; the router does not
	// gate navigation by role.
	svc, session := newViewFixture(models.RoleParent)

	dispatch, err := svc.Navigate(context.Background(), session.ID, models.ViewCollegeMarks)
	require.NoError(t, err)
	assert.Equal(t, "marks-upload", dispatch.Content)
	assert.False(t, dispatch.Fallback)
}

func TestViewServiceUnknownViewFallsBack(t *testing.T) {
	svc, session := newViewFixture(models.RoleStudent)

	dispatch, err := svc.Navigate(context.Background(), session.ID, models.View("settings"))
	require.NoError(t, err)
	assert.True(t, dispatch.Fallback)
	assert.Equal(t, "work-in-progress", dispatch.Content)
	assert.Equal(t, "EduTrackr", dispatch.Title)
}

func TestViewServiceLeavesViewIsFallback(t *testing.T) {
	dispatch := Resolve(models.RoleParent, models.ViewLeaves)
	assert.True(t, dispatch.Fallback)
	assert.Equal(t, "EduTrackr", dispatch.Title)
}

func TestViewServiceNavigationSets(t *testing.T) {
	svc, _ := newViewFixture(models.RoleStudent)

	student := svc.Navigation(models.RoleStudent)
	require.Len(t, student, 5)
	assert.Equal(t, "Home", student[0].Label)
	assert.Equal(t, models.ViewStressManagement, student[4].View)

	parent := svc.Navigation(models.RoleParent)
	require.Len(t, parent, 4)
	assert.Equal(t, models.ViewLeaves, parent[2].View)

	college := svc.Navigation(models.RoleCollege)
	require.Len(t, college, 3)
	assert.Equal(t, "Admin", college[0].Label)
	assert.Equal(t, models.ViewCollegeUpload, college[1].View)
}
