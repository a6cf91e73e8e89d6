package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
)

type viewSessionStore interface {
	Get(id string) (*models.Session, error)
	SetView(id string, view models.View) (*models.Session, error)
}

// ViewService resolves portal views: it tracks the session's current view,
// maps views to the collaborator that renders them and serves the role-keyed
// navigation sets. Navigation itself is unconditional; role only influences
// which content a view resolves to.
type ViewService struct {
	sessions viewSessionStore
	logger   *zap.Logger
}

// NewViewService constructs a ViewService instance.
func NewViewService(sessions viewSessionStore, logger *zap.Logger) *ViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViewService{sessions: sessions, logger: logger}
}

// Navigate records the requested view on the session and resolves it. Any
// view value is accepted; unknown views resolve to the fallback screen.
func (s *ViewService) Navigate(ctx context.Context, sessionID string, view models.View) (*models.Dispatch, error) {
	session, err := s.sessions.SetView(sessionID, view)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("view changed",
		zap.String("session_id", sessionID),
		zap.String("view", string(view)),
	)
	dispatch := Resolve(session.Identity.Role, view)
	return &dispatch, nil
}

// Current resolves the view the session is looking at.
func (s *ViewService) Current(ctx context.Context, sessionID string) (*models.Dispatch, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	dispatch := Resolve(session.Identity.Role, session.CurrentView)
	return &dispatch, nil
}

// Navigation returns the fixed navigation set for a role.
func (s *ViewService) Navigation(role models.UserRole) []models.NavigationItem {
	switch role {
	case models.RoleStudent:
		return []models.NavigationItem{
			{View: models.ViewDashboard, Label: "Home"},
			{View: models.ViewTimetable, Label: "Schedule"},
			{View: models.ViewSmartStudy, Label: "Learn"},
			{View: models.ViewStudyTwin, Label: "Twin"},
			{View: models.ViewStressManagement, Label: "Wellness"},
		}
	case models.RoleParent:
		return []models.NavigationItem{
			{View: models.ViewDashboard, Label: "Overview"},
			{View: models.ViewMessages, Label: "Chat"},
			{View: models.ViewLeaves, Label: "Leaves"},
			{View: models.ViewProfile, Label: "Profile"},
		}
	case models.RoleCollege:
		return []models.NavigationItem{
			{View: models.ViewDashboard, Label: "Admin"},
			{View: models.ViewCollegeUpload, Label: "Manage"},
			{View: models.ViewMessages, Label: "Notices"},
		}
	}
	return []models.NavigationItem{}
}

// Resolve maps a view and role to the content collaborator rendering it.
// The dashboard branches on role; every other view is role-independent.
// Views outside the known set resolve to the work-in-progress fallback.
func Resolve(role models.UserRole, view models.View) models.Dispatch {
	content, ok := contentFor(role, view)
	if !ok {
		return models.Dispatch{
			View:     view,
			Content:  "work-in-progress",
			Title:    TitleFor(view),
			Fallback: true,
		}
	}
	return models.Dispatch{View: view, Content: content, Title: TitleFor(view)}
}

func contentFor(role models.UserRole, view models.View) (string, bool) {
	switch view {
	case models.ViewDashboard:
		switch role {
		case models.RoleStudent:
			return "student-dashboard", true
		case models.RoleParent:
			return "parent-dashboard", true
		case models.RoleCollege:
			return "college-dashboard", true
		}
		return "", false
	case models.ViewTimetable:
		return "timetable", true
	case models.ViewTimer:
		return "study-timer", true
	case models.ViewAIPlanner:
		return "ai-planner", true
	case models.ViewAssignments:
		return "assignments", true
	case models.ViewMessages:
		return "chat", true
	case models.ViewStudyTwin:
		return "study-twin", true
	case models.ViewStressManagement:
		return "stress-management", true
	case models.ViewSmartStudy:
		return "smart-study", true
	case models.ViewGamification:
		return "gamification", true
	case models.ViewLearningSwipe:
		return "learning-swipe", true
	case models.ViewCollegeAttendance:
		return "attendance-marker", true
	case models.ViewCollegeMarks:
		return "marks-upload", true
	case models.ViewCollegeNotices:
		return "notice-manager", true
	case models.ViewCollegeLeaves:
		return "leave-approval", true
	case models.ViewCollegeUpload:
		return "marks-upload", true
	case models.ViewProfile:
		return "profile", true
	}
	return "", false
}

// TitleFor returns the header title for a view, falling back to the portal
// name for anything unrecognised.
func TitleFor(view models.View) string {
	switch view {
	case models.ViewDashboard:
		return "Dashboard"
	case models.ViewTimetable:
		return "Schedule"
	case models.ViewTimer:
		return "Focus Timer"
	case models.ViewAIPlanner:
		return "Study Plan"
	case models.ViewAssignments:
		return "Assignments"
	case models.ViewMessages:
		return "Messages"
	case models.ViewStudyTwin:
		return "StudyTwin"
	case models.ViewStressManagement:
		return "Wellness"
	case models.ViewSmartStudy:
		return "Smart Tools"
	case models.ViewGamification:
		return "Rankings"
	case models.ViewLearningSwipe:
		return "Daily Learning"
	case models.ViewProfile:
		return "Profile"
	case models.ViewCollegeAttendance:
		return "Attendance"
	case models.ViewCollegeMarks:
		return "Upload Marks"
	case models.ViewCollegeNotices:
		return "Notices"
	case models.ViewCollegeLeaves:
		return "Leave Requests"
	case models.ViewCollegeUpload:
		return "Manage"
	}
	return "EduTrackr"
}
