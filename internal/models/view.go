package models

// View identifies one portal screen. The set is closed: navigation requests
// for anything else resolve to the not-implemented fallback.
type View string

const (
	ViewDashboard         View = "dashboard"
	ViewTimetable         View = "timetable"
	ViewAssignments       View = "assignments"
	ViewTimer             View = "timer"
	ViewMessages          View = "messages"
	ViewProfile           View = "profile"
	ViewAIPlanner         View = "ai-planner"
	ViewStudyTwin         View = "study-twin"
	ViewStressManagement  View = "stress-management"
	ViewSmartStudy        View = "smart-study"
	ViewGamification      View = "gamification"
	ViewLearningSwipe     View = "learning-swipe"
	ViewLeaves            View = "leaves"
	ViewCollegeUpload     View = "college-upload"
	ViewCollegeAttendance View = "college-attendance"
	ViewCollegeMarks      View = "college-marks"
	ViewCollegeNotices    View = "college-notices"
	ViewCollegeLeaves     View = "college-leaves"
)

// NavigateRequest asks to move the session to a view.
type NavigateRequest struct {
	View View `json:"view" validate:"required"`
}

// NavigationItem is one entry of the role-keyed navigation affordance set.
type NavigationItem struct {
	View  View   `json:"view"`
	Label string `json:"label"`
}

// Dispatch is the resolution of a view for a given role: which content
// collaborator renders it, under which title.
type Dispatch struct {
	View     View   `json:"view"`
	Content  string `json:"content"`
	Title    string `json:"title"`
	Fallback bool   `json:"fallback,omitempty"`
}
