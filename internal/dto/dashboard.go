package dto

import "github.com/edutrackr/edutrackr-api/internal/models"

// StudentDashboardResponse aggregates the student home screen payload.
type StudentDashboardResponse struct {
	AttendancePercent int                 `json:"attendancePercent"`
	AttendanceLabel   string              `json:"attendanceLabel"`
	StudyStreakDays   int                 `json:"studyStreakDays"`
	StreakWeek        []bool              `json:"streakWeek"`
	MarksTrend        []MarksTrendPoint   `json:"marksTrend"`
	UpcomingExams     []UpcomingExam      `json:"upcomingExams"`
	NextExamCountdown ExamCountdown       `json:"nextExamCountdown"`
	NextClass         NextClassHighlight  `json:"nextClass"`
}

// MarksTrendPoint is one point of the performance trend series.
type MarksTrendPoint struct {
	Name  string `json:"name"`
	Marks int    `json:"marks"`
}

// UpcomingExam lists one scheduled exam.
type UpcomingExam struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
}

// ExamCountdown is the banner countdown to the nearest exam.
type ExamCountdown struct {
	Exam     UpcomingExam `json:"exam"`
	DaysLeft int          `json:"daysLeft"`
}

// NextClassHighlight names the next class session.
type NextClassHighlight struct {
	Subject string `json:"subject"`
	Room    string `json:"room"`
	Time    string `json:"time"`
}

// ParentDashboardResponse aggregates the parent overview payload.
type ParentDashboardResponse struct {
	Child          ChildBanner      `json:"child"`
	RecentActivity []ActivityItem   `json:"recentActivity"`
	UpcomingExams  []UpcomingExam   `json:"upcomingExams"`
}

// ChildBanner summarises the monitored student.
type ChildBanner struct {
	Name              string `json:"name"`
	Class             string `json:"class"`
	Roll              string `json:"roll"`
	AttendancePercent int    `json:"attendancePercent"`
	AverageGrade      string `json:"averageGrade"`
	Remarks           int    `json:"remarks"`
}

// ActivityItem is one recent-activity feed line.
type ActivityItem struct {
	Kind    string `json:"kind"`
	Summary string `json:"summary"`
	When    string `json:"when"`
}

// CollegeDashboardResponse aggregates the staff admin overview.
type CollegeDashboardResponse struct {
	TotalStudents        int                   `json:"totalStudents"`
	AvgAttendancePercent int                   `json:"avgAttendancePercent"`
	PendingLeaves        int                   `json:"pendingLeaves"`
	RecentLeaves         []models.LeaveRequest `json:"recentLeaves"`
}
