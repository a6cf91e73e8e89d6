package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/dto"
	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

type dashboardLeaveStore interface {
	List() []models.LeaveRequest
	Pending() []models.LeaveRequest
}

// DashboardService aggregates the role-specific home screens from the demo
// dataset.
type DashboardService struct {
	leaves dashboardLeaveStore
	logger *zap.Logger
}

// NewDashboardService constructs a DashboardService instance.
func NewDashboardService(leaves dashboardLeaveStore, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{leaves: leaves, logger: logger}
}

// ForRole returns the dashboard payload matching the identity's role.
func (s *DashboardService) ForRole(ctx context.Context, role models.UserRole) (interface{}, error) {
	switch role {
	case models.RoleStudent:
		return s.Student(ctx), nil
	case models.RoleParent:
		return s.Parent(ctx), nil
	case models.RoleCollege:
		return s.College(ctx), nil
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "unknown role")
}

// Student builds the student home screen.
func (s *DashboardService) Student(ctx context.Context) *dto.StudentDashboardResponse {
	exams := upcomingExams(time.Now())
	next := exams[0]

	return &dto.StudentDashboardResponse{
		AttendancePercent: 85,
		AttendanceLabel:   "Good Standing",
		StudyStreakDays:   12,
		StreakWeek:        []bool{true, true, true, true, false, true, true},
		MarksTrend: []dto.MarksTrendPoint{
			{Name: "Test 1", Marks: 65},
			{Name: "Test 2", Marks: 72},
			{Name: "Mid", Marks: 85},
			{Name: "Test 3", Marks: 82},
			{Name: "Final", Marks: 90},
		},
		UpcomingExams: exams,
		NextExamCountdown: dto.ExamCountdown{
			Exam:     next,
			DaysLeft: daysUntil(next.Date, time.Now()),
		},
		NextClass: dto.NextClassHighlight{
			Subject: "Physics Laboratory",
			Room:    "Room 302",
			Time:    "10:00 AM",
		},
	}
}

// Parent builds the parent overview.
func (s *DashboardService) Parent(ctx context.Context) *dto.ParentDashboardResponse {
	return &dto.ParentDashboardResponse{
		Child: dto.ChildBanner{
			Name:              "Alex Johnson",
			Class:             "12-A",
			Roll:              "45",
			AttendancePercent: 85,
			AverageGrade:      "A",
			Remarks:           0,
		},
		RecentActivity: []dto.ActivityItem{
			{Kind: "absence", Summary: "Absent for Chemistry Class", When: "Today, 09:30 AM"},
			{Kind: "score", Summary: "Scored 92/100 in Math Test", When: "Yesterday"},
		},
		UpcomingExams: upcomingExams(time.Now()),
	}
}

// College builds the staff admin overview.
func (s *DashboardService) College(ctx context.Context) *dto.CollegeDashboardResponse {
	pending := s.leaves.Pending()
	recent := pending
	if len(recent) > 2 {
		recent = recent[:2]
	}

	return &dto.CollegeDashboardResponse{
		TotalStudents:        1240,
		AvgAttendancePercent: 92,
		PendingLeaves:        len(pending),
		RecentLeaves:         recent,
	}
}

func upcomingExams(now time.Time) []dto.UpcomingExam {
	return []dto.UpcomingExam{
		{ID: "1", Name: "Physics Mid-Term", Subject: "Physics", Date: now.AddDate(0, 0, 5).Format("Jan 2, 2006")},
		{ID: "2", Name: "Calculus Final", Subject: "Mathematics", Date: now.AddDate(0, 0, 14).Format("Jan 2, 2006")},
	}
}

func daysUntil(date string, now time.Time) int {
	exam, err := time.Parse("Jan 2, 2006", date)
	if err != nil {
		return 0
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(exam.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
