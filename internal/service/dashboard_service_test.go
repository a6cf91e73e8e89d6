package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/dto"
	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
)

func TestDashboardServiceStudent(t *testing.T) {
	svc := NewDashboardService(repository.NewLeaveRepository(), zap.NewNop())

	got := svc.Student(context.Background())
	assert.Equal(t, 85, got.AttendancePercent)
	assert.Equal(t, "Good Standing", got.AttendanceLabel)
	assert.Equal(t, 12, got.StudyStreakDays)
	require.Len(t, got.StreakWeek, 7)
	assert.False(t, got.StreakWeek[4])

	require.Len(t, got.MarksTrend, 5)
	assert.Equal(t, dto.MarksTrendPoint{Name: "Final", Marks: 90}, got.MarksTrend[4])

	require.Len(t, got.UpcomingExams, 2)
	assert.Equal(t, "Physics Mid-Term", got.NextExamCountdown.Exam.Name)
	assert.Equal(t, 5, got.NextExamCountdown.DaysLeft)
	assert.Equal(t, "Physics Laboratory", got.NextClass.Subject)
}

func TestDashboardServiceParent(t *testing.T) {
	svc := NewDashboardService(repository.NewLeaveRepository(), zap.NewNop())

	got := svc.Parent(context.Background())
	assert.Equal(t, "Alex Johnson", got.Child.Name)
	assert.Equal(t, "12-A", got.Child.Class)
	assert.Equal(t, "A", got.Child.AverageGrade)
	require.Len(t, got.RecentActivity, 2)
	assert.Equal(t, "absence", got.RecentActivity[0].Kind)
}

func TestDashboardServiceCollege(t *testing.T) {
	leaves := repository.NewLeaveRepository()
	svc := NewDashboardService(leaves, zap.NewNop())

	got := svc.College(context.Background())
	assert.Equal(t, 1240, got.TotalStudents)
	assert.Equal(t, 92, got.AvgAttendancePercent)
	assert.Equal(t, 3, got.PendingLeaves)
	require.Len(t, got.RecentLeaves, 2)

	// Deciding a leave shrinks the pending counters.
	_, err := leaves.Decide("1", models.LeaveApproved)
	require.NoError(t, err)
	got = svc.College(context.Background())
	assert.Equal(t, 2, got.PendingLeaves)
}

func TestDashboardServiceForRole(t *testing.T) {
	svc := NewDashboardService(repository.NewLeaveRepository(), zap.NewNop())

	for _, role := range []models.UserRole{models.RoleStudent, models.RoleParent, models.RoleCollege} {
		payload, err := svc.ForRole(context.Background(), role)
		require.NoError(t, err)
		assert.NotNil(t, payload, string(role))
	}

	_, err := svc.ForRole(context.Background(), models.UserRole("GHOST"))
	require.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, daysUntil(now.AddDate(0, 0, 5).Format("Jan 2, 2006"), now))
	assert.Equal(t, 0, daysUntil("not a date", now))
	assert.Equal(t, 0, daysUntil(now.AddDate(0, 0, -3).Format("Jan 2, 2006"), now))
}
