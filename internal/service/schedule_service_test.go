package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

func newTestScheduleService() *ScheduleService {
	return NewScheduleService(repository.NewScheduleRepository(), nil)
}

func TestScheduleService_DaySessions(t *testing.T) {
	svc := newTestScheduleService()

	sessions, err := svc.Day(context.Background(), "Mon")
	require.NoError(t, err)
	require.NotEmpty(t, sessions)

	live := 0
	for _, s := range sessions {
		if s.Status == models.SessionLive {
			live++
		}
	}
	assert.Equal(t, 1, live)
}

func TestScheduleService_UnknownDay(t *testing.T) {
	svc := newTestScheduleService()

	_, err := svc.Day(context.Background(), "Sunday")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduleService_WeekCoversAllDays(t *testing.T) {
	svc := newTestScheduleService()

	week := svc.Week(context.Background())
	for _, day := range svc.Weekdays() {
		assert.NotEmpty(t, week[day], day)
	}
}

func TestScheduleService_DefaultDay(t *testing.T) {
	svc := newTestScheduleService()

	// 2024-10-23 is a Wednesday, 2024-10-26 a Saturday.
	wednesday := time.Date(2024, 10, 23, 9, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 10, 26, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 10, 27, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "Wed", svc.DefaultDay(wednesday))
	assert.Equal(t, "Mon", svc.DefaultDay(saturday))
	assert.Equal(t, "Mon", svc.DefaultDay(sunday))
}

func TestScheduleService_ToggleAssignment(t *testing.T) {
	svc := newTestScheduleService()
	assignments := svc.Assignments(context.Background())
	require.NotEmpty(t, assignments)

	target := assignments[0]
	toggled, err := svc.ToggleAssignment(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, !target.Completed, toggled.Completed)

	toggled, err = svc.ToggleAssignment(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, target.Completed, toggled.Completed)

	_, err = svc.ToggleAssignment(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestScheduleService_TimerPresets(t *testing.T) {
	svc := newTestScheduleService()

	presets := svc.TimerPresets(context.Background())
	assert.Equal(t, 25*60, presets.FocusSeconds)
	assert.Equal(t, 5*60, presets.BreakSeconds)
	assert.Equal(t, "4h 30m", presets.DailyGoal)
}
