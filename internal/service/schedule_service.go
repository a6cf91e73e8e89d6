package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

type scheduleStore interface {
	Day(day string) ([]models.ClassSession, error)
	Week() map[string][]models.ClassSession
	Assignments() []models.Assignment
	ToggleAssignment(id string) (models.Assignment, error)
}

// ScheduleService serves the weekly timetable, the assignment list and the
// focus timer presets.
type ScheduleService struct {
	store  scheduleStore
	logger *zap.Logger
}

// NewScheduleService constructs a ScheduleService instance.
func NewScheduleService(store scheduleStore, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{store: store, logger: logger}
}

// Day returns the sessions for one weekday. Unknown days are a validation
// error, not an empty list.
func (s *ScheduleService) Day(ctx context.Context, day string) ([]models.ClassSession, error) {
	sessions, err := s.store.Day(day)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown weekday")
	}
	return sessions, nil
}

// Week returns the full timetable.
func (s *ScheduleService) Week(ctx context.Context) map[string][]models.ClassSession {
	return s.store.Week()
}

// DefaultDay resolves which weekday the timetable should open on: today when
// it is a school day, Monday on weekends.
func (s *ScheduleService) DefaultDay(now time.Time) string {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return "Mon"
	default:
		return now.Weekday().String()[:3]
	}
}

// Assignments returns the assignment list.
func (s *ScheduleService) Assignments(ctx context.Context) []models.Assignment {
	return s.store.Assignments()
}

// ToggleAssignment flips the completion state of one assignment.
func (s *ScheduleService) ToggleAssignment(ctx context.Context, id string) (*models.Assignment, error) {
	a, err := s.store.ToggleAssignment(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	s.logger.Debug("assignment toggled", zap.String("assignment_id", id), zap.Bool("completed", a.Completed))
	return &a, nil
}

// TimerPresets returns the focus timer defaults and today's progress.
func (s *ScheduleService) TimerPresets(ctx context.Context) models.TimerPresets {
	return models.TimerPresets{
		FocusSeconds:     25 * 60,
		BreakSeconds:     5 * 60,
		DailyGoal:        "4h 30m",
		CompletedToday:   "1h 15m",
		SessionsComplete: 2,
	}
}

// Weekdays exposes the timetable day order.
func (s *ScheduleService) Weekdays() []string {
	return repository.Weekdays
}
