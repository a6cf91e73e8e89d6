package repository

import (
	"sync"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

// Weekdays lists the timetable days in display order.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// ScheduleRepository holds the weekly timetable and the assignment list. The
// timetable is static; assignments can be toggled complete.
type ScheduleRepository struct {
	mu          sync.RWMutex
	week        map[string][]models.ClassSession
	assignments []models.Assignment
}

// NewScheduleRepository constructs a schedule repository with the demo week.
func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		week:        seedTimetable(),
		assignments: seedAssignments(),
	}
}

// Day returns the sessions scheduled for the given weekday.
func (r *ScheduleRepository) Day(day string) ([]models.ClassSession, error) {
	sessions, ok := r.week[day]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	out := make([]models.ClassSession, len(sessions))
	copy(out, sessions)
	return out, nil
}

// Week returns the full timetable keyed by weekday.
func (r *ScheduleRepository) Week() map[string][]models.ClassSession {
	out := make(map[string][]models.ClassSession, len(r.week))
	for day, sessions := range r.week {
		cp := make([]models.ClassSession, len(sessions))
		copy(cp, sessions)
		out[day] = cp
	}
	return out
}

// Assignments returns the assignment list.
func (r *ScheduleRepository) Assignments() []models.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Assignment, len(r.assignments))
	copy(out, r.assignments)
	return out
}

// ToggleAssignment flips the completed flag on one assignment.
func (r *ScheduleRepository) ToggleAssignment(id string) (models.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.assignments {
		if r.assignments[i].ID == id {
			r.assignments[i].Completed = !r.assignments[i].Completed
			return r.assignments[i], nil
		}
	}
	return models.Assignment{}, appErrors.ErrNotFound
}
