package repository

import (
	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

// RosterRepository serves the seeded class roster. The roster is read-only
// after construction so no locking is needed.
type RosterRepository struct {
	students []models.RosterStudent
}

// NewRosterRepository constructs a roster repository with the demo class.
func NewRosterRepository() *RosterRepository {
	return &RosterRepository{students: seedRoster()}
}

// List returns every student in roll order.
func (r *RosterRepository) List() []models.RosterStudent {
	out := make([]models.RosterStudent, len(r.students))
	copy(out, r.students)
	return out
}

// Get returns the student with the given id.
func (r *RosterRepository) Get(id string) (models.RosterStudent, error) {
	for _, s := range r.students {
		if s.ID == id {
			return s, nil
		}
	}
	return models.RosterStudent{}, appErrors.ErrNotFound
}

// Exists reports whether the id belongs to the roster.
func (r *RosterRepository) Exists(id string) bool {
	_, err := r.Get(id)
	return err == nil
}
