package repository

import (
	"sync"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

// LeaveRepository stores student leave applications.
type LeaveRepository struct {
	mu     sync.RWMutex
	leaves []models.LeaveRequest
}

// NewLeaveRepository constructs a leave store with the seeded applications.
func NewLeaveRepository() *LeaveRepository {
	return &LeaveRepository{leaves: seedLeaves()}
}

// List returns every application in submission order.
func (r *LeaveRepository) List() []models.LeaveRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LeaveRequest, len(r.leaves))
	copy(out, r.leaves)
	return out
}

// Pending returns only the undecided applications.
func (r *LeaveRepository) Pending() []models.LeaveRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LeaveRequest, 0, len(r.leaves))
	for _, l := range r.leaves {
		if l.Status == models.LeavePending {
			out = append(out, l)
		}
	}
	return out
}

// Decide records the decision on a pending application. Deciding an already
// decided application is a conflict.
func (r *LeaveRepository) Decide(id string, status models.LeaveStatus) (models.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.leaves {
		if r.leaves[i].ID != id {
			continue
		}
		if r.leaves[i].Status != models.LeavePending {
			return models.LeaveRequest{}, appErrors.ErrConflict
		}
		r.leaves[i].Status = status
		return r.leaves[i], nil
	}
	return models.LeaveRequest{}, appErrors.ErrNotFound
}
