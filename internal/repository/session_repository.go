package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

// SessionRepository keeps authenticated sessions in memory. A session holds
// the published identity and the view the session is currently looking at.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewSessionRepository constructs an empty session store.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*models.Session)}
}

// Create stores a new session for the given identity, starting at the
// dashboard view.
func (r *SessionRepository) Create(identity models.Identity) *models.Session {
	session := &models.Session{
		ID:          uuid.NewString(),
		Identity:    identity,
		CurrentView: models.ViewDashboard,
		CreatedAt:   time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session

	return session.Clone()
}

// Get returns a snapshot of the session with the given id.
func (r *SessionRepository) Get(id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, appErrors.ErrUnauthorized
	}

	return session.Clone(), nil
}

// SetView records the view the session navigated to.
func (r *SessionRepository) SetView(id string, view models.View) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, appErrors.ErrUnauthorized
	}
	session.CurrentView = view

	return session.Clone(), nil
}

// AddXP bumps the gamification stats on a student session, rolling the level
// when the XP bar fills.
func (r *SessionRepository) AddXP(id string, amount int) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, appErrors.ErrUnauthorized
	}
	stats := session.Identity.Gamification
	if stats == nil {
		return nil, appErrors.ErrForbidden
	}

	stats.XP += amount
	for stats.XP >= stats.MaxXP {
		stats.XP -= stats.MaxXP
		stats.Level++
	}

	return session.Clone(), nil
}

// Delete removes the session, invalidating any tokens bound to it.
func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
