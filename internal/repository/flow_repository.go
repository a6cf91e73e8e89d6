package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

// FlowRepository keeps in-progress login flows in memory. Flows are
// short-lived and expire after the configured TTL.
type FlowRepository struct {
	mu    sync.Mutex
	flows map[string]*models.LoginFlow
	ttl   time.Duration
}

// NewFlowRepository constructs a flow repository with the given TTL.
func NewFlowRepository(ttl time.Duration) *FlowRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &FlowRepository{
		flows: make(map[string]*models.LoginFlow),
		ttl:   ttl,
	}
}

// Create registers a fresh flow at the role selection step.
func (r *FlowRepository) Create() *models.LoginFlow {
	now := time.Now()
	flow := &models.LoginFlow{
		ID:        uuid.NewString(),
		Step:      models.StepRoleSelection,
		Form:      models.LoginForm{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(now)
	r.flows[flow.ID] = flow

	return flow.Clone()
}

// Get returns a snapshot of the flow with the given id.
func (r *FlowRepository) Get(id string) (*models.LoginFlow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flow, ok := r.flows[id]
	if !ok || r.expired(flow, time.Now()) {
		return nil, appErrors.ErrNotFound
	}

	return flow.Clone(), nil
}

// Mutate applies fn to the stored flow under the repository lock. The
// callback receives the live flow; any error aborts the mutation.
func (r *FlowRepository) Mutate(id string, fn func(*models.LoginFlow) error) (*models.LoginFlow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flow, ok := r.flows[id]
	if !ok || r.expired(flow, time.Now()) {
		return nil, appErrors.ErrNotFound
	}

	if err := fn(flow); err != nil {
		return nil, err
	}
	flow.UpdatedAt = time.Now()

	return flow.Clone(), nil
}

// Delete removes the flow once it has been consumed.
func (r *FlowRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, id)
}

func (r *FlowRepository) expired(flow *models.LoginFlow, now time.Time) bool {
	return now.Sub(flow.UpdatedAt) > r.ttl
}

func (r *FlowRepository) sweepLocked(now time.Time) {
	for id, flow := range r.flows {
		if r.expired(flow, now) {
			delete(r.flows, id)
		}
	}
}
