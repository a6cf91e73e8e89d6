package repository

import (
	"sync"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

// PartnerRepository serves the matching deck and tracks per-session swipe
// state. Skipped cards cycle back once the deck is exhausted.
type PartnerRepository struct {
	mu    sync.Mutex
	deck  []models.StudyPartner
	state map[string]*deckState
}

type deckState struct {
	cursor  int
	matches []string
}

func (st *deckState) matched(id string) bool {
	for _, m := range st.matches {
		if m == id {
			return true
		}
	}
	return false
}

// NewPartnerRepository constructs the repository with the seeded deck.
func NewPartnerRepository() *PartnerRepository {
	return &PartnerRepository{
		deck:  seedPartners(),
		state: make(map[string]*deckState),
	}
}

// Deck returns every candidate.
func (r *PartnerRepository) Deck() []models.StudyPartner {
	out := make([]models.StudyPartner, len(r.deck))
	copy(out, r.deck)
	return out
}

// Current returns the candidate the session is looking at.
func (r *PartnerRepository) Current(sessionID string) models.StudyPartner {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.stateFor(sessionID)
	return r.deck[st.cursor]
}

// Swipe records the decision on the named candidate. A like matches
// immediately; a skip advances the cursor, wrapping at the end of the deck.
func (r *PartnerRepository) Swipe(sessionID, partnerID string, like bool) (models.SwipeResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.stateFor(sessionID)
	current := r.deck[st.cursor]
	if current.ID != partnerID {
		return models.SwipeResult{}, appErrors.Clone(appErrors.ErrConflict, "swipe targets a card that is no longer on top")
	}

	if like {
		if !st.matched(current.ID) {
			st.matches = append(st.matches, current.ID)
		}
		matched := current
		return models.SwipeResult{
			Matched:   true,
			Partner:   &matched,
			Remaining: len(r.deck) - st.cursor - 1,
		}, nil
	}

	st.cursor = (st.cursor + 1) % len(r.deck)
	return models.SwipeResult{Remaining: len(r.deck) - st.cursor}, nil
}

// Matches returns the partners the session has matched with.
func (r *PartnerRepository) Matches(sessionID string) []models.StudyPartner {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.stateFor(sessionID)
	out := make([]models.StudyPartner, 0, len(st.matches))
	for _, id := range st.matches {
		for _, p := range r.deck {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out
}

// IsMatch reports whether the session has matched with the partner.
func (r *PartnerRepository) IsMatch(sessionID, partnerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stateFor(sessionID).matched(partnerID)
}

func (r *PartnerRepository) stateFor(sessionID string) *deckState {
	st, ok := r.state[sessionID]
	if !ok {
		st = &deckState{}
		r.state[sessionID] = st
	}
	return st
}
