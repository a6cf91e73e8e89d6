package repository

import (
	"sync"
	"time"

	"github.com/edutrackr/edutrackr-api/internal/models"
)

// WellnessRepository holds the affirmation pool and per-session mood
// check-ins.
type WellnessRepository struct {
	mu           sync.RWMutex
	affirmations []string
	moods        map[string][]models.MoodEntry
}

// NewWellnessRepository constructs the repository with the seeded pool.
func NewWellnessRepository() *WellnessRepository {
	return &WellnessRepository{
		affirmations: seedAffirmations(),
		moods:        make(map[string][]models.MoodEntry),
	}
}

// Affirmations returns the full pool.
func (r *WellnessRepository) Affirmations() []string {
	out := make([]string, len(r.affirmations))
	copy(out, r.affirmations)
	return out
}

// RecordMood appends a mood check-in for the session.
func (r *WellnessRepository) RecordMood(sessionID, mood string) models.MoodEntry {
	entry := models.MoodEntry{Mood: mood, RecordedAt: time.Now()}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.moods[sessionID] = append(r.moods[sessionID], entry)

	return entry
}

// Moods returns the session's check-in history in order.
func (r *WellnessRepository) Moods(sessionID string) []models.MoodEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.moods[sessionID]
	out := make([]models.MoodEntry, len(entries))
	copy(out, entries)
	return out
}
