package repository

import (
	"sort"
	"sync"

	"github.com/edutrackr/edutrackr-api/internal/models"
)

// GamificationRepository serves the XP leaderboard and the badge catalog.
type GamificationRepository struct {
	mu      sync.RWMutex
	entries []models.LeaderboardEntry
	badges  []models.Badge
}

// NewGamificationRepository constructs the repository with the demo board.
func NewGamificationRepository() *GamificationRepository {
	return &GamificationRepository{
		entries: seedLeaderboard(),
		badges:  seedBadges(),
	}
}

// Leaderboard returns the board sorted by rank.
func (r *GamificationRepository) Leaderboard() []models.LeaderboardEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LeaderboardEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Badges returns the badge catalog.
func (r *GamificationRepository) Badges() []models.Badge {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Badge, len(r.badges))
	copy(out, r.badges)
	return out
}

// RecordXP adds experience to the named entry and re-ranks the board.
func (r *GamificationRepository) RecordXP(name string, amount int) []models.LeaderboardEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			r.entries[i].XP += amount
			r.entries[i].Trend = models.TrendUp
			break
		}
	}

	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].XP > r.entries[j].XP
	})
	for i := range r.entries {
		r.entries[i].Rank = i + 1
	}

	out := make([]models.LeaderboardEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
