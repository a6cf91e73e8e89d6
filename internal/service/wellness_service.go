package service

import (
	"context"
	"math/rand"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

type wellnessStore interface {
	Affirmations() []string
	RecordMood(sessionID, mood string) models.MoodEntry
	Moods(sessionID string) []models.MoodEntry
}

// WellnessService serves the stress-management screen: daily affirmations,
// mood check-ins and the guided breathing cycle.
type WellnessService struct {
	store     wellnessStore
	validator *validator.Validate
	logger    *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewWellnessService constructs a WellnessService instance.
func NewWellnessService(store wellnessStore, validate *validator.Validate, logger *zap.Logger, seed int64) *WellnessService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &WellnessService{
		store:     store,
		validator: validate,
		logger:    logger,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Affirmation picks one line from the pool at random.
func (s *WellnessService) Affirmation(ctx context.Context) (string, error) {
	pool := s.store.Affirmations()
	if len(pool) == 0 {
		return "", appErrors.Clone(appErrors.ErrNotFound, "no affirmations available")
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(pool))
	s.mu.Unlock()

	return pool[idx], nil
}

// Affirmations returns the full pool.
func (s *WellnessService) Affirmations(ctx context.Context) []string {
	return s.store.Affirmations()
}

// CheckIn records a mood for the session and returns the updated history.
func (s *WellnessService) CheckIn(ctx context.Context, sessionID string, req models.MoodCheckinRequest) ([]models.MoodEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mood payload")
	}

	s.store.RecordMood(sessionID, req.Mood)
	s.logger.Debug("mood recorded", zap.String("session_id", sessionID), zap.String("mood", req.Mood))
	return s.store.Moods(sessionID), nil
}

// Moods returns the session's check-in history.
func (s *WellnessService) Moods(ctx context.Context, sessionID string) []models.MoodEntry {
	return s.store.Moods(sessionID)
}

// Breathing returns the guided breathing cycle. Four seconds per phase.
func (s *WellnessService) Breathing(ctx context.Context) models.BreathingPattern {
	return models.BreathingPattern{InhaleSeconds: 4, HoldSeconds: 4, ExhaleSeconds: 4}
}
