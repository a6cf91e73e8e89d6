package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

type leaderboardStore interface {
	Leaderboard() []models.LeaderboardEntry
	Badges() []models.Badge
	RecordXP(name string, amount int) []models.LeaderboardEntry
}

type xpSessionStore interface {
	Get(id string) (*models.Session, error)
	AddXP(id string, amount int) (*models.Session, error)
}

// GamificationService serves the leaderboard and badge catalog and awards
// XP to student sessions.
type GamificationService struct {
	board     leaderboardStore
	sessions  xpSessionStore
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGamificationService constructs a GamificationService instance.
func NewGamificationService(board leaderboardStore, sessions xpSessionStore, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *GamificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &GamificationService{
		board:     board,
		sessions:  sessions,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
	}
}

// Leaderboard returns the ranked XP board.
func (s *GamificationService) Leaderboard(ctx context.Context) []models.LeaderboardEntry {
	return s.board.Leaderboard()
}

// Badges returns the achievement catalog.
func (s *GamificationService) Badges(ctx context.Context) []models.Badge {
	return s.board.Badges()
}

// AwardXP grants experience to the session's student, rolling the level when
// the bar fills and re-ranking the leaderboard. Sessions without
// gamification stats are refused.
func (s *GamificationService) AwardXP(ctx context.Context, sessionID string, req models.AwardXPRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid award payload")
	}

	session, err := s.sessions.AddXP(sessionID, req.Amount)
	if err != nil {
		if appErrors.FromError(err).Code == appErrors.ErrForbidden.Code {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "only student sessions earn XP")
		}
		return nil, err
	}

	s.board.RecordXP(session.Identity.Name, req.Amount)
	s.metrics.RecordXPAwarded(req.Amount)
	s.logger.Info("xp awarded",
		zap.String("session_id", sessionID),
		zap.Int("amount", req.Amount),
		zap.String("reason", req.Reason),
		zap.Int("level", session.Identity.Gamification.Level),
	)
	return session, nil
}
