package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

func newTestGamificationService() (*GamificationService, *repository.SessionRepository) {
	sessions := repository.NewSessionRepository()
	svc := NewGamificationService(repository.NewGamificationRepository(), sessions, nil, nil, nil)
	return svc, sessions
}

func TestGamificationService_LeaderboardSeed(t *testing.T) {
	svc, _ := newTestGamificationService()

	board := svc.Leaderboard(context.Background())
	require.NotEmpty(t, board)
	assert.Equal(t, 1, board[0].Rank)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].XP, board[i].XP)
	}

	badges := svc.Badges(context.Background())
	require.NotEmpty(t, badges)
	unlocked := 0
	for _, badge := range badges {
		if badge.Unlocked {
			unlocked++
		}
	}
	assert.Equal(t, 3, unlocked)
}

func TestGamificationService_AwardXPRollsLevel(t *testing.T) {
	svc, sessions := newTestGamificationService()
	session := sessions.Create(models.NewIdentity("stu-1", "Alex Johnson", models.RoleStudent, "",
		&models.GamificationStats{Level: 12, XP: 2320, MaxXP: 3000}))

	updated, err := svc.AwardXP(context.Background(), session.ID, models.AwardXPRequest{Amount: 100, Reason: "quiz"})
	require.NoError(t, err)
	assert.Equal(t, 2420, updated.Identity.Gamification.XP)
	assert.Equal(t, 12, updated.Identity.Gamification.Level)

	for i := 0; i < 2; i++ {
		updated, err = svc.AwardXP(context.Background(), session.ID, models.AwardXPRequest{Amount: 300})
		require.NoError(t, err)
	}
	assert.Equal(t, 13, updated.Identity.Gamification.Level)
	assert.Equal(t, 20, updated.Identity.Gamification.XP)
}

func TestGamificationService_AwardXPReRanksBoard(t *testing.T) {
	svc, sessions := newTestGamificationService()
	session := sessions.Create(models.NewIdentity("stu-1", "Alex Johnson", models.RoleStudent, "",
		&models.GamificationStats{Level: 12, XP: 0, MaxXP: 3000}))

	_, err := svc.AwardXP(context.Background(), session.ID, models.AwardXPRequest{Amount: 500})
	require.NoError(t, err)

	board := svc.Leaderboard(context.Background())
	require.NotEmpty(t, board)
	assert.Equal(t, "Alex Johnson", board[0].Name)
	assert.Equal(t, models.TrendUp, board[0].Trend)
}

func TestGamificationService_AwardXPRefusesNonStudents(t *testing.T) {
	svc, sessions := newTestGamificationService()
	session := sessions.Create(models.NewIdentity("par-1", "Mrs. Johnson", models.RoleParent, "", nil))

	_, err := svc.AwardXP(context.Background(), session.ID, models.AwardXPRequest{Amount: 50})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestGamificationService_AwardXPValidation(t *testing.T) {
	svc, sessions := newTestGamificationService()
	session := sessions.Create(models.NewIdentity("stu-1", "Alex Johnson", models.RoleStudent, "",
		&models.GamificationStats{Level: 1, XP: 0, MaxXP: 100}))

	for _, amount := range []int{0, 501} {
		_, err := svc.AwardXP(context.Background(), session.ID, models.AwardXPRequest{Amount: amount})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}

	_, err := svc.AwardXP(context.Background(), "missing", models.AwardXPRequest{Amount: 10})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
