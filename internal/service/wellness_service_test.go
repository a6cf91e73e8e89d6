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

func newTestWellnessService() *WellnessService {
	return NewWellnessService(repository.NewWellnessRepository(), nil, nil, 1)
}

func TestWellnessService_AffirmationComesFromPool(t *testing.T) {
	svc := newTestWellnessService()
	pool := svc.Affirmations(context.Background())
	require.NotEmpty(t, pool)

	for i := 0; i < 10; i++ {
		line, err := svc.Affirmation(context.Background())
		require.NoError(t, err)
		assert.Contains(t, pool, line)
	}
}

func TestWellnessService_CheckInAppendsHistory(t *testing.T) {
	svc := newTestWellnessService()

	history, err := svc.CheckIn(context.Background(), "sess-1", models.MoodCheckinRequest{Mood: "Happy"})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Happy", history[0].Mood)

	history, err = svc.CheckIn(context.Background(), "sess-1", models.MoodCheckinRequest{Mood: "Tired"})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Tired", history[1].Mood)

	assert.Empty(t, svc.Moods(context.Background(), "sess-2"))
}

func TestWellnessService_CheckInRequiresMood(t *testing.T) {
	svc := newTestWellnessService()

	_, err := svc.CheckIn(context.Background(), "sess-1", models.MoodCheckinRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestWellnessService_BreathingCycle(t *testing.T) {
	svc := newTestWellnessService()

	pattern := svc.Breathing(context.Background())
	assert.Equal(t, 4, pattern.InhaleSeconds)
	assert.Equal(t, 4, pattern.HoldSeconds)
	assert.Equal(t, 4, pattern.ExhaleSeconds)
}
