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

func newTestPartnerService() *PartnerService {
	return NewPartnerService(repository.NewPartnerRepository(), repository.NewMessageRepository(), nil, nil)
}

func TestPartnerService_SkipCyclesDeck(t *testing.T) {
	svc := newTestPartnerService()
	deck := svc.Deck(context.Background())
	require.NotEmpty(t, deck)

	for i := 0; i <= len(deck); i++ {
		current := svc.Current(context.Background(), "sess-1")
		assert.Equal(t, deck[i%len(deck)].ID, current.ID)

		result, err := svc.Swipe(context.Background(), "sess-1", models.SwipeRequest{
			PartnerID: current.ID,
			Direction: models.SwipeSkip,
		})
		require.NoError(t, err)
		assert.False(t, result.Matched)
	}
}

func TestPartnerService_LikeMatchesAndSeedsGreeting(t *testing.T) {
	svc := newTestPartnerService()
	top := svc.Current(context.Background(), "sess-1")

	result, err := svc.Swipe(context.Background(), "sess-1", models.SwipeRequest{
		PartnerID: top.ID,
		Direction: models.SwipeLike,
	})
	require.NoError(t, err)
	assert.True(t, result.Matched)
	require.NotNil(t, result.Partner)
	assert.Equal(t, top.ID, result.Partner.ID)

	matches := svc.Matches(context.Background(), "sess-1")
	require.Len(t, matches, 1)

	chat, err := svc.Chat(context.Background(), "sess-1", top.ID)
	require.NoError(t, err)
	require.Len(t, chat, 1)
	assert.Equal(t, top.Name, chat[0].Sender)
	assert.Equal(t, "Hey! Let's crush these exams!", chat[0].Content)
	assert.False(t, chat[0].Mine)
}

func TestPartnerService_RepeatedLikeKeepsSingleMatch(t *testing.T) {
	svc := newTestPartnerService()
	top := svc.Current(context.Background(), "sess-1")

	for i := 0; i < 3; i++ {
		result, err := svc.Swipe(context.Background(), "sess-1", models.SwipeRequest{
			PartnerID: top.ID,
			Direction: models.SwipeLike,
		})
		require.NoError(t, err)
		assert.True(t, result.Matched)
	}

	matches := svc.Matches(context.Background(), "sess-1")
	require.Len(t, matches, 1)
	assert.Equal(t, top.ID, matches[0].ID)
}

func TestPartnerService_SwipeStaleCardConflicts(t *testing.T) {
	svc := newTestPartnerService()
	deck := svc.Deck(context.Background())
	require.Greater(t, len(deck), 1)

	_, err := svc.Swipe(context.Background(), "sess-1", models.SwipeRequest{
		PartnerID: deck[1].ID,
		Direction: models.SwipeLike,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestPartnerService_ChatRequiresMatch(t *testing.T) {
	svc := newTestPartnerService()
	top := svc.Current(context.Background(), "sess-1")

	_, err := svc.Chat(context.Background(), "sess-1", top.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	_, err = svc.SendToPartner(context.Background(), "sess-1", top.ID, models.SendMessageRequest{Content: "hi"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestPartnerService_SendGetsCannedReply(t *testing.T) {
	svc := newTestPartnerService()
	top := svc.Current(context.Background(), "sess-1")

	_, err := svc.Swipe(context.Background(), "sess-1", models.SwipeRequest{
		PartnerID: top.ID,
		Direction: models.SwipeLike,
	})
	require.NoError(t, err)

	chat, err := svc.SendToPartner(context.Background(), "sess-1", top.ID, models.SendMessageRequest{
		Content: "Want to review calculus tonight?",
	})
	require.NoError(t, err)
	require.Len(t, chat, 3)
	assert.True(t, chat[1].Mine)
	assert.Equal(t, "Want to review calculus tonight?", chat[1].Content)
	assert.Equal(t, "Sounds like a plan! I'm free to study in 10 mins.", chat[2].Content)
	assert.False(t, chat[2].Mine)
}

func TestPartnerService_StateIsPerSession(t *testing.T) {
	svc := newTestPartnerService()
	top := svc.Current(context.Background(), "sess-1")

	_, err := svc.Swipe(context.Background(), "sess-1", models.SwipeRequest{
		PartnerID: top.ID,
		Direction: models.SwipeLike,
	})
	require.NoError(t, err)

	assert.Empty(t, svc.Matches(context.Background(), "sess-2"))
}
