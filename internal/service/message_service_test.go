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

func newTestMessageService() *MessageService {
	return NewMessageService(repository.NewMessageRepository(), nil, nil)
}

func TestMessageService_DefaultThreadIsTeacher(t *testing.T) {
	svc := newTestMessageService()

	msgs := svc.Thread(context.Background(), "")
	require.Len(t, msgs, 2)
	assert.False(t, msgs[0].Mine)
	assert.True(t, msgs[1].Mine)
	assert.Equal(t, "Hello! Alex missed the first period today. Is everything okay?", msgs[0].Content)
}

func TestMessageService_SendAppends(t *testing.T) {
	svc := newTestMessageService()

	msg, err := svc.Send(context.Background(), "", models.SendMessageRequest{Content: "Thanks for letting me know."})
	require.NoError(t, err)
	assert.Equal(t, "Me", msg.Sender)
	assert.True(t, msg.Mine)
	assert.NotEmpty(t, msg.ID)

	msgs := svc.Thread(context.Background(), repository.TeacherThread)
	require.Len(t, msgs, 3)
	assert.Equal(t, msg.ID, msgs[2].ID)
}

func TestMessageService_UnknownThreadIsEmpty(t *testing.T) {
	svc := newTestMessageService()

	assert.Empty(t, svc.Thread(context.Background(), "partner:ghost"))
}

func TestMessageService_SendRequiresContent(t *testing.T) {
	svc := newTestMessageService()

	_, err := svc.Send(context.Background(), "", models.SendMessageRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
