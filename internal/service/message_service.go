package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

type messageStore interface {
	List(thread string) []models.Message
	Append(thread, sender, content string, mine bool) models.Message
}

// MessageService handles the chat threads: the seeded class-teacher
// conversation plus any study-partner threads opened from a match.
type MessageService struct {
	store     messageStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMessageService constructs a MessageService instance.
func NewMessageService(store messageStore, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &MessageService{store: store, validator: validate, logger: logger}
}

// Thread returns the messages of the named thread. The default thread is the
// class teacher conversation.
func (s *MessageService) Thread(ctx context.Context, thread string) []models.Message {
	if thread == "" {
		thread = repository.TeacherThread
	}
	return s.store.List(thread)
}

// Send appends the caller's message to the thread. Blank messages are
// rejected.
func (s *MessageService) Send(ctx context.Context, thread string, req models.SendMessageRequest) (*models.Message, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid message payload")
	}
	if thread == "" {
		thread = repository.TeacherThread
	}

	msg := s.store.Append(thread, "Me", req.Content, true)
	s.logger.Debug("message sent", zap.String("thread", thread), zap.String("message_id", msg.ID))
	return &msg, nil
}
