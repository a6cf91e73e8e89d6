package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

// Canned partner chat lines shown when a match conversation opens.
const (
	partnerGreeting = "Hey! Let's crush these exams!"
	partnerReply    = "Sounds like a plan! I'm free to study in 10 mins."
)

type partnerDeckStore interface {
	Deck() []models.StudyPartner
	Current(sessionID string) models.StudyPartner
	Swipe(sessionID, partnerID string, like bool) (models.SwipeResult, error)
	Matches(sessionID string) []models.StudyPartner
	IsMatch(sessionID, partnerID string) bool
}

type partnerMessageStore interface {
	List(thread string) []models.Message
	Append(thread, sender, content string, mine bool) models.Message
}

// PartnerService runs the study-partner matching deck and the chats that
// open once two students match.
type PartnerService struct {
	deck      partnerDeckStore
	messages  partnerMessageStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPartnerService constructs a PartnerService instance.
func NewPartnerService(deck partnerDeckStore, messages partnerMessageStore, validate *validator.Validate, logger *zap.Logger) *PartnerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PartnerService{
		deck:      deck,
		messages:  messages,
		validator: validate,
		logger:    logger,
	}
}

// Deck lists every candidate on the matching deck.
func (s *PartnerService) Deck(ctx context.Context) []models.StudyPartner {
	return s.deck.Deck()
}

// Current returns the card the session is looking at.
func (s *PartnerService) Current(ctx context.Context, sessionID string) models.StudyPartner {
	return s.deck.Current(sessionID)
}

// Swipe records the session's decision on the top card. Liking matches
// immediately and opens the chat with the partner's greeting.
func (s *PartnerService) Swipe(ctx context.Context, sessionID string, req models.SwipeRequest) (*models.SwipeResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid swipe payload")
	}

	result, err := s.deck.Swipe(sessionID, req.PartnerID, req.Direction == models.SwipeLike)
	if err != nil {
		return nil, err
	}

	if result.Matched {
		thread := partnerThread(req.PartnerID)
		if len(s.messages.List(thread)) == 0 {
			s.messages.Append(thread, result.Partner.Name, partnerGreeting, false)
		}
		s.logger.Info("study partners matched",
			zap.String("session_id", sessionID),
			zap.String("partner_id", req.PartnerID),
		)
	}
	return &result, nil
}

// Matches lists the partners the session has matched with.
func (s *PartnerService) Matches(ctx context.Context, sessionID string) []models.StudyPartner {
	return s.deck.Matches(sessionID)
}

// Chat returns the conversation with a matched partner.
func (s *PartnerService) Chat(ctx context.Context, sessionID, partnerID string) ([]models.Message, error) {
	if !s.deck.IsMatch(sessionID, partnerID) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "chat is only open with matched partners")
	}
	return s.messages.List(partnerThread(partnerID)), nil
}

// SendToPartner posts a message to a matched partner's thread. The partner
// answers with a canned reply.
func (s *PartnerService) SendToPartner(ctx context.Context, sessionID, partnerID string, req models.SendMessageRequest) ([]models.Message, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid message payload")
	}
	if !s.deck.IsMatch(sessionID, partnerID) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "chat is only open with matched partners")
	}

	partner, err := s.partnerByID(partnerID)
	if err != nil {
		return nil, err
	}

	thread := partnerThread(partnerID)
	s.messages.Append(thread, "Me", req.Content, true)
	s.messages.Append(thread, partner.Name, partnerReply, false)
	return s.messages.List(thread), nil
}

func (s *PartnerService) partnerByID(id string) (models.StudyPartner, error) {
	for _, p := range s.deck.Deck() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.StudyPartner{}, appErrors.Clone(appErrors.ErrNotFound, "partner not found")
}

func partnerThread(partnerID string) string {
	return fmt.Sprintf("partner:%s", partnerID)
}
