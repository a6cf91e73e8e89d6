package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/pkg/config"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

// AIService wraps the external text-generation API behind typed study-tool
// operations. Every operation is total: when no API key is configured, or
// the upstream call fails, it returns deterministic seed content instead of
// an error, so the portal works fully offline.
type AIService struct {
	client    *http.Client
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	config    config.AIConfig
	cacheTTL  time.Duration
}

// NewAIService constructs an AIService instance.
func NewAIService(cfg config.AIConfig, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cacheTTL time.Duration) *AIService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AIService{
		client:    &http.Client{Timeout: timeout},
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		config:    cfg,
		cacheTTL:  cacheTTL,
	}
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []aiChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateStudyPlan produces a study schedule for the given subjects and
// available hours.
func (s *AIService) GenerateStudyPlan(ctx context.Context, req models.StudyPlanRequest) ([]models.StudyPlanItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid study plan payload")
	}

	key := cacheKey("ai:plan", strings.Join(req.Subjects, ","), fmt.Sprint(req.HoursAvailable))
	var cached []models.StudyPlanItem
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	var plan []models.StudyPlanItem
	prompt := fmt.Sprintf(
		"Create a study schedule for a student who needs to study these subjects: %s. "+
			"They have %d hours available today. Break it down into realistic slots including short breaks. "+
			"Return a JSON array of objects with properties: time, subject, topic, duration.",
		strings.Join(req.Subjects, ", "), req.HoursAvailable)

	if !s.generateJSON(ctx, "study_plan", "You are a study planner for students.", prompt, &plan) || len(plan) == 0 {
		plan = fallbackStudyPlan()
	}

	_ = s.cache.Set(ctx, key, plan, s.cacheTTL)
	return plan, nil
}

// GenerateFlashcards produces a flashcard deck for a topic. Count defaults
// to five cards.
func (s *AIService) GenerateFlashcards(ctx context.Context, req models.FlashcardRequest) ([]models.Flashcard, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid flashcard payload")
	}
	count := req.Count
	if count == 0 {
		count = 5
	}

	key := cacheKey("ai:cards", req.Topic, fmt.Sprint(count))
	var cached []models.Flashcard
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	var cards []models.Flashcard
	prompt := fmt.Sprintf(
		"Generate %d flashcards for the topic: %q. Each card should have a question (front) and a concise answer (back). "+
			"Assign a difficulty level (EASY, MEDIUM, HARD). "+
			"Return a JSON array of objects with properties: front, back, difficulty.",
		count, req.Topic)

	if !s.generateJSON(ctx, "flashcards", "You are a study assistant creating flashcards.", prompt, &cards) || len(cards) == 0 {
		cards = fallbackFlashcards()
	}
	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = uuid.NewString()
		}
	}

	_ = s.cache.Set(ctx, key, cards, s.cacheTTL)
	return cards, nil
}

// GenerateQuiz produces a three-question multiple-choice quiz from source
// text.
func (s *AIService) GenerateQuiz(ctx context.Context, req models.QuizRequest) ([]models.QuizQuestion, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid quiz payload")
	}

	key := cacheKey("ai:quiz", req.Text)
	var cached []models.QuizQuestion
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	var questions []models.QuizQuestion
	prompt := fmt.Sprintf(
		"Generate a 3-question multiple choice quiz based on the following text: %q. "+
			"Return a JSON array of objects with properties: question, options (array of 4 strings), and correct_answer (index 0-3).",
		req.Text)

	if !s.generateJSON(ctx, "quiz", "You are a quiz generator for students.", prompt, &questions) || len(questions) == 0 {
		questions = fallbackQuiz()
	}
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
	}

	_ = s.cache.Set(ctx, key, questions, s.cacheTTL)
	return questions, nil
}

// AskTutor answers a free-form question in the given subject. The answer is
// always a usable sentence, never an error.
func (s *AIService) AskTutor(ctx context.Context, req models.TutorRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid tutor payload")
	}

	if s.config.APIKey == "" {
		s.metrics.ObserveAIGeneration("tutor", "fallback", 0)
		return "I can help explain that concept! (Connect API Key to enable AI Tutor)", nil
	}

	subject := req.Subject
	if subject == "" {
		subject = "general studies"
	}
	system := fmt.Sprintf("You are an expert tutor in %s. Explain concepts to a high school student clearly and concisely. Use analogies if helpful.", subject)

	start := time.Now()
	answer, err := s.complete(ctx, system, req.Question)
	if err != nil {
		s.metrics.ObserveAIGeneration("tutor", "error", time.Since(start))
		s.logger.Warn("tutor generation failed", zap.Error(err))
		return "Error connecting to AI Tutor.", nil
	}
	if answer == "" {
		s.metrics.ObserveAIGeneration("tutor", "fallback", time.Since(start))
		return "Sorry, I couldn't generate an explanation.", nil
	}
	s.metrics.ObserveAIGeneration("tutor", "ok", time.Since(start))
	return answer, nil
}

// generateJSON runs one structured generation and decodes the JSON payload
// into dest. It reports false whenever fallback content should be used.
func (s *AIService) generateJSON(ctx context.Context, operation, system, prompt string, dest interface{}) bool {
	if s.config.APIKey == "" {
		s.metrics.ObserveAIGeneration(operation, "fallback", 0)
		return false
	}

	start := time.Now()
	raw, err := s.complete(ctx, system+" Respond with JSON only, no prose.", prompt)
	if err != nil {
		s.metrics.ObserveAIGeneration(operation, "error", time.Since(start))
		s.logger.Warn("generation failed", zap.String("operation", operation), zap.Error(err))
		return false
	}

	if err := json.Unmarshal([]byte(stripCodeFences(raw)), dest); err != nil {
		s.metrics.ObserveAIGeneration(operation, "error", time.Since(start))
		s.logger.Warn("generation returned malformed JSON", zap.String("operation", operation), zap.Error(err))
		return false
	}

	s.metrics.ObserveAIGeneration(operation, "ok", time.Since(start))
	return true
}

func (s *AIService) complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: s.config.Model,
		Messages: []aiChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("ai api status %d: %s", resp.StatusCode, string(payload))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", fmt.Errorf("ai api error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func stripCodeFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

func cacheKey(prefix string, parts ...string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.Join(parts, "|"))))
	return prefix + ":" + hex.EncodeToString(sum[:8])
}

func fallbackStudyPlan() []models.StudyPlanItem {
	return []models.StudyPlanItem{
		{Time: "09:00 AM", Subject: "Math", Topic: "Calculus Review", Duration: "1h"},
		{Time: "10:15 AM", Subject: "Physics", Topic: "Thermodynamics", Duration: "45m"},
		{Time: "11:15 AM", Subject: "Break", Topic: "Relax", Duration: "15m"},
	}
}

func fallbackFlashcards() []models.Flashcard {
	return []models.Flashcard{
		{ID: "1", Front: "What is the powerhouse of the cell?", Back: "Mitochondria", Difficulty: models.DifficultyEasy},
		{ID: "2", Front: "Newton's Second Law?", Back: "F = ma", Difficulty: models.DifficultyMedium},
	}
}

func fallbackQuiz() []models.QuizQuestion {
	return []models.QuizQuestion{
		{ID: "1", Question: "What is the main idea of the summary?", Options: []string{"Idea A", "Idea B", "Idea C", "Idea D"}, CorrectAnswer: 0},
		{ID: "2", Question: "Which detail was explicitly mentioned?", Options: []string{"Detail X", "Detail Y", "Detail Z", "None"}, CorrectAnswer: 1},
		{ID: "3", Question: "What is the conclusion?", Options: []string{"Conclusion 1", "Conclusion 2", "Conclusion 3", "Conclusion 4"}, CorrectAnswer: 2},
	}
}
