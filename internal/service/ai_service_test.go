package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/pkg/config"
)

func newAIService(cfg config.AIConfig) *AIService {
	return NewAIService(cfg, nil, nil, validator.New(), zap.NewNop(), time.Minute)
}

func completionServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := chatCompletionResponse{}
		resp.Choices = []struct {
			Message aiChatMessage `json:"message"`
		}{{Message: aiChatMessage{Role: "assistant", Content: content}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestAIServiceStudyPlanFallbackWithoutKey(t *testing.T) {
	svc := newAIService(config.AIConfig{})

	plan, err := svc.GenerateStudyPlan(context.Background(), models.StudyPlanRequest{
		Subjects:       []string{"Mathematics", "Computer Science", "History"},
		HoursAvailable: 3,
	})
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, "09:00 AM", plan[0].Time)
	assert.Equal(t, "Calculus Review", plan[0].Topic)
	assert.Equal(t, "Break", plan[2].Subject)
}

func TestAIServiceStudyPlanFromUpstream(t *testing.T) {
	payload := `[{"time":"08:00 AM","subject":"Biology","topic":"Genetics","duration":"30m"}]`
	srv := completionServer(t, payload, http.StatusOK)
	defer srv.Close()

	svc := newAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model"})

	plan, err := svc.GenerateStudyPlan(context.Background(), models.StudyPlanRequest{
		Subjects:       []string{"Biology"},
		HoursAvailable: 1,
	})
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "Genetics", plan[0].Topic)
}

func TestAIServiceStudyPlanUpstreamFailureFallsBack(t *testing.T) {
	srv := completionServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	svc := newAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "test-key"})

	plan, err := svc.GenerateStudyPlan(context.Background(), models.StudyPlanRequest{
		Subjects:       []string{"Math"},
		HoursAvailable: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, fallbackStudyPlan(), plan)
}

func TestAIServiceFlashcardsFallbackWithoutKey(t *testing.T) {
	svc := newAIService(config.AIConfig{})

	cards, err := svc.GenerateFlashcards(context.Background(), models.FlashcardRequest{Topic: "Biology"})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "What is the powerhouse of the cell?", cards[0].Front)
	assert.Equal(t, "Mitochondria", cards[0].Back)
	assert.Equal(t, models.DifficultyEasy, cards[0].Difficulty)
	assert.Equal(t, "F = ma", cards[1].Back)
	assert.Equal(t, models.DifficultyMedium, cards[1].Difficulty)
}

func TestAIServiceMalformedJSONFallsBack(t *testing.T) {
	srv := completionServer(t, "this is not json", http.StatusOK)
	defer srv.Close()

	svc := newAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "test-key"})

	cards, err := svc.GenerateFlashcards(context.Background(), models.FlashcardRequest{Topic: "Cells"})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Mitochondria", cards[0].Back)
}

func TestAIServiceFlashcardsStripCodeFences(t *testing.T) {
	payload := "```json\n[{\"front\":\"Q\",\"back\":\"A\",\"difficulty\":\"HARD\"}]\n```"
	srv := completionServer(t, payload, http.StatusOK)
	defer srv.Close()

	svc := newAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "test-key"})

	cards, err := svc.GenerateFlashcards(context.Background(), models.FlashcardRequest{Topic: "Physics", Count: 1})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, models.DifficultyHard, cards[0].Difficulty)
	assert.NotEmpty(t, cards[0].ID)
}

func TestAIServiceQuizFallback(t *testing.T) {
	svc := newAIService(config.AIConfig{})

	questions, err := svc.GenerateQuiz(context.Background(), models.QuizRequest{Text: "The mitochondria is the powerhouse of the cell."})
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, 0, questions[0].CorrectAnswer)
	assert.Len(t, questions[0].Options, 4)
}

func TestAIServiceTutorWithoutKey(t *testing.T) {
	svc := newAIService(config.AIConfig{})

	answer, err := svc.AskTutor(context.Background(), models.TutorRequest{Question: "What is inertia?", Subject: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, "I can help explain that concept! (Connect API Key to enable AI Tutor)", answer)
}

func TestAIServiceTutorUpstream(t *testing.T) {
	srv := completionServer(t, "Inertia is resistance to change in motion.", http.StatusOK)
	defer srv.Close()

	svc := newAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "test-key"})

	answer, err := svc.AskTutor(context.Background(), models.TutorRequest{Question: "What is inertia?", Subject: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, "Inertia is resistance to change in motion.", answer)
}

func TestAIServiceTutorUpstreamError(t *testing.T) {
	srv := completionServer(t, "", http.StatusBadGateway)
	defer srv.Close()

	svc := newAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "test-key"})

	answer, err := svc.AskTutor(context.Background(), models.TutorRequest{Question: "What is inertia?"})
	require.NoError(t, err)
	assert.Equal(t, "Error connecting to AI Tutor.", answer)
}

func TestAIServiceValidation(t *testing.T) {
	svc := newAIService(config.AIConfig{})

	_, err := svc.GenerateStudyPlan(context.Background(), models.StudyPlanRequest{})
	require.Error(t, err)

	_, err = svc.GenerateFlashcards(context.Background(), models.FlashcardRequest{})
	require.Error(t, err)

	_, err = svc.AskTutor(context.Background(), models.TutorRequest{})
	require.Error(t, err)
}
