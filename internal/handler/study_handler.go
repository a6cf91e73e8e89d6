package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/service"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// StudyHandler exposes the AI study tools: planner, flashcards, quizzes and
// the tutor.
type StudyHandler struct {
	service *service.AIService
}

// NewStudyHandler creates a new handler.
func NewStudyHandler(svc *service.AIService) *StudyHandler {
	return &StudyHandler{service: svc}
}

// GeneratePlan godoc
// @Summary Generate a study plan
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.StudyPlanRequest true "Plan request"
// @Success 200 {object} response.Envelope
// @Router /study/plan [post]
func (h *StudyHandler) GeneratePlan(c *gin.Context) {
	var req models.StudyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid plan payload"))
		return
	}

	plan, err := h.service.GenerateStudyPlan(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan)
}

// GenerateFlashcards godoc
// @Summary Generate flashcards for a topic
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.FlashcardRequest true "Flashcard request"
// @Success 200 {object} response.Envelope
// @Router /study/flashcards [post]
func (h *StudyHandler) GenerateFlashcards(c *gin.Context) {
	var req models.FlashcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid flashcard payload"))
		return
	}

	cards, err := h.service.GenerateFlashcards(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cards)
}

// GenerateQuiz godoc
// @Summary Generate a quiz from source text
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.QuizRequest true "Quiz request"
// @Success 200 {object} response.Envelope
// @Router /study/quiz [post]
func (h *StudyHandler) GenerateQuiz(c *gin.Context) {
	var req models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid quiz payload"))
		return
	}

	quiz, err := h.service.GenerateQuiz(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quiz)
}

// AskTutor godoc
// @Summary Ask the AI tutor a question
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.TutorRequest true "Tutor question"
// @Success 200 {object} response.Envelope
// @Router /study/tutor [post]
func (h *StudyHandler) AskTutor(c *gin.Context) {
	var req models.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid tutor payload"))
		return
	}

	answer, err := h.service.AskTutor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"answer": answer})
}
