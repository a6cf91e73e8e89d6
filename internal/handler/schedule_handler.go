package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/service"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// ScheduleHandler serves the timetable, assignments and focus timer.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Week godoc
// @Summary Full weekly timetable
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /schedule/week [get]
func (h *ScheduleHandler) Week(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"days":        h.service.Weekdays(),
		"default_day": h.service.DefaultDay(time.Now()),
		"week":        h.service.Week(c.Request.Context()),
	})
}

// Day godoc
// @Summary Sessions for one weekday
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday (Mon..Fri)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedule/days/{day} [get]
func (h *ScheduleHandler) Day(c *gin.Context) {
	sessions, err := h.service.Day(c.Request.Context(), c.Param("day"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions)
}

// Assignments godoc
// @Summary Assignment list
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /schedule/assignments [get]
func (h *ScheduleHandler) Assignments(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Assignments(c.Request.Context()))
}

// ToggleAssignment godoc
// @Summary Toggle an assignment's completion
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedule/assignments/{id}/toggle [post]
func (h *ScheduleHandler) ToggleAssignment(c *gin.Context) {
	assignment, err := h.service.ToggleAssignment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// TimerPresets godoc
// @Summary Focus timer defaults
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /schedule/timer [get]
func (h *ScheduleHandler) TimerPresets(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.TimerPresets(c.Request.Context()))
}
