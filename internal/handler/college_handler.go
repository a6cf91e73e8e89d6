package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/service"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/response"
)

// CollegeHandler exposes the staff administration endpoints.
type CollegeHandler struct {
	service *service.CollegeService
	exports *service.ExportService
}

// NewCollegeHandler creates a new handler.
func NewCollegeHandler(svc *service.CollegeService, exports *service.ExportService) *CollegeHandler {
	return &CollegeHandler{service: svc, exports: exports}
}

// Roster godoc
// @Summary Class roster
// @Tags College
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /college/roster [get]
func (h *CollegeHandler) Roster(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Roster(c.Request.Context()))
}

// SubmitAttendance godoc
// @Summary Submit a day's attendance
// @Tags College
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.AttendanceSubmission true "Attendance marks"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /college/attendance [post]
func (h *CollegeHandler) SubmitAttendance(c *gin.Context) {
	var req models.AttendanceSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}

	sheet, err := h.service.SubmitAttendance(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sheet)
}

// AttendanceSheets godoc
// @Summary Submitted attendance sheets
// @Tags College
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /college/attendance [get]
func (h *CollegeHandler) AttendanceSheets(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.AttendanceSheets(c.Request.Context()))
}

// PublishMarks godoc
// @Summary Publish exam marks
// @Tags College
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.MarksUpload true "Scores"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /college/marks [post]
func (h *CollegeHandler) PublishMarks(c *gin.Context) {
	var req models.MarksUpload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid marks payload"))
		return
	}

	records, err := h.service.PublishMarks(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, records)
}

// Marks godoc
// @Summary Published marks
// @Tags College
// @Produce json
// @Security BearerAuth
// @Param exam query string false "Exam filter"
// @Param subject query string false "Subject filter"
// @Success 200 {object} response.Envelope
// @Router /college/marks [get]
func (h *CollegeHandler) Marks(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Marks(c.Request.Context(), c.Query("exam"), c.Query("subject")))
}

// ComposeNotice godoc
// @Summary Publish a notice
// @Tags College
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ComposeNoticeRequest true "Notice"
// @Success 201 {object} response.Envelope
// @Router /college/notices [post]
func (h *CollegeHandler) ComposeNotice(c *gin.Context) {
	var req models.ComposeNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid notice payload"))
		return
	}

	notice, err := h.service.ComposeNotice(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, notice)
}

// Notices godoc
// @Summary Notice history
// @Tags College
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /college/notices [get]
func (h *CollegeHandler) Notices(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Notices(c.Request.Context()))
}

// Leaves godoc
// @Summary Leave applications
// @Tags College
// @Produce json
// @Security BearerAuth
// @Param pending query bool false "Only pending applications"
// @Success 200 {object} response.Envelope
// @Router /college/leaves [get]
func (h *CollegeHandler) Leaves(c *gin.Context) {
	pendingOnly, _ := strconv.ParseBool(c.Query("pending"))
	response.JSON(c, http.StatusOK, h.service.Leaves(c.Request.Context(), pendingOnly))
}

// DecideLeave godoc
// @Summary Approve or reject a leave application
// @Tags College
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave id"
// @Param payload body object true "Decision"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /college/leaves/{id}/decision [post]
func (h *CollegeHandler) DecideLeave(c *gin.Context) {
	var payload struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid decision payload"))
		return
	}

	leave, err := h.service.DecideLeave(c.Request.Context(), c.Param("id"), payload.Approve)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leave)
}

// ExportMarks godoc
// @Summary Download published marks
// @Tags College
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Param exam query string false "Exam filter"
// @Param subject query string false "Subject filter"
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /college/exports/marks [get]
func (h *CollegeHandler) ExportMarks(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	file, err := h.exports.Marks(c.Request.Context(), format, c.Query("exam"), c.Query("subject"))
	if err != nil {
		response.Error(c, err)
		return
	}
	sendExport(c, file)
}

// ExportAttendance godoc
// @Summary Download the attendance register
// @Tags College
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /college/exports/attendance [get]
func (h *CollegeHandler) ExportAttendance(c *gin.Context) {
	file, err := h.exports.Attendance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	sendExport(c, file)
}

func sendExport(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
