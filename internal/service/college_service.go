package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/jobs"
)

// DemoClass is the class every seeded record belongs to.
const DemoClass = "12-A"

type rosterStore interface {
	List() []models.RosterStudent
	Get(id string) (models.RosterStudent, error)
}

type recordsStore interface {
	SaveAttendance(class, date string, marks map[string]bool) models.AttendanceSheet
	AttendanceSheets() []models.AttendanceSheet
	SaveMarks(records []models.MarkRecord)
	Marks(exam, subject string) []models.MarkRecord
}

type noticeStore interface {
	Create(title, content string) models.Notice
	List() []models.Notice
}

type leaveStore interface {
	List() []models.LeaveRequest
	Pending() []models.LeaveRequest
	Decide(id string, status models.LeaveStatus) (models.LeaveRequest, error)
}

type noticeBroadcaster interface {
	Enqueue(job jobs.Job) error
}

// CollegeService implements the staff workflows: marking attendance,
// publishing marks, composing notices and deciding leave applications.
type CollegeService struct {
	roster      rosterStore
	records     recordsStore
	notices     noticeStore
	leaves      leaveStore
	broadcaster noticeBroadcaster
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewCollegeService constructs a CollegeService instance.
func NewCollegeService(roster rosterStore, records recordsStore, notices noticeStore, leaves leaveStore, broadcaster noticeBroadcaster, validate *validator.Validate, logger *zap.Logger) *CollegeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CollegeService{
		roster:      roster,
		records:     records,
		notices:     notices,
		leaves:      leaves,
		broadcaster: broadcaster,
		validator:   validate,
		logger:      logger,
	}
}

// Roster returns the class roster.
func (s *CollegeService) Roster(ctx context.Context) []models.RosterStudent {
	return s.roster.List()
}

// SubmitAttendance records one day's presence marks. Every mark must refer
// to a roster student.
func (s *CollegeService) SubmitAttendance(ctx context.Context, req models.AttendanceSubmission) (*models.AttendanceSheet, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	for id := range req.Marks {
		if _, err := s.roster.Get(id); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown student %q", id))
		}
	}

	sheet := s.records.SaveAttendance(DemoClass, req.Date, req.Marks)
	s.logger.Info("attendance submitted",
		zap.String("class", sheet.Class),
		zap.String("date", sheet.Date),
		zap.Int("students", len(sheet.Marks)),
	)
	return &sheet, nil
}

// AttendanceSheets lists submitted sheets, newest first.
func (s *CollegeService) AttendanceSheets(ctx context.Context) []models.AttendanceSheet {
	return s.records.AttendanceSheets()
}

// PublishMarks stores scores for one exam and subject. Scores are bounded
// to 0..100 and every student must be on the roster.
func (s *CollegeService) PublishMarks(ctx context.Context, req models.MarksUpload) ([]models.MarkRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid marks payload")
	}

	records := make([]models.MarkRecord, 0, len(req.Scores))
	for id, score := range req.Scores {
		student, err := s.roster.Get(id)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown student %q", id))
		}
		if score < 0 || score > 100 {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("score for %s must be between 0 and 100", student.Name))
		}
		records = append(records, models.MarkRecord{
			StudentID: student.ID,
			Student:   student.Name,
			Roll:      student.Roll,
			Exam:      req.Exam,
			Subject:   req.Subject,
			Score:     score,
			Total:     100,
		})
	}

	s.records.SaveMarks(records)
	s.logger.Info("marks published",
		zap.String("exam", req.Exam),
		zap.String("subject", req.Subject),
		zap.Int("students", len(records)),
	)
	return records, nil
}

// Marks lists published records, optionally filtered by exam and subject.
func (s *CollegeService) Marks(ctx context.Context, exam, subject string) []models.MarkRecord {
	return s.records.Marks(exam, subject)
}

// ComposeNotice publishes a notice and fans the delivery out to all
// students through the broadcast queue.
func (s *CollegeService) ComposeNotice(ctx context.Context, req models.ComposeNoticeRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notice payload")
	}

	notice := s.notices.Create(req.Title, req.Content)

	if s.broadcaster != nil {
		for _, student := range s.roster.List() {
			err := s.broadcaster.Enqueue(jobs.Job{
				ID:   uuid.NewString(),
				Type: "notice_delivery",
				Payload: map[string]string{
					"notice_id":  notice.ID,
					"student_id": student.ID,
					"title":      notice.Title,
				},
				Enqueued: time.Now(),
			})
			if err != nil {
				s.logger.Warn("failed to enqueue notice delivery",
					zap.String("notice_id", notice.ID),
					zap.String("student_id", student.ID),
					zap.Error(err),
				)
			}
		}
	}

	s.logger.Info("notice composed", zap.String("notice_id", notice.ID), zap.String("title", notice.Title))
	return &notice, nil
}

// Notices lists the notice history, newest first.
func (s *CollegeService) Notices(ctx context.Context) []models.Notice {
	return s.notices.List()
}

// Leaves lists leave applications, optionally only pending ones.
func (s *CollegeService) Leaves(ctx context.Context, pendingOnly bool) []models.LeaveRequest {
	if pendingOnly {
		return s.leaves.Pending()
	}
	return s.leaves.List()
}

// DecideLeave approves or rejects a pending application. Re-deciding an
// application conflicts.
func (s *CollegeService) DecideLeave(ctx context.Context, id string, approve bool) (*models.LeaveRequest, error) {
	status := models.LeaveRejected
	if approve {
		status = models.LeaveApproved
	}

	leave, err := s.leaves.Decide(id, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info("leave decided", zap.String("leave_id", id), zap.String("status", string(status)))
	return &leave, nil
}
