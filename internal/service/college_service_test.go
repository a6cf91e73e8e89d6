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

func newTestCollegeService(broadcaster noticeBroadcaster) *CollegeService {
	return NewCollegeService(
		repository.NewRosterRepository(),
		repository.NewRecordsRepository(),
		repository.NewNoticeRepository(),
		repository.NewLeaveRepository(),
		broadcaster,
		nil,
		nil,
	)
}

func TestCollegeService_SubmitAttendance(t *testing.T) {
	svc := newTestCollegeService(nil)
	roster := svc.Roster(context.Background())
	require.NotEmpty(t, roster)

	marks := make(map[string]bool, len(roster))
	for i, student := range roster {
		marks[student.ID] = i != 1
	}

	sheet, err := svc.SubmitAttendance(context.Background(), models.AttendanceSubmission{
		Date:  "2024-10-26",
		Marks: marks,
	})
	require.NoError(t, err)
	assert.Equal(t, DemoClass, sheet.Class)
	assert.Equal(t, "2024-10-26", sheet.Date)
	assert.Len(t, sheet.Marks, len(roster))
	assert.False(t, sheet.Marks[roster[1].ID])

	sheets := svc.AttendanceSheets(context.Background())
	require.Len(t, sheets, 1)
	assert.Equal(t, sheet.ID, sheets[0].ID)
}

func TestCollegeService_SubmitAttendanceRejectsUnknownStudent(t *testing.T) {
	svc := newTestCollegeService(nil)

	_, err := svc.SubmitAttendance(context.Background(), models.AttendanceSubmission{
		Date:  "2024-10-26",
		Marks: map[string]bool{"ghost": true},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCollegeService_SubmitAttendanceRequiresDate(t *testing.T) {
	svc := newTestCollegeService(nil)

	_, err := svc.SubmitAttendance(context.Background(), models.AttendanceSubmission{
		Marks: map[string]bool{"s-1": true},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCollegeService_PublishMarks(t *testing.T) {
	svc := newTestCollegeService(nil)
	roster := svc.Roster(context.Background())

	scores := make(map[string]int, len(roster))
	for i, student := range roster {
		scores[student.ID] = 70 + i*5
	}

	records, err := svc.PublishMarks(context.Background(), models.MarksUpload{
		Exam:    "Mid Term",
		Subject: "Physics",
		Scores:  scores,
	})
	require.NoError(t, err)
	require.Len(t, records, len(roster))
	for _, record := range records {
		assert.Equal(t, "Mid Term", record.Exam)
		assert.Equal(t, "Physics", record.Subject)
		assert.Equal(t, 100, record.Total)
	}

	stored := svc.Marks(context.Background(), "Mid Term", "Physics")
	assert.Len(t, stored, len(roster))
	assert.Empty(t, svc.Marks(context.Background(), "Final", "Physics"))
}

func TestCollegeService_PublishMarksBoundsScores(t *testing.T) {
	svc := newTestCollegeService(nil)
	roster := svc.Roster(context.Background())
	require.NotEmpty(t, roster)

	for _, score := range []int{-1, 101} {
		_, err := svc.PublishMarks(context.Background(), models.MarksUpload{
			Exam:    "Mid Term",
			Subject: "Physics",
			Scores:  map[string]int{roster[0].ID: score},
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestCollegeService_ComposeNoticeBroadcasts(t *testing.T) {
	dispatcher := &mockDispatcher{}
	svc := newTestCollegeService(dispatcher)
	roster := svc.Roster(context.Background())

	notice, err := svc.ComposeNotice(context.Background(), models.ComposeNoticeRequest{
		Title:   "Sports Day",
		Content: "Annual sports day on Friday.",
	})
	require.NoError(t, err)
	assert.True(t, notice.Active)

	require.Len(t, dispatcher.jobs, len(roster))
	payload, ok := dispatcher.jobs[0].Payload.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, notice.ID, payload["notice_id"])
	assert.Equal(t, "Sports Day", payload["title"])

	notices := svc.Notices(context.Background())
	require.NotEmpty(t, notices)
	assert.Equal(t, notice.ID, notices[0].ID)
}

func TestCollegeService_ComposeNoticeRequiresTitle(t *testing.T) {
	svc := newTestCollegeService(nil)

	_, err := svc.ComposeNotice(context.Background(), models.ComposeNoticeRequest{Content: "no title"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCollegeService_DecideLeave(t *testing.T) {
	svc := newTestCollegeService(nil)
	pending := svc.Leaves(context.Background(), true)
	require.NotEmpty(t, pending)

	leave, err := svc.DecideLeave(context.Background(), pending[0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveApproved, leave.Status)
	assert.Len(t, svc.Leaves(context.Background(), true), len(pending)-1)

	_, err = svc.DecideLeave(context.Background(), pending[0].ID, false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	_, err = svc.DecideLeave(context.Background(), "missing", true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
