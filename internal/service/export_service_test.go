package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
)

func newTestExportService(t *testing.T) (*ExportService, *repository.RecordsRepository) {
	t.Helper()
	records := repository.NewRecordsRepository()
	return NewExportService(records, nil), records
}

func seedMarkRecords(records *repository.RecordsRepository) {
	records.SaveMarks([]models.MarkRecord{
		{StudentID: "s-1", Student: "Alex Johnson", Roll: "45", Exam: "Mid Term", Subject: "Physics", Score: 85, Total: 100},
		{StudentID: "s-2", Student: "Sarah Smith", Roll: "46", Exam: "Mid Term", Subject: "Physics", Score: 91, Total: 100},
	})
}

func TestExportService_MarksCSV(t *testing.T) {
	svc, records := newTestExportService(t)
	seedMarkRecords(records)

	file, err := svc.Marks(context.Background(), FormatCSV, "Mid Term", "Physics")
	require.NoError(t, err)
	assert.Equal(t, "marks.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Roll,Student,Exam,Subject,Score,Total", lines[0])
	assert.Contains(t, string(file.Data), "45,Alex Johnson,Mid Term,Physics,85,100")
}

func TestExportService_MarksPDF(t *testing.T) {
	svc, records := newTestExportService(t)
	seedMarkRecords(records)

	file, err := svc.Marks(context.Background(), FormatPDF, "Mid Term", "Physics")
	require.NoError(t, err)
	assert.Equal(t, "marks.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestExportService_MarksEmptyFilter(t *testing.T) {
	svc, records := newTestExportService(t)
	seedMarkRecords(records)

	_, err := svc.Marks(context.Background(), FormatCSV, "Final", "Physics")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	svc, records := newTestExportService(t)
	seedMarkRecords(records)

	_, err := svc.Marks(context.Background(), "xlsx", "Mid Term", "Physics")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportService_Attendance(t *testing.T) {
	svc, records := newTestExportService(t)
	records.SaveAttendance("12-A", "2024-10-26", map[string]bool{"s-1": true, "s-2": false})

	file, err := svc.Attendance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "attendance.csv", file.Filename)
	assert.Contains(t, string(file.Data), "2024-10-26,12-A,s-1,Present")
	assert.Contains(t, string(file.Data), "2024-10-26,12-A,s-2,Absent")
}

func TestExportService_AttendanceEmpty(t *testing.T) {
	svc, _ := newTestExportService(t)

	_, err := svc.Attendance(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
