package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/edutrackr/edutrackr-api/internal/models"
	appErrors "github.com/edutrackr/edutrackr-api/pkg/errors"
	"github.com/edutrackr/edutrackr-api/pkg/export"
)

// ExportFormat names a supported report format.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered report ready to be sent as a download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type exportRecordsStore interface {
	Marks(exam, subject string) []models.MarkRecord
	AttendanceSheets() []models.AttendanceSheet
}

// ExportService renders marks and attendance reports as CSV or PDF.
type ExportService struct {
	records exportRecordsStore
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewExportService constructs an ExportService instance.
func NewExportService(records exportRecordsStore, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		records: records,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

// Marks renders the published scores for an exam and subject.
func (s *ExportService) Marks(ctx context.Context, format ExportFormat, exam, subject string) (*ExportFile, error) {
	records := s.records.Marks(exam, subject)
	if len(records) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no marks published for the requested filter")
	}

	dataset := export.Dataset{
		Headers: []string{"Roll", "Student", "Exam", "Subject", "Score", "Total"},
		Rows:    make([]map[string]string, 0, len(records)),
	}
	for _, r := range records {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Roll":    r.Roll,
			"Student": r.Student,
			"Exam":    r.Exam,
			"Subject": r.Subject,
			"Score":   strconv.Itoa(r.Score),
			"Total":   strconv.Itoa(r.Total),
		})
	}

	return s.render(format, "marks", "Marks Report", dataset)
}

// Attendance renders every submitted attendance sheet, one row per student
// per day.
func (s *ExportService) Attendance(ctx context.Context) (*ExportFile, error) {
	sheets := s.records.AttendanceSheets()
	if len(sheets) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no attendance sheets submitted")
	}

	dataset := export.Dataset{
		Headers: []string{"Date", "Class", "Student", "Present"},
	}
	for _, sheet := range sheets {
		for id, present := range sheet.Marks {
			status := "Absent"
			if present {
				status = "Present"
			}
			dataset.Rows = append(dataset.Rows, map[string]string{
				"Date":    sheet.Date,
				"Class":   sheet.Class,
				"Student": id,
				"Present": status,
			})
		}
	}

	return s.render(FormatCSV, "attendance", "", dataset)
}

func (s *ExportService) render(format ExportFormat, name, title string, dataset export.Dataset) (*ExportFile, error) {
	switch ExportFormat(strings.ToLower(string(format))) {
	case FormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("%s.csv", name),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case FormatPDF:
		data, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("%s.pdf", name),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
