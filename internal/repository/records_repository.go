package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edutrackr/edutrackr-api/internal/models"
)

// RecordsRepository stores academic records produced by college staff:
// attendance sheets and published mark records.
type RecordsRepository struct {
	mu         sync.RWMutex
	attendance []models.AttendanceSheet
	marks      []models.MarkRecord
}

// NewRecordsRepository constructs an empty records store.
func NewRecordsRepository() *RecordsRepository {
	return &RecordsRepository{}
}

// SaveAttendance appends a submitted attendance sheet.
func (r *RecordsRepository) SaveAttendance(class, date string, marks map[string]bool) models.AttendanceSheet {
	sheet := models.AttendanceSheet{
		ID:          uuid.NewString(),
		Class:       class,
		Date:        date,
		Marks:       make(map[string]bool, len(marks)),
		SubmittedAt: time.Now(),
	}
	for id, present := range marks {
		sheet.Marks[id] = present
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.attendance = append(r.attendance, sheet)

	return sheet
}

// AttendanceSheets returns every submitted sheet, newest first.
func (r *RecordsRepository) AttendanceSheets() []models.AttendanceSheet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AttendanceSheet, len(r.attendance))
	for i, sheet := range r.attendance {
		out[len(r.attendance)-1-i] = sheet
	}
	return out
}

// SaveMarks appends the published records for one exam and subject.
func (r *RecordsRepository) SaveMarks(records []models.MarkRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marks = append(r.marks, records...)
}

// Marks returns published records, optionally filtered by exam and subject.
// Empty filter values match everything.
func (r *RecordsRepository) Marks(exam, subject string) []models.MarkRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.MarkRecord, 0, len(r.marks))
	for _, rec := range r.marks {
		if exam != "" && rec.Exam != exam {
			continue
		}
		if subject != "" && rec.Subject != subject {
			continue
		}
		out = append(out, rec)
	}
	return out
}
