package models

import "time"

// RosterStudent is one seeded class-roster entry.
type RosterStudent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Roll string `json:"roll"`
}

// AttendanceSheet records one day's presence marks for a class.
type AttendanceSheet struct {
	ID          string          `json:"id"`
	Class       string          `json:"class"`
	Date        string          `json:"date"`
	Marks       map[string]bool `json:"marks"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// AttendanceSubmission marks each roster student present (true) or absent.
type AttendanceSubmission struct {
	Date  string          `json:"date" validate:"required"`
	Marks map[string]bool `json:"marks" validate:"required,min=1"`
}

// MarkRecord is one student's score for an exam and subject.
type MarkRecord struct {
	StudentID string `json:"student_id"`
	Student   string `json:"student"`
	Roll      string `json:"roll"`
	Exam      string `json:"exam"`
	Subject   string `json:"subject"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
}

// MarksUpload publishes scores for a class, exam and subject in one batch.
type MarksUpload struct {
	Exam    string         `json:"exam" validate:"required"`
	Subject string         `json:"subject" validate:"required"`
	Scores  map[string]int `json:"scores" validate:"required,min=1"`
}

// Notice is a staff announcement broadcast to all students.
type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ComposeNoticeRequest creates a new notice.
type ComposeNoticeRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// LeaveStatus tracks the decision on a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// LeaveRequest is a student absence application awaiting a staff decision.
type LeaveRequest struct {
	ID      string      `json:"id"`
	Student string      `json:"student"`
	Reason  string      `json:"reason"`
	Days    string      `json:"days"`
	Dates   string      `json:"dates"`
	Status  LeaveStatus `json:"status"`
}
