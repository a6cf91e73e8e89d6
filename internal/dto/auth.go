package dto

import "github.com/edutrackr/edutrackr-api/internal/models"

// FlowStateResponse is the externally visible login-flow state. The form
// payload and code characters themselves are never echoed back; only which
// code positions are filled.
type FlowStateResponse struct {
	ID              string          `json:"id"`
	Step            models.FlowStep `json:"step"`
	Role            models.UserRole `json:"role,omitempty"`
	FilledPositions []bool          `json:"filledPositions"`
	Busy            bool            `json:"busy"`
}

// CodeDigitResponse reports the outcome of a single code-digit entry.
// NextPosition is -1 when focus should not advance.
type CodeDigitResponse struct {
	Accepted     bool `json:"accepted"`
	NextPosition int  `json:"nextPosition"`
	Complete     bool `json:"complete"`
}
