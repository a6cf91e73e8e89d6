package models

import "time"

// MoodEntry is one session-scoped mood check-in.
type MoodEntry struct {
	Mood       string    `json:"mood"`
	RecordedAt time.Time `json:"recorded_at"`
}

// MoodCheckinRequest records how the student feels right now.
type MoodCheckinRequest struct {
	Mood string `json:"mood" validate:"required"`
}

// BreathingPattern describes the guided breathing cycle in seconds.
type BreathingPattern struct {
	InhaleSeconds int `json:"inhale_seconds"`
	HoldSeconds   int `json:"hold_seconds"`
	ExhaleSeconds int `json:"exhale_seconds"`
}
