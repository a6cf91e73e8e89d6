package models

import "time"

// Message is one chat entry in the parent/teacher thread.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Mine      bool      `json:"mine"`
}

// SendMessageRequest appends a message to the thread.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}
