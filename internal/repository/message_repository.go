package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edutrackr/edutrackr-api/internal/models"
)

// MessageRepository stores chat threads keyed by thread id. The parent
// teacher thread is pre-seeded; partner threads are created on first use.
type MessageRepository struct {
	mu      sync.RWMutex
	threads map[string][]models.Message
}

// TeacherThread is the id of the seeded parent/class-teacher conversation.
const TeacherThread = "class-teacher"

// NewMessageRepository constructs the message store with the seeded thread.
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		threads: map[string][]models.Message{
			TeacherThread: seedMessages(time.Now()),
		},
	}
}

// List returns the messages of a thread in order. An unknown thread is an
// empty conversation, not an error.
func (r *MessageRepository) List(thread string) []models.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.threads[thread]
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Append adds a message to the thread and returns it with id and timestamp
// filled in.
func (r *MessageRepository) Append(thread, sender, content string, mine bool) models.Message {
	msg := models.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now(),
		Mine:      mine,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads[thread] = append(r.threads[thread], msg)

	return msg
}
