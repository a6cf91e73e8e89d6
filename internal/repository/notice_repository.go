package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edutrackr/edutrackr-api/internal/models"
)

// NoticeRepository stores staff announcements, newest first.
type NoticeRepository struct {
	mu      sync.RWMutex
	notices []models.Notice
}

// NewNoticeRepository constructs a notice store with the seeded history.
func NewNoticeRepository() *NoticeRepository {
	return &NoticeRepository{notices: seedNotices(time.Now())}
}

// Create prepends a new active notice.
func (r *NoticeRepository) Create(title, content string) models.Notice {
	notice := models.Notice{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Active:    true,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append([]models.Notice{notice}, r.notices...)

	return notice
}

// List returns the notice history, newest first.
func (r *NoticeRepository) List() []models.Notice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Notice, len(r.notices))
	copy(out, r.notices)
	return out
}
