package models

import (
	"fmt"
	"net/url"
	"time"
)

// UserRole enumerates the portal's actor roles.
type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleParent  UserRole = "PARENT"
	RoleCollege UserRole = "COLLEGE"
)

// ValidRole reports whether the role is one of the closed set.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleStudent, RoleParent, RoleCollege:
		return true
	}
	return false
}

// GamificationStats carry the student progression counters. They exist only
// on student identities.
type GamificationStats struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
	MaxXP int `json:"max_xp"`
}

// Identity represents the authenticated actor. Role is immutable for the
// identity's lifetime; Gamification is non-nil only when Role is STUDENT,
// which NewIdentity enforces.
type Identity struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Role         UserRole           `json:"role"`
	Avatar       string             `json:"avatar,omitempty"`
	Gamification *GamificationStats `json:"gamification,omitempty"`
}

// AvatarURL derives a deterministic placeholder avatar from a display name.
func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=2563EB&color=fff", url.QueryEscape(name))
}

// NewIdentity builds an identity, attaching gamification stats for students
// and stripping them for every other role.
func NewIdentity(id, name string, role UserRole, avatar string, stats *GamificationStats) Identity {
	ident := Identity{ID: id, Name: name, Role: role, Avatar: avatar}
	if role == RoleStudent {
		ident.Gamification = stats
	}
	return ident
}

// Session is the process-wide application-session scope: it owns the
// identity and the current view selection. Nothing about it is persisted.
type Session struct {
	ID          string    `json:"id"`
	Identity    Identity  `json:"identity"`
	CurrentView View      `json:"current_view"`
	CreatedAt   time.Time `json:"created_at"`
}

// Clone returns a deep copy safe to hand outside the repository lock.
func (s *Session) Clone() *Session {
	c := *s
	if s.Identity.Gamification != nil {
		stats := *s.Identity.Gamification
		c.Identity.Gamification = &stats
	}
	return &c
}
