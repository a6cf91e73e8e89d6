package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FlowStep enumerates the three login steps.
type FlowStep string

const (
	StepRoleSelection    FlowStep = "ROLE_SELECTION"
	StepDetailsForm      FlowStep = "DETAILS_FORM"
	StepCodeVerification FlowStep = "CODE_VERIFICATION"
)

// CodeLength is the fixed size of the verification code buffer.
const CodeLength = 4

// LoginForm is the role-dependent details payload. Which fields are required
// depends on the chosen role: students supply name, college ID and section;
// parents supply name and phone; college staff supply employee ID and
// password.
type LoginForm struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Section  string `json:"section"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Empty reports whether no field has been filled yet.
func (f LoginForm) Empty() bool {
	return f == LoginForm{}
}

// LoginFlow is the server-side state of one three-step login attempt.
type LoginFlow struct {
	ID        string           `json:"id"`
	Step      FlowStep         `json:"step"`
	Role      UserRole         `json:"role,omitempty"`
	Form      LoginForm        `json:"-"`
	Code      [CodeLength]string `json:"-"`
	Busy      bool             `json:"busy"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Clone returns a copy safe to hand outside the repository lock.
func (f *LoginFlow) Clone() *LoginFlow {
	c := *f
	return &c
}

// CodeComplete reports whether every code position holds a character.
func (f *LoginFlow) CodeComplete() bool {
	for _, d := range f.Code {
		if d == "" {
			return false
		}
	}
	return true
}

// SelectRoleRequest chooses the actor role for a flow.
type SelectRoleRequest struct {
	Role UserRole `json:"role" validate:"required"`
}

// CodeDigitRequest updates a single position of the verification code.
type CodeDigitRequest struct {
	Position int    `json:"position" validate:"min=0,max=3"`
	Value    string `json:"value"`
}

// LoginResult returns the issued token and the published identity.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        Identity  `json:"user"`
}

// JWTClaims represents the JWT payload for access tokens. SessionID binds
// the token to the in-memory session holding identity and view state.
type JWTClaims struct {
	UserID    string   `json:"user_id"`
	SessionID string   `json:"session_id"`
	Role      UserRole `json:"role"`
	Name      string   `json:"name"`
	jwt.RegisteredClaims
}
