package models

// PartnerVibe labels a study partner's preferred rhythm.
type PartnerVibe string

const (
	VibeNightOwl    PartnerVibe = "Night Owl"
	VibeMorningBird PartnerVibe = "Morning Bird"
)

// StudyPartner is one candidate on the partner-matching deck.
type StudyPartner struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Age      int         `json:"age"`
	Subjects []string    `json:"subjects"`
	Vibe     PartnerVibe `json:"vibe"`
	Streak   int         `json:"streak"`
	Avatar   string      `json:"avatar"`
	Bio      string      `json:"bio"`
}

// SwipeDirection is the student's decision on a candidate.
type SwipeDirection string

const (
	SwipeLike SwipeDirection = "LIKE"
	SwipeSkip SwipeDirection = "SKIP"
)

// SwipeRequest records a swipe on the named candidate.
type SwipeRequest struct {
	PartnerID string         `json:"partner_id" validate:"required"`
	Direction SwipeDirection `json:"direction" validate:"required,oneof=LIKE SKIP"`
}

// SwipeResult reports whether the swipe produced a match and what remains on
// the deck.
type SwipeResult struct {
	Matched   bool          `json:"matched"`
	Partner   *StudyPartner `json:"partner,omitempty"`
	Remaining int           `json:"remaining"`
}
