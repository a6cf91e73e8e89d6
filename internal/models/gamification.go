package models

// Trend marks leaderboard movement since the previous period.
type Trend string

const (
	TrendUp   Trend = "UP"
	TrendDown Trend = "DOWN"
	TrendSame Trend = "SAME"
)

// LeaderboardEntry is one ranked student on the XP leaderboard.
type LeaderboardEntry struct {
	ID     string `json:"id"`
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	XP     int    `json:"xp"`
	Trend  Trend  `json:"trend"`
}

// Badge is one achievement in the catalog.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// AwardXPRequest grants experience to the current student session.
type AwardXPRequest struct {
	Amount int    `json:"amount" validate:"required,min=1,max=500"`
	Reason string `json:"reason"`
}
