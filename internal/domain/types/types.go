// Package types contains UI-ready view models shared between the app and
// HTTP layers. Optional fields are modeled explicitly so a legitimate zero
// or empty string is never mistaken for "missing".
package types

import "time"

// IconView is a symbolic fallback icon descriptor.
type IconView struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Severity string `json:"severity"`
}

// Contributor is one breakdown entry in the aggregate score.
type Contributor struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

// MoodView is the hero-card summary of the aggregate mood.
type MoodView struct {
	// Score is the normalized aggregate score. Only meaningful when Known.
	Score float64 `json:"score"`
	// Known is false when the upstream score was not a finite number.
	Known           bool          `json:"known"`
	Level           string        `json:"level"`
	Emoji           string        `json:"emoji"`
	Color           string        `json:"color"`
	ProgressPercent float64       `json:"progress_percent"`
	Bucket          int           `json:"bucket"`
	Asset           string        `json:"asset,omitempty"`
	FallbackIcon    IconView      `json:"fallback_icon"`
	TopContributors []Contributor `json:"top_contributors"`
	SnapshotID      string        `json:"snapshot_id"`
	FetchedAt       time.Time     `json:"fetched_at"`
}

// TeamView is one team row, fully resolved for rendering.
type TeamView struct {
	Name             string   `json:"name"`
	Sport            string   `json:"sport"`
	Record           string   `json:"record"`
	WinPercentage    float64  `json:"win_percentage"`
	DepressionPoints float64  `json:"depression_points"`
	Color            string   `json:"color"`
	BorderColor      string   `json:"border_color"`
	Bucket           int      `json:"bucket"`
	Asset            string   `json:"asset,omitempty"`
	FallbackIcon     IconView `json:"fallback_icon"`
	ActivityLabel    string   `json:"activity_label,omitempty"`
	RecentStreak     []string `json:"recent_streak,omitempty"`
}

// SportGroupView is one sport section in display order.
type SportGroupView struct {
	Sport string     `json:"sport"`
	Teams []TeamView `json:"teams"`
}

// GameView is one activity row, past or upcoming.
type GameView struct {
	Date        string `json:"date"`
	Team        string `json:"team"`
	Sport       string `json:"sport"`
	Opponent    string `json:"opponent,omitempty"`
	Result      string `json:"result,omitempty"`
	ResultClass string `json:"result_class"`
	IsHome      bool   `json:"is_home"`
	IsRivalry   bool   `json:"is_rivalry"`
}
