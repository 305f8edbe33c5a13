// Package model contains domain records decoded from the upstream feed.
package model

// Team is one favorite team as reported by the feed. The pipeline treats the
// collection as a read-only input for a single ordering pass.
type Team struct {
	Name             string             `json:"name"`
	Sport            string             `json:"sport"`
	Wins             int                `json:"wins"`
	Losses           int                `json:"losses"`
	Record           string             `json:"record"`
	WinPercentage    float64            `json:"win_percentage"`
	DepressionPoints float64            `json:"depression_points"`
	RecentStreak     []string           `json:"recent_streak,omitempty"`
	Breakdown        map[string]float64 `json:"breakdown,omitempty"`
}

// Game is a single activity event: a recent result or an upcoming fixture.
type Game struct {
	Date      string `json:"date"`
	Team      string `json:"team"`
	Sport     string `json:"sport"`
	Opponent  string `json:"opponent,omitempty"`
	Result    string `json:"result,omitempty"`
	IsHome    bool   `json:"is_home,omitempty"`
	IsRivalry bool   `json:"is_rivalry,omitempty"`
}

// CategoryScore is one breakdown entry in the aggregate score report.
type CategoryScore struct {
	Score   float64            `json:"score"`
	Record  string             `json:"record,omitempty"`
	Details map[string]float64 `json:"details,omitempty"`
}

// ScoreReport is the aggregate mood payload computed by the external API.
type ScoreReport struct {
	Score     float64                  `json:"score"`
	Level     string                   `json:"level"`
	Emoji     string                   `json:"emoji,omitempty"`
	Timestamp string                   `json:"timestamp"`
	Breakdown map[string]CategoryScore `json:"breakdown,omitempty"`
}
