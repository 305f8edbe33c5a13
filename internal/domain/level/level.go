// Package level maps a mood score to its display label and emoji.
package level

import (
	"github.com/jfagan/gloomboard/internal/domain/score"
)

// Level pairs the emoji and label shown for a score band.
type Level struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// Unknown is shown when the feed reports a score that cannot be trusted.
var Unknown = Level{Emoji: "❓", Label: "Unknown"}

// For returns the display level for a raw score. Boundaries are inclusive at
// each step; anything past the top of the domain clamps into the worst band.
func For(raw float64) Level {
	if !score.IsFinite(raw) {
		return Unknown
	}
	s := score.Clamp(raw)
	switch {
	case s <= 10:
		return Level{Emoji: "\U0001F60A", Label: "Feeling Great!"}
	case s <= 25:
		return Level{Emoji: "\U0001F610", Label: "Mildly Disappointed"}
	case s <= 50:
		return Level{Emoji: "\U0001F614", Label: "Pretty Depressed"}
	case s <= 75:
		return Level{Emoji: "\U0001F622", Label: "Very Depressed"}
	default:
		return Level{Emoji: "\U0001F62D", Label: "Rock Bottom"}
	}
}
