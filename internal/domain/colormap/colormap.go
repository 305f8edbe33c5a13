// Package colormap maps mood scores onto the green-to-red display gradient.
package colormap

import (
	"fmt"
	"math"

	"github.com/jfagan/gloomboard/internal/domain/score"
)

// Gradient constants.
const (
	channelMax = 255
	halfDomain = 50.0

	defaultPositiveCap = 50.0
	defaultNegativeCap = -50.0
)

// RGB is a display color. Blue stays zero across the whole gradient.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String renders the CSS rgb() form.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ScoreToColor linearly interpolates between green (score 0) and red
// (score 100). Out-of-domain input is clamped first.
func ScoreToColor(s float64) RGB {
	if !score.IsFinite(s) {
		s = halfDomain
	}
	s = score.Clamp(s)
	return RGB{
		R: uint8(math.Round(s / score.Max * channelMax)),
		G: uint8(math.Round((score.Max - s) / score.Max * channelMax)),
		B: 0,
	}
}

// Mapper converts unbounded signed point deltas into gradient colors.
// Deltas are re-mapped onto the score domain before interpolation:
// nonnegative deltas land on the upper half, negative on the lower half,
// and deltas beyond either cap clamp at the domain edges.
type Mapper struct {
	positiveCap float64
	negativeCap float64
}

// Option applies a configuration option to the Mapper.
type Option func(*Mapper)

// WithPositiveCap sets the delta at which the color saturates to full red.
func WithPositiveCap(c float64) Option {
	return func(m *Mapper) {
		if c > 0 {
			m.positiveCap = c
		}
	}
}

// WithNegativeCap sets the delta at which the color saturates to full green.
func WithNegativeCap(c float64) Option {
	return func(m *Mapper) {
		if c < 0 {
			m.negativeCap = c
		}
	}
}

// NewMapper creates a Mapper with default caps.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{
		positiveCap: defaultPositiveCap,
		negativeCap: defaultNegativeCap,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PointsToBorderColor maps a signed contribution delta onto the gradient.
// A delta of 0 lands exactly mid-gradient; non-finite input also renders the
// neutral midpoint rather than guessing a direction.
func (m *Mapper) PointsToBorderColor(points float64) RGB {
	if !score.IsFinite(points) {
		return ScoreToColor(halfDomain)
	}

	var s float64
	if points >= 0 {
		s = halfDomain + math.Min(points, m.positiveCap)/m.positiveCap*halfDomain
	} else {
		s = halfDomain + math.Max(points, m.negativeCap)/math.Abs(m.negativeCap)*halfDomain
	}
	return ScoreToColor(s)
}
