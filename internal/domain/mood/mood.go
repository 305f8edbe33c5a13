// Package mood selects a representative visual asset for a mood score.
//
// The score domain is partitioned into ten severity buckets, each bound to a
// configured pool of interchangeable assets. Selection is deterministic per
// identity key so a team keeps the same asset across renders at the same
// score, while different teams in the same bucket still vary. When a bucket
// has no pool, a symbolic icon keyed by coarse severity is returned instead;
// that path never fails.
package mood

import (
	"math/rand"
	"strconv"

	"github.com/jfagan/gloomboard/internal/domain/score"
)

// Bucket identifies one of the severity bands partitioning the score domain.
// Bucket 1 covers the best-mood decade, bucket 10 the worst.
type Bucket int

// BucketCount is the number of severity bands.
const BucketCount = 10

const bucketWidth = (score.Max - score.Min) / BucketCount

// BucketFor maps a normalized score to its band. Bands are half-open decades
// [0,10), [10,20), ... with the last band absorbing everything from 90 up to
// and including 100.
func BucketFor(s float64) Bucket {
	s = score.Clamp(s)
	b := int(s/bucketWidth) + 1
	if b > BucketCount {
		b = BucketCount
	}
	return Bucket(b)
}

// Severity is the coarse class used for the symbolic fallback icon.
type Severity string

// Coarse severity classes, best to worst.
const (
	SeverityGreat    Severity = "great"
	SeverityMild     Severity = "mild"
	SeverityDown     Severity = "down"
	SeverityGrim     Severity = "grim"
	SeverityCritical Severity = "critical"
	SeverityUnknown  Severity = "unknown"
)

// Icon is a renderable symbolic descriptor for the fallback path.
type Icon struct {
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Severity Severity `json:"severity"`
}

var fallbackIcons = map[Severity]Icon{
	SeverityGreat:    {Name: "face-smile", Color: "#4ade80", Severity: SeverityGreat},
	SeverityMild:     {Name: "face-smile", Color: "#facc15", Severity: SeverityMild},
	SeverityDown:     {Name: "face-frown", Color: "#fb923c", Severity: SeverityDown},
	SeverityGrim:     {Name: "face-frown", Color: "#f87171", Severity: SeverityGrim},
	SeverityCritical: {Name: "exclamation-triangle", Color: "#dc2626", Severity: SeverityCritical},
	SeverityUnknown:  {Name: "x-circle", Color: "#9ca3af", Severity: SeverityUnknown},
}

// severityForBucket collapses the ten bands into the coarse fallback classes.
func severityForBucket(b Bucket) Severity {
	switch {
	case b <= 1:
		return SeverityGreat
	case b <= 3:
		return SeverityMild
	case b <= 5:
		return SeverityDown
	case b <= 8:
		return SeverityGrim
	default:
		return SeverityCritical
	}
}

// Selection is the outcome of one asset pick. Asset is empty when the pool
// was missing or empty; Icon is always populated so callers can fall back to
// it without re-running selection, including after a render-time load failure.
type Selection struct {
	Bucket Bucket `json:"bucket"`
	Asset  string `json:"asset,omitempty"`
	Icon   Icon   `json:"icon"`
	Known  bool   `json:"known"`
}

// Pools maps buckets to their ordered asset identifier lists.
type Pools map[Bucket][]string

// Selector picks assets for scores. Construct once at startup; the pool
// table is copied and never mutated afterwards.
type Selector struct {
	pools Pools
	seed  func() uint64
}

// Option applies a configuration option to the Selector.
type Option func(*Selector)

// WithPools sets the bucket-to-assets table. The map and its slices are
// copied so later caller mutations cannot leak in.
func WithPools(pools Pools) Option {
	return func(s *Selector) {
		copied := make(Pools, len(pools))
		for b, assets := range pools {
			copied[b] = append([]string(nil), assets...)
		}
		s.pools = copied
	}
}

// WithSeedSource replaces the pseudo-random seed used when no identity key is
// given. Tests inject a fixed source to pin down the non-deterministic branch.
func WithSeedSource(fn func() uint64) Option {
	return func(s *Selector) {
		if fn != nil {
			s.seed = fn
		}
	}
}

// NewSelector creates a Selector. Without WithPools every bucket falls back
// to its symbolic icon.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		pools: Pools{},
		seed:  rand.Uint64, //nolint:gosec // visual variety only, not security
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select picks one asset for the score. A non-finite score yields the
// unknown-severity icon with Known=false. identityKey makes the pick stable
// per entity; with an empty key the pick may vary between calls but stays
// within the same bucket.
func (s *Selector) Select(raw float64, identityKey string) Selection {
	norm, err := score.Normalize(raw)
	if err != nil {
		return Selection{Icon: fallbackIcons[SeverityUnknown]}
	}

	b := BucketFor(norm)
	sel := Selection{
		Bucket: b,
		Icon:   s.Fallback(b),
		Known:  true,
	}

	pool := s.pools[b]
	if len(pool) == 0 {
		return sel
	}

	var seed uint64
	if identityKey != "" {
		seed = hashKey(identityKey + strconv.FormatFloat(norm, 'f', -1, 64))
	} else {
		seed = s.seed()
	}
	sel.Asset = pool[seed%uint64(len(pool))]
	return sel
}

// Fallback returns the symbolic icon for a bucket. It is derivable without
// re-running selection, which is the required recovery path when a chosen
// asset fails to load at render time.
func (s *Selector) Fallback(b Bucket) Icon {
	if b < 1 || b > BucketCount {
		return fallbackIcons[SeverityUnknown]
	}
	return fallbackIcons[severityForBucket(b)]
}

// hashKey is a polynomial rolling hash over the key's runes. Stable across
// calls and processes; collision quality is irrelevant here.
func hashKey(key string) uint64 {
	var h uint64
	for _, r := range key {
		h = h*31 + uint64(r)
	}
	return h
}
