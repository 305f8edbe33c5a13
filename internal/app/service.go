// Package service wires the presentation pipeline behind the HTTP API.
//
// The service holds the latest immutable snapshot of upstream data. Each
// refresh fetches the full payload set, runs every stage of the pipeline
// (normalize, color, mood selection, ordering) over it, and swaps the result
// in atomically. Readers only ever see a complete snapshot.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jfagan/gloomboard/internal/domain/colormap"
	"github.com/jfagan/gloomboard/internal/domain/level"
	"github.com/jfagan/gloomboard/internal/domain/model"
	"github.com/jfagan/gloomboard/internal/domain/mood"
	"github.com/jfagan/gloomboard/internal/domain/ordering"
	"github.com/jfagan/gloomboard/internal/domain/score"
	"github.com/jfagan/gloomboard/internal/domain/types"
	"github.com/jfagan/gloomboard/pkg/logger"
	"github.com/jfagan/gloomboard/pkg/metrics"
)

// Default configuration constants.
const (
	defaultRefreshInterval = 60 * time.Second
	topContributorCount    = 3
)

// Feed abstracts the upstream dashboard API.
type Feed interface {
	Mood(ctx context.Context) (model.ScoreReport, error)
	Teams(ctx context.Context) ([]model.Team, error)
	RecentGames(ctx context.Context) ([]model.Game, error)
	UpcomingEvents(ctx context.Context) ([]model.Game, error)
	Refresh(ctx context.Context) error
}

// Snapshot is one fully-rendered view of the dashboard data.
type Snapshot struct {
	ID        string
	FetchedAt time.Time
	Mood      types.MoodView
	Teams     []types.TeamView
	Groups    []types.SportGroupView
	Games     []types.GameView
	Upcoming  []types.GameView
}

// Service implements the API dependencies for the dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	feed     Feed
	selector *mood.Selector
	mapper   *colormap.Mapper

	// Configuration
	refreshInterval time.Duration
	pools           mood.Pools
	positiveCap     float64
	negativeCap     float64
	seedSource      func() uint64

	// State
	snapshot *Snapshot
	started  bool
	stopCh   chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFeed sets the upstream feed client.
func WithFeed(f Feed) Option {
	return func(s *Service) {
		if f != nil {
			s.feed = f
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRefreshInterval sets how often the feed is re-fetched.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.refreshInterval = d
		}
	}
}

// WithAssetPools sets the bucket-to-assets table for mood selection.
func WithAssetPools(pools mood.Pools) Option {
	return func(s *Service) {
		s.pools = pools
	}
}

// WithColorCaps tunes where the signed-delta border color saturates.
func WithColorCaps(positive, negative float64) Option {
	return func(s *Service) {
		if positive > 0 {
			s.positiveCap = positive
		}
		if negative < 0 {
			s.negativeCap = negative
		}
	}
}

// WithSeedSource injects the seed used for identity-less mood selection.
func WithSeedSource(fn func() uint64) Option {
	return func(s *Service) {
		s.seedSource = fn
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		refreshInterval: defaultRefreshInterval,
		positiveCap:     50,
		negativeCap:     -50,
		stopCh:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the pipeline components, takes an initial snapshot, and
// begins the periodic refresh loop.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.feed == nil {
		s.mu.Unlock()
		return ErrNoFeed
	}

	selectorOpts := []mood.Option{mood.WithPools(s.pools)}
	if s.seedSource != nil {
		selectorOpts = append(selectorOpts, mood.WithSeedSource(s.seedSource))
	}
	s.selector = mood.NewSelector(selectorOpts...)
	s.mapper = colormap.NewMapper(
		colormap.WithPositiveCap(s.positiveCap),
		colormap.WithNegativeCap(s.negativeCap),
	)
	s.started = true
	s.mu.Unlock()

	s.logger.Info(ctx, "starting dashboard service",
		logger.Duration("refreshInterval", s.refreshInterval),
		logger.Int("assetPools", len(s.pools)),
	)

	// The first snapshot is best-effort: the server still comes up when the
	// upstream is down and serves 503 until a refresh succeeds.
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "initial snapshot failed", logger.Error(err))
	}

	go s.refreshLoop(ctx)
	return nil
}

// Stop shuts down the refresh loop.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

func (s *Service) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn(ctx, "periodic refresh failed; keeping last snapshot", logger.Error(err))
			}
		}
	}
}

// Refresh fetches the full payload set and swaps in a new snapshot. On any
// fetch failure the previous snapshot is kept and the error returned.
func (s *Service) Refresh(ctx context.Context) error {
	start := time.Now()

	report, err := s.feed.Mood(ctx)
	if err != nil {
		metrics.RecordFeedError("depression")
		metrics.RecordRefreshError()
		return fmt.Errorf("fetch mood: %w", err)
	}
	teams, err := s.feed.Teams(ctx)
	if err != nil {
		metrics.RecordFeedError("teams")
		metrics.RecordRefreshError()
		return fmt.Errorf("fetch teams: %w", err)
	}
	games, err := s.feed.RecentGames(ctx)
	if err != nil {
		metrics.RecordFeedError("recent-games")
		metrics.RecordRefreshError()
		return fmt.Errorf("fetch recent games: %w", err)
	}
	upcoming, err := s.feed.UpcomingEvents(ctx)
	if err != nil {
		metrics.RecordFeedError("upcoming-events")
		metrics.RecordRefreshError()
		return fmt.Errorf("fetch upcoming events: %w", err)
	}

	pipelineStart := time.Now()
	snap := s.buildSnapshot(report, teams, games, upcoming, time.Now().UTC())
	metrics.RecordPipelineDuration(float64(time.Since(pipelineStart).Microseconds()) / 1000.0)

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	metrics.RecordRefresh(float64(time.Since(start).Milliseconds()))
	metrics.UpdateSnapshotTime(float64(snap.FetchedAt.Unix()))
	metrics.UpdateTeamsTracked(len(teams))

	s.logger.Info(ctx, "snapshot refreshed",
		logger.String("snapshotID", snap.ID),
		logger.Int("teams", len(teams)),
		logger.Int("games", len(games)),
		logger.Bool("scoreKnown", snap.Mood.Known),
	)
	return nil
}

// TriggerRefresh asks the upstream to recompute, then re-fetches. The
// upstream recompute is best-effort; a failure there still allows fetching
// whatever the upstream currently has.
func (s *Service) TriggerRefresh(ctx context.Context) error {
	if err := s.feed.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "upstream recompute failed; fetching current data", logger.Error(err))
	}
	return s.Refresh(ctx)
}

// buildSnapshot runs the full presentation pipeline over one payload set.
// It is pure given its inputs apart from the snapshot ID and any
// identity-less mood selections.
func (s *Service) buildSnapshot(report model.ScoreReport, teams []model.Team, games, upcoming []model.Game, fetchedAt time.Time) *Snapshot {
	snap := &Snapshot{
		ID:        uuid.New().String(),
		FetchedAt: fetchedAt,
		Mood:      s.buildMoodView(report, fetchedAt),
		Games:     buildGameViews(games),
		Upcoming:  buildGameViews(upcoming),
	}
	snap.Mood.SnapshotID = snap.ID

	active := ordering.OrderByActivity(teams, games)
	snap.Teams = make([]types.TeamView, len(active))
	for i, at := range active {
		snap.Teams[i] = s.buildTeamView(at.Team, at.Label)
	}

	groups := ordering.GroupBySport(teams)
	snap.Groups = make([]types.SportGroupView, len(groups))
	for i, g := range groups {
		views := make([]types.TeamView, len(g.Teams))
		for j, t := range g.Teams {
			views[j] = s.buildTeamView(t, "")
		}
		snap.Groups[i] = types.SportGroupView{Sport: g.Sport, Teams: views}
	}
	return snap
}

func (s *Service) buildMoodView(report model.ScoreReport, fetchedAt time.Time) types.MoodView {
	view := types.MoodView{
		TopContributors: topContributors(report.Breakdown),
		FetchedAt:       fetchedAt,
	}

	sel := s.selector.Select(report.Score, "")
	view.Bucket = int(sel.Bucket)
	view.Asset = sel.Asset
	view.FallbackIcon = iconView(sel.Icon)
	if sel.Asset == "" {
		metrics.RecordFallbackSelection()
	}

	norm, err := score.Normalize(report.Score)
	if err != nil {
		// Unknown score: render a neutral placeholder, never a fake zero.
		view.Known = false
		lv := level.Unknown
		view.Level = lv.Label
		view.Emoji = lv.Emoji
		view.Color = sel.Icon.Color
		return view
	}

	view.Known = true
	view.Score = norm
	lv := level.For(norm)
	view.Level = lv.Label
	view.Emoji = lv.Emoji
	view.Color = colormap.ScoreToColor(norm).String()
	view.ProgressPercent = norm
	return view
}

func (s *Service) buildTeamView(t model.Team, activityLabel string) types.TeamView {
	sel := s.selector.Select(t.DepressionPoints, t.Name)
	if sel.Asset == "" {
		metrics.RecordFallbackSelection()
	}
	view := types.TeamView{
		Name:             t.Name,
		Sport:            t.Sport,
		Record:           t.Record,
		WinPercentage:    t.WinPercentage,
		DepressionPoints: t.DepressionPoints,
		BorderColor:      s.mapper.PointsToBorderColor(t.DepressionPoints).String(),
		Bucket:           int(sel.Bucket),
		Asset:            sel.Asset,
		FallbackIcon:     iconView(sel.Icon),
		ActivityLabel:    activityLabel,
		RecentStreak:     t.RecentStreak,
	}
	if score.IsFinite(t.DepressionPoints) {
		view.Color = colormap.ScoreToColor(score.Clamp(t.DepressionPoints)).String()
	} else {
		view.Color = sel.Icon.Color
	}
	return view
}

func topContributors(breakdown map[string]model.CategoryScore) []types.Contributor {
	contributors := make([]types.Contributor, 0, len(breakdown))
	for name, cat := range breakdown {
		contributors = append(contributors, types.Contributor{Name: name, Points: cat.Score})
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		if contributors[i].Points != contributors[j].Points {
			return contributors[i].Points > contributors[j].Points
		}
		return contributors[i].Name < contributors[j].Name
	})
	if len(contributors) > topContributorCount {
		contributors = contributors[:topContributorCount]
	}
	return contributors
}

func buildGameViews(games []model.Game) []types.GameView {
	views := make([]types.GameView, len(games))
	for i, g := range games {
		views[i] = types.GameView{
			Date:        g.Date,
			Team:        g.Team,
			Sport:       g.Sport,
			Opponent:    g.Opponent,
			Result:      g.Result,
			ResultClass: resultClass(g.Result),
			IsHome:      g.IsHome,
			IsRivalry:   g.IsRivalry,
		}
	}
	return views
}

// resultClass buckets result codes for rendering: outright wins, losses and
// DNFs, other podium finishes, everything else neutral.
func resultClass(result string) string {
	r := strings.ToUpper(strings.TrimSpace(result))
	switch {
	case r == "W" || r == "P1":
		return "win"
	case r == "L" || r == "DNF":
		return "loss"
	case strings.HasPrefix(r, "P") && r != "P":
		return "podium"
	default:
		return "neutral"
	}
}

func iconView(ic mood.Icon) types.IconView {
	return types.IconView{
		Name:     ic.Name,
		Color:    ic.Color,
		Severity: string(ic.Severity),
	}
}

// Read operations, consumed by the HTTP layer.

// Mood returns the hero-card view from the current snapshot.
func (s *Service) Mood(ctx context.Context) (types.MoodView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return types.MoodView{}, ErrNoSnapshot
	}
	return s.snapshot.Mood, nil
}

// TeamsByActivity returns teams ordered by most recent activity.
func (s *Service) TeamsByActivity(ctx context.Context) ([]types.TeamView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return s.snapshot.Teams, nil
}

// TeamsBySport returns teams grouped by sport category.
func (s *Service) TeamsBySport(ctx context.Context) ([]types.SportGroupView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return s.snapshot.Groups, nil
}

// RecentGames returns the recent game views.
func (s *Service) RecentGames(ctx context.Context) ([]types.GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return s.snapshot.Games, nil
}

// UpcomingEvents returns the upcoming fixture views.
func (s *Service) UpcomingEvents(ctx context.Context) ([]types.GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return s.snapshot.Upcoming, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":         s.started,
		"refreshInterval": s.refreshInterval.String(),
	}
	if s.snapshot != nil {
		stats["snapshotID"] = s.snapshot.ID
		stats["fetchedAt"] = s.snapshot.FetchedAt
		stats["teams"] = len(s.snapshot.Teams)
		stats["games"] = len(s.snapshot.Games)
		stats["scoreKnown"] = s.snapshot.Mood.Known
	}
	return stats
}
