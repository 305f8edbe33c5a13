// Package ordering arranges team collections for display.
package ordering

import (
	"sort"
	"strings"

	"github.com/jfagan/gloomboard/internal/domain/model"
)

// CategoryOrder is the fixed precedence for sport groups. Categories not
// listed here surface after these, in first-encounter order.
var CategoryOrder = []string{
	"NFL",
	"NBA",
	"MLB",
	"NCAA Basketball",
	"NCAA Football",
	"F1",
	"Fantasy",
}

// defaultActivityLabel is used when an event carries no displayable fields.
const defaultActivityLabel = "recent action"

// labelSeparator joins the parts of an activity label.
const labelSeparator = " · "

// ActiveTeam pairs a team with its derived recency signal.
type ActiveTeam struct {
	Team model.Team
	// Rank orders teams by how recently they played; 0 when no event matched.
	Rank int
	// Label is a human-readable summary of the matched event, empty when
	// no event matched.
	Label string
}

// SportGroup is one sport bucket in display order.
type SportGroup struct {
	Sport string
	Teams []model.Team
}

func activityKey(name, sport string) string {
	return strings.ToLower(name) + "|" + strings.ToLower(sport)
}

// resultIsPlaceholder filters out result codes that carry no information.
func resultIsPlaceholder(result string) bool {
	switch strings.ToUpper(strings.TrimSpace(result)) {
	case "", "-", "N/A", "TBD":
		return true
	}
	return false
}

func activityLabel(ev model.Game) string {
	var parts []string
	if ev.Date != "" {
		parts = append(parts, ev.Date)
	}
	if !resultIsPlaceholder(ev.Result) {
		parts = append(parts, ev.Result)
	}
	if ev.Opponent != "" {
		parts = append(parts, "vs "+ev.Opponent)
	}
	if len(parts) == 0 {
		return defaultActivityLabel
	}
	return strings.Join(parts, labelSeparator)
}

// OrderByActivity surfaces the most recently active teams first. Events are
// expected most-recent-first, as the feed delivers them; a team's rank comes
// from its first matching event. Teams with equal rank, including all
// unmatched teams at rank 0, keep their original relative order.
func OrderByActivity(teams []model.Team, events []model.Game) []ActiveTeam {
	type activity struct {
		rank  int
		label string
	}

	latest := make(map[string]activity, len(events))
	for i, ev := range events {
		key := activityKey(ev.Team, ev.Sport)
		if _, ok := latest[key]; ok {
			continue
		}
		latest[key] = activity{
			rank:  len(events) - i,
			label: activityLabel(ev),
		}
	}

	out := make([]ActiveTeam, len(teams))
	for i, t := range teams {
		out[i] = ActiveTeam{Team: t}
		if a, ok := latest[activityKey(t.Name, t.Sport)]; ok {
			out[i].Rank = a.rank
			out[i].Label = a.label
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank > out[j].Rank
	})
	return out
}

// GroupBySport partitions teams into sport buckets, preserving first-seen
// order within each bucket. Buckets are emitted in CategoryOrder first,
// skipping empty categories, then any remaining categories in the order they
// were first encountered. Unknown categories are never dropped.
func GroupBySport(teams []model.Team) []SportGroup {
	buckets := make(map[string][]model.Team)
	var encountered []string
	for _, t := range teams {
		if _, ok := buckets[t.Sport]; !ok {
			encountered = append(encountered, t.Sport)
		}
		buckets[t.Sport] = append(buckets[t.Sport], t)
	}

	fixed := make(map[string]bool, len(CategoryOrder))
	var groups []SportGroup
	for _, sport := range CategoryOrder {
		fixed[sport] = true
		if ts := buckets[sport]; len(ts) > 0 {
			groups = append(groups, SportGroup{Sport: sport, Teams: ts})
		}
	}
	for _, sport := range encountered {
		if !fixed[sport] {
			groups = append(groups, SportGroup{Sport: sport, Teams: buckets[sport]})
		}
	}
	return groups
}
