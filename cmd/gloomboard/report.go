package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jfagan/gloomboard/internal/adapters/feed"
	"github.com/jfagan/gloomboard/internal/config"
	"github.com/jfagan/gloomboard/internal/domain/level"
	"github.com/jfagan/gloomboard/internal/domain/model"
)

const reportRule = 60

// runReport fetches the current mood report from the upstream feed and
// prints it as formatted text.
func runReport(ctx context.Context, baseURL string, out io.Writer) error {
	if baseURL == "" {
		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}
		baseURL = cfg.FeedBaseURL
	}

	client := feed.NewClient(baseURL)
	report, err := client.Mood(ctx)
	if err != nil {
		return err
	}

	writeReport(out, report)
	return nil
}

func writeReport(out io.Writer, report model.ScoreReport) {
	rule := strings.Repeat("=", reportRule)
	lvl := level.For(report.Score)

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "SPORTS MOOD REPORT")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Generated: %s\n", time.Now().Format(time.RFC1123))
	if report.Timestamp != "" {
		fmt.Fprintf(out, "Upstream:  %s\n", report.Timestamp)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "OVERALL SCORE: %.1f/100\n", report.Score)
	fmt.Fprintf(out, "STATUS: %s %s\n", lvl.Emoji, lvl.Label)
	fmt.Fprintln(out)

	if len(report.Breakdown) == 0 {
		return
	}

	fmt.Fprintln(out, "BREAKDOWN BY CATEGORY:")
	fmt.Fprintln(out, strings.Repeat("-", reportRule))

	names := make([]string, 0, len(report.Breakdown))
	for name := range report.Breakdown {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := report.Breakdown[names[i]].Score, report.Breakdown[names[j]].Score
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		cat := report.Breakdown[name]
		fmt.Fprintf(out, "%-20s %6.1f pts", name, cat.Score)
		if cat.Record != "" {
			fmt.Fprintf(out, "  (%s)", cat.Record)
		}
		fmt.Fprintln(out)

		details := make([]string, 0, len(cat.Details))
		for d := range cat.Details {
			details = append(details, d)
		}
		sort.Strings(details)
		for _, d := range details {
			fmt.Fprintf(out, "    %-18s %6.1f\n", d, cat.Details[d])
		}
	}
	fmt.Fprintln(out, rule)
}
