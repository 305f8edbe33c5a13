package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	feed "github.com/jfagan/gloomboard/internal/adapters/feed"
	. "github.com/smartystreets/goconvey/convey"
)

func newStubUpstream() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/depression", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"score":42.5,"level":"Pretty Depressed","emoji":"x","timestamp":"2024-01-02T00:00:00Z","breakdown":{"Cowboys":{"score":30.0}}}`))
	})
	mux.HandleFunc("/api/teams", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"teams":[{"name":"Cowboys","sport":"NFL","record":"3-2","win_percentage":60,"depression_points":12.5}]}`))
	})
	mux.HandleFunc("/api/recent-games", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"games":[{"date":"2024-01-02","team":"Cowboys","sport":"NFL","result":"L","opponent":"Eagles"}]}`))
	})
	mux.HandleFunc("/api/upcoming-events", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"events":[{"date":"2024-01-09","team":"Cowboys","sport":"NFL","opponent":"Giants"}]}`))
	})
	mux.HandleFunc("/api/refresh", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
	return httptest.NewServer(mux)
}

func TestClientFetches(t *testing.T) {
	Convey("Given a stub upstream API", t, func() {
		srv := newStubUpstream()
		defer srv.Close()
		client := feed.NewClient(srv.URL)
		ctx := context.Background()

		Convey("Mood decodes the score report", func() {
			report, err := client.Mood(ctx)
			So(err, ShouldBeNil)
			So(report.Score, ShouldEqual, 42.5)
			So(report.Level, ShouldEqual, "Pretty Depressed")
			So(report.Breakdown["Cowboys"].Score, ShouldEqual, 30.0)
		})

		Convey("Teams decodes the team list", func() {
			teams, err := client.Teams(ctx)
			So(err, ShouldBeNil)
			So(teams, ShouldHaveLength, 1)
			So(teams[0].Name, ShouldEqual, "Cowboys")
			So(teams[0].DepressionPoints, ShouldEqual, 12.5)
		})

		Convey("RecentGames decodes the game list", func() {
			games, err := client.RecentGames(ctx)
			So(err, ShouldBeNil)
			So(games, ShouldHaveLength, 1)
			So(games[0].Opponent, ShouldEqual, "Eagles")
		})

		Convey("UpcomingEvents decodes the fixture list", func() {
			events, err := client.UpcomingEvents(ctx)
			So(err, ShouldBeNil)
			So(events, ShouldHaveLength, 1)
			So(events[0].Date, ShouldEqual, "2024-01-09")
		})

		Convey("Refresh posts to the upstream", func() {
			So(client.Refresh(ctx), ShouldBeNil)
		})
	})
}

func TestClientErrors(t *testing.T) {
	Convey("Given a failing upstream", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		client := feed.NewClient(srv.URL)

		Convey("Fetch errors wrap ErrUnavailable", func() {
			_, err := client.Teams(context.Background())
			So(errors.Is(err, feed.ErrUnavailable), ShouldBeTrue)
		})
	})

	Convey("Given an upstream returning garbage", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()
		client := feed.NewClient(srv.URL)

		Convey("Decode errors wrap ErrBadPayload", func() {
			_, err := client.Mood(context.Background())
			So(errors.Is(err, feed.ErrBadPayload), ShouldBeTrue)
		})
	})

	Convey("Given a cancelled context", t, func() {
		srv := newStubUpstream()
		defer srv.Close()
		client := feed.NewClient(srv.URL)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("Fetches abort with ErrUnavailable", func() {
			_, err := client.Teams(ctx)
			So(errors.Is(err, feed.ErrUnavailable), ShouldBeTrue)
		})
	})
}
