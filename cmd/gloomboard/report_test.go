package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jfagan/gloomboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteReport(t *testing.T) {
	Convey("Given a score report with a breakdown", t, func() {
		report := model.ScoreReport{
			Score:     42.5,
			Timestamp: "2024-01-02T00:00:00Z",
			Breakdown: map[string]model.CategoryScore{
				"Cowboys":   {Score: 30, Record: "3-2"},
				"Mavericks": {Score: 10, Details: map[string]float64{"losing streak": 6}},
				"Rangers":   {Score: 2},
			},
		}

		var buf bytes.Buffer
		writeReport(&buf, report)
		out := buf.String()

		Convey("It prints the score and derived level", func() {
			So(out, ShouldContainSubstring, "OVERALL SCORE: 42.5/100")
			So(out, ShouldContainSubstring, "Pretty Depressed")
		})

		Convey("It prints categories in descending point order", func() {
			cowboys := bytes.Index(buf.Bytes(), []byte("Cowboys"))
			mavericks := bytes.Index(buf.Bytes(), []byte("Mavericks"))
			rangers := bytes.Index(buf.Bytes(), []byte("Rangers"))
			So(cowboys, ShouldBeLessThan, mavericks)
			So(mavericks, ShouldBeLessThan, rangers)
		})

		Convey("It prints detail lines under their category", func() {
			So(out, ShouldContainSubstring, "losing streak")
			So(out, ShouldContainSubstring, "(3-2)")
		})
	})
}

func TestRunReport(t *testing.T) {
	Convey("Given an upstream feed serving a mood payload", t, func() {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/depression" {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"score":87.0,"level":"Rock Bottom","timestamp":"2024-01-02T00:00:00Z"}`))
		}))
		defer upstream.Close()

		Convey("runReport renders the fetched report", func() {
			var buf bytes.Buffer
			err := runReport(context.Background(), upstream.URL, &buf)
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "OVERALL SCORE: 87.0/100")
			So(buf.String(), ShouldContainSubstring, "Rock Bottom")
		})

		Convey("runReport surfaces upstream failures", func() {
			var buf bytes.Buffer
			err := runReport(context.Background(), "http://127.0.0.1:1", &buf)
			So(err, ShouldNotBeNil)
		})
	})
}
