package config_test

import (
	"context"
	"testing"

	"github.com/jfagan/gloomboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
			convey.So(cfg.FeedBaseURL, convey.ShouldEqual, "http://localhost:8000")
			convey.So(cfg.FeedTimeoutMS, convey.ShouldEqual, 10_000)
			convey.So(cfg.RefreshIntervalSec, convey.ShouldEqual, 60)
			convey.So(cfg.PositiveCap, convey.ShouldEqual, 50)
			convey.So(cfg.NegativeCap, convey.ShouldEqual, -50)
			convey.So(cfg.AssetPools, convey.ShouldBeEmpty)
		})
	})
}
