package level_test

import (
	"math"
	"testing"

	level "github.com/jfagan/gloomboard/internal/domain/level"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFor(t *testing.T) {
	Convey("Given the level ladder", t, func() {
		Convey("Boundaries are inclusive at each step", func() {
			So(level.For(0).Label, ShouldEqual, "Feeling Great!")
			So(level.For(10).Label, ShouldEqual, "Feeling Great!")
			So(level.For(10.1).Label, ShouldEqual, "Mildly Disappointed")
			So(level.For(25).Label, ShouldEqual, "Mildly Disappointed")
			So(level.For(50).Label, ShouldEqual, "Pretty Depressed")
			So(level.For(75).Label, ShouldEqual, "Very Depressed")
			So(level.For(100).Label, ShouldEqual, "Rock Bottom")
		})

		Convey("Scores above the domain clamp into the worst band", func() {
			So(level.For(150).Label, ShouldEqual, "Rock Bottom")
		})

		Convey("Negative scores clamp into the best band", func() {
			So(level.For(-3).Label, ShouldEqual, "Feeling Great!")
		})

		Convey("Non-finite scores map to the unknown level", func() {
			So(level.For(math.NaN()), ShouldResemble, level.Unknown)
			So(level.For(math.Inf(1)), ShouldResemble, level.Unknown)
		})

		Convey("Every level carries an emoji", func() {
			for s := 0.0; s <= 100; s += 5 {
				So(level.For(s).Emoji, ShouldNotBeEmpty)
			}
		})
	})
}
