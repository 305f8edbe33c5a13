package score_test

import (
	"errors"
	"math"
	"testing"

	score "github.com/jfagan/gloomboard/internal/domain/score"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given raw score values", t, func() {
		Convey("When the value is inside the domain", func() {
			got, err := score.Normalize(42.5)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 42.5)
		})

		Convey("When the value is below the domain", func() {
			got, err := score.Normalize(-5)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 0)
		})

		Convey("When the value is above the domain", func() {
			got, err := score.Normalize(150)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 100)
		})

		Convey("When sweeping a wide range", func() {
			for s := -1000.0; s <= 1000.0; s += 7.3 {
				got, err := score.Normalize(s)
				So(err, ShouldBeNil)
				So(got, ShouldBeGreaterThanOrEqualTo, 0)
				So(got, ShouldBeLessThanOrEqualTo, 100)
			}
		})

		Convey("When the value is NaN", func() {
			_, err := score.Normalize(math.NaN())
			So(errors.Is(err, score.ErrNotFinite), ShouldBeTrue)
		})

		Convey("When the value is infinite", func() {
			_, err := score.Normalize(math.Inf(1))
			So(errors.Is(err, score.ErrNotFinite), ShouldBeTrue)

			_, err = score.Normalize(math.Inf(-1))
			So(errors.Is(err, score.ErrNotFinite), ShouldBeTrue)
		})
	})
}

func TestClamp(t *testing.T) {
	Convey("Given in-domain and out-of-domain values", t, func() {
		So(score.Clamp(0), ShouldEqual, 0)
		So(score.Clamp(100), ShouldEqual, 100)
		So(score.Clamp(-0.01), ShouldEqual, 0)
		So(score.Clamp(100.01), ShouldEqual, 100)
		So(score.Clamp(55.5), ShouldEqual, 55.5)
	})
}
