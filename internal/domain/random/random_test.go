package random_test

import (
	"sync"
	"testing"

	"github.com/okian/leadintel/internal/domain/random"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeededSource(t *testing.T) {
	Convey("Given two sources with the same seed", t, func() {
		a := random.NewSeeded(42)
		b := random.NewSeeded(42)

		Convey("Then they produce the same sequence", func() {
			for i := 0; i < 50; i++ {
				So(a.Intn(1000), ShouldEqual, b.Intn(1000))
			}
			So(a.Float64(), ShouldEqual, b.Float64())
		})
	})

	Convey("Given a shared source", t, func() {
		src := random.NewSeeded(7)

		Convey("When used concurrently", func() {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 200; j++ {
						_ = src.Intn(10)
					}
				}()
			}
			wg.Wait()

			Convey("Then it keeps returning values in range", func() {
				v := src.Intn(10)
				So(v, ShouldBeBetweenOrEqual, 0, 9)
			})
		})
	})
}

func TestHelpers(t *testing.T) {
	Convey("Given the helper functions", t, func() {
		src := random.NewSeeded(1)

		Convey("Between stays inside [lo, hi)", func() {
			for i := 0; i < 500; i++ {
				v := random.Between(src, 70, 100)
				So(v, ShouldBeGreaterThanOrEqualTo, 70)
				So(v, ShouldBeLessThan, 100)
			}
		})

		Convey("Between collapses an empty range to lo", func() {
			So(random.Between(src, 5, 5), ShouldEqual, 5)
			So(random.Between(src, 9, 3), ShouldEqual, 9)
		})

		Convey("Pick returns an element of the slice", func() {
			items := []string{"a", "b", "c"}
			for i := 0; i < 50; i++ {
				So(items, ShouldContain, random.Pick(src, items))
			}
		})
	})
}
