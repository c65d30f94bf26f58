package slidecheck_test

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/slidecheck/slidecheck"
)

func (s *S) TestCount() {
	s.Equal(3, s.deck("fixtures/fit.html").MustCount())
	s.Equal(2, s.deck("fixtures/overflow.html").MustCount())
	s.Equal(0, s.deck("fixtures/empty.html").MustCount())
}

func (s *S) TestActivate() {
	d := s.deck("fixtures/fit.html")

	s.Equal([]int{1}, d.MustActive())

	for _, i := range []int{3, 1, 2, 2} {
		d.MustActivate(i)
		s.Equal([]int{i}, d.MustActive())
	}
}

func (s *S) TestActivateOutOfRange() {
	d := s.deck("fixtures/fit.html")

	for _, i := range []int{0, 4, -1} {
		err := d.Activate(i)

		var e *slidecheck.ErrSlideIndex
		s.True(errors.As(err, &e))
		s.Equal(i, e.Index)
		s.Equal(3, e.Total)
	}

	err := s.deck("fixtures/empty.html").Activate(1)
	var e *slidecheck.ErrSlideIndex
	s.True(errors.As(err, &e))

	s.Panics(func() {
		s.deck("fixtures/empty.html").MustActivate(1)
	})
}

func (s *S) TestMeasure() {
	d := s.deck("fixtures/overflow.html")

	d.MustActivate(1)
	first := d.MustMeasure(1)
	s.Equal(1, first.Index)
	s.False(first.HasOverflow)
	s.Empty(first.Overflows)
	s.InDelta(float64(slidecheck.Width), first.Width, 0.01)
	s.InDelta(float64(slidecheck.Height), first.Height, 0.01)

	d.MustActivate(2)
	second := d.MustMeasure(2)
	s.True(second.HasOverflow)
	s.Len(second.Overflows, 1)

	o := second.Overflows[0]
	s.Equal("DIV", o.Tag)
	s.Equal("box note", o.Class)
	s.InDelta(804, o.Bottom, 0.01)
	s.InDelta(794, o.SlideBottom, 0.01)
	s.InDelta(10, o.Delta.Bottom, 0.01)
	s.True(o.Vertical(slidecheck.Tolerance))
	s.False(o.Horizontal(slidecheck.Tolerance))
}

func (s *S) TestMeasureRight() {
	d := s.deck("fixtures/wide.html")

	d.MustActivate(1)
	slide := d.MustMeasure(1)
	s.Len(slide.Overflows, 2)

	wide, corner := slide.Overflows[0], slide.Overflows[1]

	s.Equal("P", wide.Tag)
	s.InDelta(12.5, wide.Delta.Right, 0.01)
	s.True(wide.Horizontal(slidecheck.Tolerance))
	s.False(wide.Vertical(slidecheck.Tolerance))

	s.Equal("DIV", corner.Tag)
	s.InDelta(16, corner.Delta.Bottom, 0.01)
	s.InDelta(17, corner.Delta.Right, 0.01)
	s.True(corner.Horizontal(slidecheck.Tolerance))
	s.True(corner.Vertical(slidecheck.Tolerance))
}

func (s *S) TestMeasureWithinTolerance() {
	d := s.deck("fixtures/fit.html")

	for i := 1; i <= 3; i++ {
		d.MustActivate(i)
		s.False(d.MustMeasure(i).HasOverflow, "slide %d", i)
	}
}

func (s *S) TestSettle() {
	d := s.deck("fixtures/fit.html").SettleDelay(time.Millisecond)

	start := time.Now()
	d.MustSettle()
	s.True(time.Since(start) >= slidecheck.SettleDelay)
}

func (s *S) TestSettleCanceled() {
	s.deck("fixtures/fit.html")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := slidecheck.NewDeck(s.page.Context(ctx)).Settle()
	s.True(errors.Is(err, context.Canceled))
}

func (s *S) TestCapture() {
	dir := s.T().TempDir()
	d := s.deck("fixtures/overflow.html")

	d.MustActivate(2)
	p := d.MustCapture(dir, 2)
	s.Equal(filepath.Join(dir, "slide-2.png"), p)

	f, err := os.Open(p)
	s.Require().NoError(err)
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	s.Require().NoError(err)
	s.Equal(slidecheck.Width, img.Bounds().Dx())
	s.Equal(slidecheck.Height, img.Bounds().Dy())
}
