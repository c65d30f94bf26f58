package slidecheck

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/rod/lib/utils"
	"github.com/slidecheck/slidecheck/lib/js"
	"github.com/tidwall/gjson"
)

const (
	// SlideClass marks an element as a slide
	SlideClass = "slide"

	// ActiveClass marks the visible slide, the document's css decides what it means
	ActiveClass = "active"

	// Width of the viewport, 297mm at 96dpi
	Width = 1123

	// Height of the viewport, 210mm at 96dpi
	Height = 794

	// SettleDelay is the pause after a slide activation before it's measured
	SettleDelay = 500 * time.Millisecond

	// Tolerance in css pixels before a descendant edge counts as overflowing
	Tolerance = 5.0

	// ScreenshotPattern is the file name of the screenshot of the nth slide
	ScreenshotPattern = "slide-%d.png"
)

// Deck drives the slides of a loaded presentation page.
// It is bound to the page's context, use Page.Context to set a timeout or cancel it.
type Deck struct {
	page   *rod.Page
	settle time.Duration
	count  int
}

// NewDeck creates a Deck on a page that already loaded the presentation
func NewDeck(page *rod.Page) *Deck {
	return &Deck{page: page, settle: SettleDelay, count: -1}
}

// Page of the deck
func (d *Deck) Page() *rod.Page {
	return d.page
}

// SettleDelay sets how long Settle waits. It never goes below SettleDelay.
func (d *Deck) SettleDelay(delay time.Duration) *Deck {
	if delay < SettleDelay {
		delay = SettleDelay
	}
	d.settle = delay
	return d
}

// Count the slide elements of the document
func (d *Deck) Count() (int, error) {
	res, err := d.page.Eval(js.CountSlides.Definition, SlideClass)
	if err != nil {
		return 0, err
	}
	d.count = res.Value.Int()
	return d.count, nil
}

// Activate removes the active marker from all slides then adds it to the nth slide, n starts from 1
func (d *Deck) Activate(n int) error {
	if d.count < 0 {
		if _, err := d.Count(); err != nil {
			return err
		}
	}

	if n < 1 || n > d.count {
		return &ErrSlideIndex{Index: n, Total: d.count}
	}

	res, err := d.page.Eval(js.Activate.Definition, SlideClass, ActiveClass, n)
	if err != nil {
		return err
	}

	if c := res.Value.Int(); c != 1 {
		return &ErrActiveCount{Index: n, Count: c}
	}
	return nil
}

// Active returns the 1-based indices of the slides with the active marker
func (d *Deck) Active() ([]int, error) {
	res, err := d.page.Eval(js.Active.Definition, SlideClass, ActiveClass)
	if err != nil {
		return nil, err
	}

	list := []int{}
	for _, v := range res.Value.Arr() {
		list = append(list, v.Int())
	}
	return list, nil
}

// Settle blocks for the settle delay so that transitions and reflow can finish
func (d *Deck) Settle() error {
	ctx := d.page.GetContext()

	t := time.NewTimer(d.settle)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Measure the nth slide and its descendants, then detect the overflowing ones
func (d *Deck) Measure(n int) (*Slide, error) {
	res, err := d.page.Eval(js.Measure.Definition, SlideClass, n)
	if err != nil {
		return nil, err
	}

	raw := gjson.Parse(res.Value.JSON("", ""))

	children := []Child{}
	raw.Get("children").ForEach(func(_, c gjson.Result) bool {
		children = append(children, Child{
			Tag:   c.Get("tag").String(),
			Class: c.Get("class").String(),
			Rect:  parseRect(c),
		})
		return true
	})

	return Detect(n, parseRect(raw), children, Tolerance), nil
}

// Capture a screenshot of the viewport, not the full page, and write it to
// the ScreenshotPattern file of the nth slide under dir. Returns the file path.
func (d *Deck) Capture(dir string, n int) (string, error) {
	bin, err := d.page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return "", err
	}

	p := filepath.Join(dir, ScreenshotFile(n))
	return p, utils.OutputFile(p, bin)
}

// ScreenshotFile returns the screenshot file name of the nth slide
func ScreenshotFile(n int) string {
	return fmt.Sprintf(ScreenshotPattern, n)
}

func parseRect(v gjson.Result) Rect {
	return Rect{
		Width:  v.Get("width").Float(),
		Height: v.Get("height").Float(),
		Bottom: v.Get("bottom").Float(),
		Right:  v.Get("right").Float(),
	}
}
