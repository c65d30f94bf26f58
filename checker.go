// Package slidecheck checks an html slide deck for content that overflows its slides.
// It loads the deck in a headless browser, activates each slide in turn, measures the
// rendered geometry and captures a screenshot per slide.
package slidecheck

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/rod/lib/utils"
	"github.com/slidecheck/slidecheck/lib/defaults"
	"github.com/slidecheck/slidecheck/lib/document"
	"github.com/slidecheck/slidecheck/lib/serve"
)

// DefaultDocument is checked when no document is set
const DefaultDocument = "presentation.html"

// Checker runs the overflow check of a deck.
// To check the env var you can use to quickly enable options from CLI, check here:
// https://pkg.go.dev/github.com/slidecheck/slidecheck/lib/defaults
type Checker struct {
	ctx context.Context

	document   string
	outDir     string
	controlURL string
	serve      bool
	settle     time.Duration

	logger   utils.Logger
	reporter *Reporter
}

// New creates a checker with the default options
func New() *Checker {
	return &Checker{
		ctx:        context.Background(),
		document:   DefaultDocument,
		outDir:     defaults.Out,
		controlURL: defaults.URL,
		settle:     SettleDelay + defaults.Slow,
		logger:     log.New(os.Stderr, "[slidecheck] ", log.LstdFlags),
		reporter:   NewReporter(os.Stdout),
	}
}

// Context sets the context of the run, cancel it to abort the run
func (c *Checker) Context(ctx context.Context) *Checker {
	c.ctx = ctx
	return c
}

// Document sets the path of the presentation file
func (c *Checker) Document(path string) *Checker {
	c.document = path
	return c
}

// OutDir sets the directory to write the screenshots to
func (c *Checker) OutDir(dir string) *Checker {
	c.outDir = dir
	return c
}

// ControlURL connects to a running browser instead of launching one.
// The browser will still be closed when the run ends.
func (c *Checker) ControlURL(u string) *Checker {
	c.controlURL = u
	return c
}

// Serve loads the document over http instead of a file url
func (c *Checker) Serve(enable bool) *Checker {
	c.serve = enable
	return c
}

// Logger sets the logger for diagnostics, use utils.LoggerQuiet to silence it
func (c *Checker) Logger(l utils.Logger) *Checker {
	c.logger = l
	return c
}

// Reporter sets where the report is printed
func (c *Checker) Reporter(r *Reporter) *Checker {
	c.reporter = r
	return c
}

// Run the check. Any error aborts the run, screenshots already written are kept.
// Finding overflow is not an error, check Summary.OK for that.
func (c *Checker) Run() (*Summary, error) {
	doc, err := document.Open(c.document, SlideClass)
	if err != nil {
		return nil, err
	}
	c.trace("document", doc.Path, "static slides:", doc.StaticSlides)

	u := doc.URL()
	if c.serve {
		srv, err := serve.New(doc.Dir())
		if err != nil {
			return nil, &ErrStep{Step: "serve", Err: err}
		}
		defer func() { _ = srv.Close() }()
		u = srv.File(doc.Name())
		c.trace("serving", doc.Dir(), "at", srv.URL)
	}

	browser, closeBrowser, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = closeBrowser() }()

	page, err := c.open(browser, u)
	if err != nil {
		return nil, err
	}

	deck := NewDeck(page).SettleDelay(c.settle)

	total, err := deck.Count()
	if err != nil {
		return nil, &ErrStep{Step: "count", Err: err}
	}
	c.reporter.Total(total)

	if total != doc.StaticSlides {
		c.logger.Println("warning: the page renders", total, "slides but the html source has", doc.StaticSlides)
	}

	sum := &Summary{Total: total, Issues: []*Slide{}}

	for i := 1; i <= total; i++ {
		slide, err := c.check(deck, i)
		if err != nil {
			return nil, err
		}
		sum.add(slide)
	}

	if err := closeBrowser(); err != nil {
		return nil, &ErrStep{Step: "close browser", Err: err}
	}

	c.reporter.Summary(sum)

	return sum, nil
}

// check activates, settles, measures, reports and captures the nth slide
func (c *Checker) check(deck *Deck, n int) (*Slide, error) {
	start := time.Now()

	if err := deck.Activate(n); err != nil {
		return nil, &ErrStep{Step: "activate", Index: n, Err: err}
	}

	if err := deck.Settle(); err != nil {
		return nil, &ErrStep{Step: "settle", Index: n, Err: err}
	}

	slide, err := deck.Measure(n)
	if err != nil {
		return nil, &ErrStep{Step: "measure", Index: n, Err: err}
	}

	c.reporter.Slide(slide)

	p, err := deck.Capture(c.outDir, n)
	if err != nil {
		return nil, &ErrStep{Step: "capture", Index: n, Err: err}
	}

	c.trace("slide", n, "overflows:", len(slide.Overflows), "screenshot:", p, "took:", time.Since(start))

	return slide, nil
}

// connect launches a browser unless a control url is set. The returned close func
// is safe to call more than once.
func (c *Checker) connect() (*rod.Browser, func() error, error) {
	u := c.controlURL

	var l *launcher.Launcher
	keepDir := defaults.Dir != ""
	if u == "" {
		l = launcher.New().Context(c.ctx).Headless(!defaults.Show)
		if defaults.Bin != "" {
			l = l.Bin(defaults.Bin)
		}
		if defaults.Dir != "" {
			l = l.UserDataDir(defaults.Dir)
		}
		if defaults.Port != 0 {
			l = l.RemoteDebuggingPort(defaults.Port)
		}

		var err error
		u, err = l.Launch()
		if err != nil {
			l.Kill()
			release(l, keepDir)
			return nil, nil, &ErrStep{Step: "launch browser", Err: err}
		}
		c.trace("launched browser", u)
	}

	browser := rod.New().
		ControlURL(u).
		Context(c.ctx).
		Logger(c.logger).
		Trace(defaults.Trace).
		NoDefaultDevice()

	if err := browser.Connect(); err != nil {
		if l != nil {
			l.Kill()
			release(l, keepDir)
		}
		return nil, nil, &ErrStep{Step: "connect browser", Err: err}
	}

	closed := false
	closer := func() error {
		if closed {
			return nil
		}
		closed = true

		err := browser.Close()
		if l != nil {
			release(l, keepDir)
		}
		return err
	}

	return browser, closer, nil
}

// release waits for the launched browser to exit and removes its temp profile.
// A profile dir set with defaults.Dir belongs to the user, keepDir leaves it on disk.
func release(l *launcher.Launcher, keepDir bool) {
	if l.PID() == 0 {
		return // never started, Cleanup would wait forever
	}

	if keepDir {
		// Cleanup removes whatever the user-data-dir flag points to
		l.Delete(flags.UserDataDir)
	}

	l.Cleanup()
}

// open creates the page with the fixed viewport and loads u in it
func (c *Checker) open(browser *rod.Browser, u string) (*rod.Page, error) {
	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, &ErrStep{Step: "open page", Err: err}
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             Width,
		Height:            Height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		return nil, &ErrStep{Step: "set viewport", Err: err}
	}

	if err := page.Navigate(u); err != nil {
		return nil, &ErrStep{Step: "navigate", Err: err}
	}

	if err := page.WaitLoad(); err != nil {
		return nil, &ErrStep{Step: "wait load", Err: err}
	}

	return page, nil
}

func (c *Checker) trace(msg ...interface{}) {
	if defaults.Trace {
		c.logger.Println(msg...)
	}
}
