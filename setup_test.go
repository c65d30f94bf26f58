package slidecheck_test

import (
	"log"
	"path/filepath"
	"testing"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/utils"
	"github.com/slidecheck/slidecheck"
	"github.com/stretchr/testify/suite"
)

var slash = filepath.FromSlash

// S test suite, it shares one browser between the tests that drive a page directly
type S struct {
	suite.Suite
	bin     string
	browser *rod.Browser
	page    *rod.Page
}

func init() {
	log.SetFlags(log.Ltime)
}

func Test(t *testing.T) {
	bin, has := launcher.LookPath()
	if !has {
		t.Skip("no browser found, skip the browser tests")
	}

	u := launcher.New().Bin(bin).MustLaunch()

	s := new(S)
	s.bin = bin
	s.browser = rod.New().ControlURL(u).NoDefaultDevice().MustConnect()

	defer s.browser.MustClose()

	s.page = s.browser.MustPage().MustSetViewport(slidecheck.Width, slidecheck.Height, 1, false)

	suite.Run(t, s)
}

// deck loads the fixture into the shared page
func (s *S) deck(path string) *slidecheck.Deck {
	s.page.MustNavigate(srcFile(path)).MustWaitLoad()
	return slidecheck.NewDeck(s.page)
}

// get abs file path from fixtures folder, return sample "file:///a/b/fit.html"
func srcFile(path string) string {
	return "file://" + filepath.ToSlash(file(path))
}

// get abs file path from fixtures folder, return sample "/a/b/fit.html"
func file(path string) string {
	f, err := filepath.Abs(slash(path))
	utils.E(err)
	return f
}
