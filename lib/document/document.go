// Package document locates a presentation file and does a static preflight
// on it before any browser is started.
package document

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ErrDocument error type
type ErrDocument struct {
	Path string
	Err  error
}

// Error ...
func (e *ErrDocument) Error() string {
	return fmt.Sprintf("[slidecheck] presentation %s: %v", e.Path, e.Err)
}

// Unwrap ...
func (e *ErrDocument) Unwrap() error {
	return e.Err
}

// Document is a presentation file on the local disk
type Document struct {
	// Path is absolute
	Path string

	// StaticSlides is the number of elements with the slide class in the html source.
	// Scripts may change it, the count in the rendered page is what matters.
	StaticSlides int
}

// Open resolves p to an absolute path and counts the elements with slideClass in it
func Open(p, slideClass string) (*Document, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, &ErrDocument{p, err}
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, &ErrDocument{abs, err}
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, &ErrDocument{abs, err}
	}
	if info.IsDir() {
		return nil, &ErrDocument{abs, fmt.Errorf("is a directory")}
	}

	n, err := CountClass(f, slideClass)
	if err != nil {
		return nil, &ErrDocument{abs, err}
	}

	return &Document{Path: abs, StaticSlides: n}, nil
}

// URL returns the file url of the document, such as "file:///a/b/presentation.html"
func (d *Document) URL() string {
	p := filepath.ToSlash(d.Path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // windows drive letter
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// Dir returns the directory that contains the document
func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}

// Name returns the file name of the document
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// CountClass parses the html from r and counts the elements whose class list contains class
func CountClass(r io.Reader, class string) (int, error) {
	root, err := html.Parse(r)
	if err != nil {
		return 0, err
	}

	count := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return count, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}
