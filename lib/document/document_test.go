package document_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slidecheck/slidecheck/lib/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountClass(t *testing.T) {
	n, err := document.CountClass(strings.NewReader(`<html><body>
		<div class="slide active"><p class="slide-title">a</p></div>
		<section class="x  slide"></section>
		<div class="slides"></div>
		<div class="slide"><span class="slide"></span></div>
	</body></html>`), "slide")

	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = document.CountClass(strings.NewReader(""), "slide")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestOpen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "deck dir", "presentation.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0775))
	require.NoError(t, os.WriteFile(p, []byte(
		`<div class="slide active"></div><div class="slide"></div>`), 0664))

	doc, err := document.Open(p, "slide")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(doc.Path))
	assert.Equal(t, 2, doc.StaticSlides)
	assert.Equal(t, "presentation.html", doc.Name())
	assert.Equal(t, filepath.Dir(p), doc.Dir())
	assert.True(t, strings.HasPrefix(doc.URL(), "file:///"))
	assert.True(t, strings.HasSuffix(doc.URL(), "/deck%20dir/presentation.html"))
}

func TestOpenMissing(t *testing.T) {
	_, err := document.Open(filepath.Join(t.TempDir(), "nope.html"), "slide")

	var e *document.ErrDocument
	require.True(t, errors.As(err, &e))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.html")
}

func TestOpenDir(t *testing.T) {
	_, err := document.Open(t.TempDir(), "slide")

	var e *document.ErrDocument
	assert.True(t, errors.As(err, &e))
}
