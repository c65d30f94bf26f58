package main

import (
	"errors"
	"os"
	"testing"

	"github.com/slidecheck/slidecheck/lib/document"
	"github.com/stretchr/testify/assert"
)

func TestRunMissingDocument(t *testing.T) {
	// the package dir has no presentation.html
	err := run()

	var e *document.ErrDocument
	assert.True(t, errors.As(err, &e))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "presentation.html")
}
