//go:build !dialog
// +build !dialog

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickProjectWithoutDialog(t *testing.T) {
	path, err := pickProject(t.TempDir())
	assert.ErrorIs(t, err, errNoDialog)
	assert.Empty(t, path)
}
