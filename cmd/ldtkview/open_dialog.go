//go:build dialog
// +build dialog

package main

import (
	"errors"

	"github.com/sqweek/dialog"
)

// pickProject asks for a project file with the native dialog, starting in
// dir. A cancelled dialog returns "" and no error.
func pickProject(dir string) (string, error) {
	path, err := dialog.File().
		Filter("LDtk projects", "ldtk").
		Title("Open LDtk project").
		SetStartDir(dir).
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	return path, err
}
