//go:build !dialog
// +build !dialog

package main

import "errors"

var errNoDialog = errors.New("no project given and the file dialog is not built in (use -tags dialog)")

func pickProject(string) (string, error) {
	return "", errNoDialog
}
