package wire

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// SyntaxError reports bytes that are not well-formed JSON.
type SyntaxError struct {
	Offset int64
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("wire: malformed JSON at line %d, column %d (offset %d): %s", e.Line, e.Column, e.Offset, e.Msg)
}

func newSyntaxError(data []byte, offset int64, msg string) *SyntaxError {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line := bytes.Count(head, []byte{'\n'}) + 1
	col := int(offset)
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		col = int(offset) - i - 1
	}
	return &SyntaxError{Offset: offset, Line: line, Column: col + 1, Msg: msg}
}

// SchemaError reports well-formed JSON that does not fit the declared shape:
// a missing required key, a value of the wrong kind or an unknown enum spelling.
type SchemaError struct {
	Path     []string
	Expected string
	Actual   string
}

// Mismatch builds a SchemaError with an empty path; callers up the tree
// prefix their own segments.
func Mismatch(expected, actual string) *SchemaError {
	return &SchemaError{Expected: expected, Actual: actual}
}

// FieldPath renders the path in dotted form, e.g. defs.tilesets[0].uid.
func (e *SchemaError) FieldPath() string {
	var b strings.Builder
	for i, seg := range e.Path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func (e *SchemaError) Error() string {
	path := e.FieldPath()
	if path == "" {
		path = "<root>"
	}
	if e.Actual == "missing" {
		return fmt.Sprintf("wire: %s: missing required field (expected %s)", path, e.Expected)
	}
	return fmt.Sprintf("wire: %s: expected %s, got %s", path, e.Expected, e.Actual)
}

// Within prepends seg to the path of a SchemaError; other errors pass through.
func Within(err error, seg string) error {
	var se *SchemaError
	if errors.As(err, &se) {
		se.Path = append([]string{seg}, se.Path...)
	}
	return err
}

// Index is the path segment for the i-th item of an array.
func Index(i int) string {
	return fmt.Sprintf("[%d]", i)
}
