package ldtk

import (
	"errors"
	"strings"

	"github.com/milk9111/ldtk/wire"
)

// ErrorKind separates the ways a load can fail.
type ErrorKind int

const (
	SourceUnavailable ErrorKind = iota + 1
	MalformedDocument
	SchemaMismatch
	ExternalReferenceUnresolved
)

func (k ErrorKind) String() string {
	switch k {
	case SourceUnavailable:
		return "source unavailable"
	case MalformedDocument:
		return "malformed document"
	case SchemaMismatch:
		return "schema mismatch"
	case ExternalReferenceUnresolved:
		return "external reference unresolved"
	default:
		return "unknown error"
	}
}

var (
	ErrSourceUnavailable           = errors.New("ldtk: source unavailable")
	ErrMalformedDocument           = errors.New("ldtk: malformed document")
	ErrSchemaMismatch              = errors.New("ldtk: schema mismatch")
	ErrExternalReferenceUnresolved = errors.New("ldtk: external reference unresolved")
)

// Error is returned by every fallible operation in this package. Path is the
// file involved, if any; Field is the dotted JSON path for schema problems.
// The underlying *wire.SyntaxError or *wire.SchemaError stays reachable
// through errors.As.
type Error struct {
	Kind  ErrorKind
	Path  string
	Field string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("ldtk: ")
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Field != "" {
		b.WriteString(" at ")
		b.WriteString(e.Field)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Kind, so errors.Is(err, ErrSchemaMismatch)
// works without unpacking.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case SourceUnavailable:
		return ErrSourceUnavailable
	case MalformedDocument:
		return ErrMalformedDocument
	case SchemaMismatch:
		return ErrSchemaMismatch
	case ExternalReferenceUnresolved:
		return ErrExternalReferenceUnresolved
	}
	return nil
}

// classify turns a decode failure into an *Error of the matching kind.
func classify(err error, path string) error {
	if err == nil {
		return nil
	}
	var le *Error
	if errors.As(err, &le) {
		return err
	}

	var syn *wire.SyntaxError
	if errors.As(err, &syn) {
		return &Error{Kind: MalformedDocument, Path: path, Err: err}
	}
	out := &Error{Kind: SchemaMismatch, Path: path, Err: err}
	var se *wire.SchemaError
	if errors.As(err, &se) {
		out.Field = se.FieldPath()
	}
	return out
}

// unresolved wraps the failure to read or decode one external level.
func unresolved(err error, path string) error {
	out := &Error{Kind: ExternalReferenceUnresolved, Path: path, Err: err}
	var se *wire.SchemaError
	if errors.As(err, &se) {
		out.Field = se.FieldPath()
	}
	return out
}
