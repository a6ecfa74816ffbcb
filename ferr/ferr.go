// Package ferr defines the closed set of error kinds produced anywhere in
// the compilation pipeline, mirroring spec.md's LexError/ParseError/
// SemanticError/RegistryError/IOError/AssertionError taxonomy.
//
// This follows the teacher's (breadchris/yaegi) habit of a small custom
// error type implementing the error interface rather than a hierarchy of
// types, and the errCode/errs table shape from the pack's
// yaninyzwitty-hyperpb-go/error.go: one closed enum, one wrapper struct.
package ferr

import (
	"fmt"

	"github.com/firrtlator/firrtlator/token"
)

// Kind is the closed vocabulary of error kinds.
type Kind int

const (
	Lex Kind = iota
	Parse
	Semantic
	Registry
	IO
	Assertion
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex error"
	case Parse:
		return "parse error"
	case Semantic:
		return "semantic error"
	case Registry:
		return "registry error"
	case IO:
		return "I/O error"
	case Assertion:
		return "assertion error"
	default:
		return "error"
	}
}

// Error is the single error type used across the pipeline. Pos is the zero
// value for kinds that carry no source location (Registry, IO, Assertion).
type Error struct {
	Kind Kind
	Pos  token.Position
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, pos token.Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// LexError reports an indentation underflow, malformed literal, or
// unterminated string/info at pos.
func LexError(pos token.Position, format string, args ...interface{}) *Error {
	return newf(Lex, pos, format, args...)
}

// ParseError reports a token mismatch, unexpected INDENT/DEDENT, excess
// PrimOp operand/parameter, or unknown PrimOp keyword at pos.
func ParseError(pos token.Position, format string, args ...interface{}) *Error {
	return newf(Parse, pos, format, args...)
}

// SemanticError reports a structural invariant violation: statements in an
// extmodule, defname/parameters in an internal module, a duplicate memory
// port name, a duplicate memory scalar field, or a failed reset predicate.
func SemanticError(pos token.Position, format string, args ...interface{}) *Error {
	return newf(Semantic, pos, format, args...)
}

// RegistryError reports an unknown or duplicate frontend/pass/backend name
// or extension.
func RegistryError(format string, args ...interface{}) *Error {
	return newf(Registry, token.Position{}, format, args...)
}

// IOError reports a source or sink I/O failure, wrapping the cause.
func IOError(cause error, format string, args ...interface{}) *Error {
	e := newf(IO, token.Position{}, format, args...)
	e.Err = cause
	return e
}

// AssertionError reports a violated core invariant: a bug, surfaced rather
// than swallowed.
func AssertionError(format string, args ...interface{}) *Error {
	return newf(Assertion, token.Position{}, format, args...)
}

// Is reports whether err is a *Error of the given kind, so callers can
// branch on failure category (e.g. to pick a CLI exit code) without
// inspecting *Error's fields. Only err itself is checked: unlike errors.Is,
// it does not unwrap, so a *Error wrapped inside another error is not found.
func Is(err error, kind Kind) bool {
	fe, ok := err.(*Error)
	return ok && fe.Kind == kind
}
