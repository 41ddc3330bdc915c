package btre

import "github.com/coregx/btre/syntax"

// ParseError reports a construction-time pattern syntax error: an
// unterminated character class or an unmatched parenthesis. It is aliased
// from package syntax so callers never need to import that package
// directly just to inspect a Compile error.
type ParseError = syntax.ParseError

// ErrKind enumerates the ways a pattern can fail to parse.
type ErrKind = syntax.ErrKind

// The two parse failure kinds Compile can report.
const (
	UnterminatedClass = syntax.UnterminatedClass
	UnmatchedParen    = syntax.UnmatchedParen
)
