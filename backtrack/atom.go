package backtrack

import (
	"github.com/coregx/btre/charclass"
	"github.com/coregx/btre/syntax"
)

// atomPredicate returns the single-byte test for an atomic node: a literal,
// the wildcard (matches any byte, including newline — the engine does not
// special-case `.`), the \d/\w escapes, or a character class.
func atomPredicate(n syntax.Node) func(byte) bool {
	switch n.Kind {
	case syntax.KindLiteral:
		lit := n.Lit
		return func(b byte) bool { return b == lit }
	case syntax.KindWildcard:
		return func(byte) bool { return true }
	case syntax.KindEscapeDigit:
		return isDigit
	case syntax.KindEscapeWord:
		return isWordChar
	case syntax.KindClass:
		body, neg := n.ClassBody, n.ClassNeg
		return func(b byte) bool { return charclass.Match(body, b, neg) }
	default:
		return func(byte) bool { return false }
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isWordChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b)
}
