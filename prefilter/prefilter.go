// Package prefilter turns an extracted literal.Seq into a fast scanner for
// candidate match-start offsets, so the backtracking engine only has to
// attempt full matches where a required literal could plausibly occur.
//
// A prefilter never decides whether a pattern matches — it only narrows
// which start offsets are worth trying. The backtracker always makes the
// final call, so an imprecise or absent prefilter only costs speed, never
// correctness.
package prefilter

import "github.com/coregx/btre/literal"

// Prefilter finds candidate start offsets in a haystack.
type Prefilter interface {
	// NextCandidate returns the first offset >= start where a required
	// literal occurs, or -1 if none remains. start may equal len(haystack).
	NextCandidate(haystack []byte, start int) int
}

// none matches every offset; used when no literal hint is available.
type none struct{}

func (none) NextCandidate(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	return start
}

// New builds the best available Prefilter for seq: no-op if empty, a
// single-literal ByteScanner for one literal, or an Aho-Corasick
// MultiLiteral scanner for several. Construction failures (e.g. the
// underlying automaton rejecting a pattern) degrade to the no-op filter
// rather than propagating an error, since a prefilter is purely advisory.
func New(seq literal.Seq) Prefilter {
	switch len(seq.Literals) {
	case 0:
		return none{}
	case 1:
		return NewByteScanner(seq.Literals[0])
	default:
		ml, err := NewMultiLiteral(seq.Literals)
		if err != nil {
			return none{}
		}
		return ml
	}
}
