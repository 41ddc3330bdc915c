// Package backtrack implements the recursive backtracking search engine:
// given a parsed syntax.Pattern and input text, it explores the ways the
// pattern's nodes can consume a prefix of the text, trying alternatives in
// source order and quantifiers greedy-longest-first (optional-present-
// first), and yields the first successful path it finds.
//
// The exploration is implemented as continuation-passing recursion rather
// than a materialized lazy sequence: each matcher is handed a continuation
// k that it calls once per candidate consumed length, in preference order,
// stopping as soon as k reports success. This lets an outer node's failure
// drive the inner node to produce its next candidate on demand, without
// building the full set of alternatives up front.
package backtrack

import "github.com/coregx/btre/syntax"

// Engine runs pattern matches with a configured resource bound.
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine configured as given.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Match runs the top-level match procedure: if the pattern is anchored at
// the start, it searches only at offset 0; otherwise it tries every start
// offset from 0 to len(text) in order and returns the first success. When
// the pattern is anchored at the end, a candidate length only counts if it
// reaches exactly the end of text.
//
// On success it returns the capture array, the start offset and length of
// the overall match, and true. On failure it returns an empty capture
// array and false; callers must not rely on capture contents after a
// failed match.
func (e *Engine) Match(p *syntax.Pattern, text []byte) (*Captures, int, int, bool) {
	if p.AnchorStart {
		caps, length, ok := e.MatchAt(p, text, 0)
		return caps, 0, length, ok
	}
	for i := 0; i <= len(text); i++ {
		caps, length, ok := e.MatchAt(p, text, i)
		if ok {
			return caps, i, length, true
		}
	}
	return NewCaptures(p.NumGroups), 0, 0, false
}

// MatchAt attempts a match anchored exactly at start (ignoring
// p.AnchorStart — the caller picked this offset deliberately, e.g. a
// prefilter candidate). If p.AnchorEnd, only a length reaching exactly
// len(text) is accepted. It returns the winning length and whether any
// alternative succeeded.
func (e *Engine) MatchAt(p *syntax.Pattern, text []byte, start int) (*Captures, int, bool) {
	caps := NewCaptures(p.NumGroups)
	steps := e.budget()
	var matchedLen int
	ok := e.matchAlts(p.Alts, text, start, caps, &steps, func(length int) bool {
		if p.AnchorEnd && start+length != len(text) {
			return false
		}
		matchedLen = length
		return true
	})
	return caps, matchedLen, ok
}

// budget returns the per-attempt step counter: MaxSteps if positive, or a
// sentinel that tick() never exhausts when the config is unbounded.
func (e *Engine) budget() int {
	if e.cfg.MaxSteps <= 0 {
		return -1
	}
	return e.cfg.MaxSteps
}

// tick consumes one unit of the step budget. It returns false only when a
// positive budget has been exhausted, at which point the caller must fail
// the current path (not panic, not grow the captures) exactly as any other
// match-time soft failure.
func (e *Engine) tick(steps *int) bool {
	if *steps < 0 {
		return true
	}
	if *steps == 0 {
		return false
	}
	*steps--
	return true
}

// matchAlts tries each alternative in source order, restoring nothing
// itself — alternation has no capture slot of its own; any group inside an
// alternative manages its own save/restore.
func (e *Engine) matchAlts(alts []syntax.Sequence, text []byte, pos int, caps *Captures, steps *int, k func(int) bool) bool {
	for _, alt := range alts {
		if !e.tick(steps) {
			return false
		}
		if e.matchSeq(alt, text, pos, caps, steps, k) {
			return true
		}
	}
	return false
}

// matchSeq matches a sequence of nodes in order: it matches the head node's
// possible lengths in preference order and, for each, recurses on the tail
// at the advanced position. An empty sequence matches the empty string.
func (e *Engine) matchSeq(seq syntax.Sequence, text []byte, pos int, caps *Captures, steps *int, k func(int) bool) bool {
	if len(seq) == 0 {
		return k(0)
	}
	head, tail := seq[0], seq[1:]
	return e.matchNode(head, text, pos, caps, steps, func(headLen int) bool {
		return e.matchSeq(tail, text, pos+headLen, caps, steps, func(tailLen int) bool {
			return k(headLen + tailLen)
		})
	})
}

// matchNode dispatches a single quantified node to the group matcher, the
// backreference matcher, or the atom matcher.
func (e *Engine) matchNode(n syntax.Node, text []byte, pos int, caps *Captures, steps *int, k func(int) bool) bool {
	if !e.tick(steps) {
		return false
	}
	switch n.Kind {
	case syntax.KindGroup:
		return e.matchGroup(n, text, pos, caps, steps, k)
	case syntax.KindBackref:
		return e.matchBackref(n, text, pos, caps, steps, k)
	default:
		return e.matchAtom(n, text, pos, caps, steps, k)
	}
}

// matchAtom applies an atomic node's quantifier around its byte predicate.
func (e *Engine) matchAtom(n syntax.Node, text []byte, pos int, caps *Captures, steps *int, k func(int) bool) bool {
	pred := atomPredicate(n)
	switch n.Quant {
	case syntax.QuantNone:
		if pos >= len(text) || !pred(text[pos]) {
			return false
		}
		return k(1)
	case syntax.QuantOpt:
		if pos < len(text) && pred(text[pos]) && k(1) {
			return true
		}
		return k(0)
	case syntax.QuantPlus:
		return e.matchRun(pred, text, pos, 1, k)
	case syntax.QuantStar:
		return e.matchRun(pred, text, pos, 0, k)
	default:
		return false
	}
}

// matchRun finds the maximal run r of consecutive bytes from pos matching
// pred, then offers r, r-1, ..., min in that order (greedy-longest-first).
// It fails if the run is shorter than min (so + requires r>=1).
func (e *Engine) matchRun(pred func(byte) bool, text []byte, pos int, min int, k func(int) bool) bool {
	r := 0
	for pos+r < len(text) && pred(text[pos+r]) {
		r++
	}
	for length := r; length >= min; length-- {
		if k(length) {
			return true
		}
	}
	return false
}

// matchBackref requires the input at pos to begin with the string captured
// by n.BackrefIndex. An unset or out-of-range index fails silently (no
// match on this path, not an error). A quantifier on a backreference
// repeats the whole captured string as the unit being repeated, following
// the same greedy/optional rules as any other quantified atom so the
// engine never panics on such a pattern.
func (e *Engine) matchBackref(n syntax.Node, text []byte, pos int, caps *Captures, steps *int, k func(int) bool) bool {
	val, ok := caps.Get(n.BackrefIndex)
	if !ok {
		return false
	}
	matchesAt := func(p int) bool {
		return p+len(val) <= len(text) && string(text[p:p+len(val)]) == val
	}

	switch n.Quant {
	case syntax.QuantNone:
		if !matchesAt(pos) {
			return false
		}
		return k(len(val))
	case syntax.QuantOpt:
		if matchesAt(pos) && k(len(val)) {
			return true
		}
		return k(0)
	case syntax.QuantPlus, syntax.QuantStar:
		min := 0
		if n.Quant == syntax.QuantPlus {
			min = 1
		}
		r := 0
		if len(val) > 0 {
			for matchesAt(pos + r*len(val)) {
				r++
			}
		}
		for count := r; count >= min; count-- {
			if k(count * len(val)) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
