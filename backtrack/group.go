package backtrack

import "github.com/coregx/btre/syntax"

// matchGroup applies a group's quantifier around "match once": None, ?, and
// + are the direct cases, and * is implemented by analogy with + (allowing
// zero iterations), the natural reading of "zero or more" applied to a
// group the same way it applies to a single atom (see DESIGN.md).
func (e *Engine) matchGroup(n syntax.Node, text []byte, pos int, caps *Captures, steps *int, k func(int) bool) bool {
	g := n.Group
	switch n.Quant {
	case syntax.QuantNone:
		return e.matchGroupOnce(g, text, pos, caps, steps, k)
	case syntax.QuantOpt:
		if e.matchGroupOnce(g, text, pos, caps, steps, k) {
			return true
		}
		return k(0)
	case syntax.QuantPlus:
		return e.matchGroupRepeat(g, text, pos, caps, steps, 1, k)
	case syntax.QuantStar:
		return e.matchGroupRepeat(g, text, pos, caps, steps, 0, k)
	default:
		return false
	}
}

// matchGroupOnce matches the group's alternatives once, in source order.
// The capture array is snapshotted before the first alternative is tried;
// between alternatives it is restored to that snapshot, so a failed
// alternative (including any captures its own nested groups set along the
// way) never leaks into the next one. On every length an alternative
// yields, this group's own slot is assigned the matched substring
// (overwriting any value a previous, now-abandoned, attempt left there)
// before the continuation is invoked.
func (e *Engine) matchGroupOnce(g *syntax.Group, text []byte, pos int, caps *Captures, steps *int, k func(int) bool) bool {
	entryVals, entrySet := caps.snapshot()
	for _, alt := range g.Alts {
		if !e.tick(steps) {
			return false
		}
		if e.matchSeq(alt, text, pos, caps, steps, func(length int) bool {
			caps.assign(g.Index-1, string(text[pos:pos+length]))
			return k(length)
		}) {
			return true
		}
		caps.restore(entryVals, entrySet)
	}
	return false
}

// matchGroupRepeat matches the group at least minReps times (0 for *, 1
// for +), preferring the longest total run: it always tries to extend with
// one more repetition before accepting the repetitions already made. Each
// repetition's capture assignment overwrites the previous one, so on
// success the slot holds the substring from the last repetition, not a
// concatenation of all of them.
func (e *Engine) matchGroupRepeat(g *syntax.Group, text []byte, pos int, caps *Captures, steps *int, minReps int, k func(int) bool) bool {
	extended := e.matchGroupOnce(g, text, pos, caps, steps, func(length int) bool {
		return e.matchGroupRepeat(g, text, pos+length, caps, steps, max(minReps-1, 0), func(restLen int) bool {
			return k(length + restLen)
		})
	})
	if extended {
		return true
	}
	if minReps <= 0 {
		return k(0)
	}
	return false
}
