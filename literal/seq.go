// Package literal extracts literal substrings that must be present at the
// start of any match of a pattern, so package prefilter can skip offsets
// where none of them occur before handing the rest to the backtracker.
//
// Backreferences and nested groups quickly defeat deeper literal analysis
// (a backreference's required text isn't known until match time, and an
// alternative with a group inside it isn't "pure literal" anymore), so this
// only ever reports a hint when the leading structure is simple enough that
// the hint is certain to be correct; otherwise it reports an empty Seq and
// the engine runs unfiltered. The prefilter is always advisory: an empty or
// present Seq changes search speed, never the match result.
package literal

// Seq is a set of literal strings, any one of which must occur at a
// candidate start offset for the pattern to have a chance of matching
// there.
type Seq struct {
	Literals []string
}

// IsEmpty reports whether no literal hint could be extracted.
func (s Seq) IsEmpty() bool { return len(s.Literals) == 0 }
