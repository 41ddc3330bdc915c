// Package btre provides a backtracking regular expression engine for Go.
//
// btre supports a restricted but expressive subset of classical regex
// syntax: literal characters, `.`, the `\d`/`\w` escapes, `[...]` character
// classes with ranges and negation, `(...)` groups with `|` alternation,
// the `?`/`+`/`*` quantifiers, `\1`-`\9` backreferences, and `^`/`$`
// anchors. Matching is done by backtracking over the parsed pattern tree,
// which is what makes backreferences possible at all — they are not a
// regular-language feature, so no finite automaton (NFA/DFA) can decide
// them.
//
// Basic usage:
//
//	re, err := btre.Compile(`(cat|dog)s?`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("dogs") {
//	    fmt.Println(re.FindStringSubmatch("dogs")) // [dogs dog]
//	}
//
// Limitations: no named groups, lookaround, non-greedy quantifiers,
// bounded repetition `{m,n}`, POSIX bracket expressions, case-insensitive
// or multiline flags, or Unicode classes beyond `\d`/`\w`.
package btre

import (
	"fmt"

	"github.com/coregx/btre/backtrack"
	"github.com/coregx/btre/literal"
	"github.com/coregx/btre/prefilter"
	"github.com/coregx/btre/syntax"
)

// Config tunes optimization knobs. It never changes which strings a
// pattern matches — only how quickly a match or non-match is found.
type Config struct {
	// MaxSteps bounds backtracking work per start-offset attempt; zero
	// means unbounded. See backtrack.Config.MaxSteps.
	MaxSteps int

	// DisablePrefilter turns off literal-based candidate skipping. Useful
	// for benchmarking the backtracker in isolation, or if a required
	// literal hint is ever suspected of being wrong (it shouldn't be —
	// see literal.Extract's doc comment for why it's conservative).
	DisablePrefilter bool
}

// DefaultConfig returns the engine's default tuning: no step budget, and
// the literal prefilter enabled.
func DefaultConfig() Config {
	return Config{}
}

// Regexp is a compiled pattern, safe for concurrent use by multiple
// goroutines: every MatchString/Match/FindStringSubmatch call allocates its
// own capture array, and the parsed Pattern tree is read-only after
// Compile returns.
type Regexp struct {
	pattern *syntax.Pattern
	engine  *backtrack.Engine
	pf      prefilter.Prefilter
}

// Compile parses pattern and returns a ready-to-use Regexp, or a
// *ParseError if the pattern is malformed.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig is Compile with explicit tuning.
func CompileWithConfig(pattern string, cfg Config) (*Regexp, error) {
	pat, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	seq := literal.Seq{}
	if !cfg.DisablePrefilter {
		seq = literal.Extract(pat)
	}

	return &Regexp{
		pattern: pat,
		engine:  backtrack.NewEngine(backtrack.Config{MaxSteps: cfg.MaxSteps}),
		pf:      prefilter.New(seq),
	}, nil
}

// MustCompile is like Compile but panics instead of returning an error.
// Intended for patterns known to be valid at compile time (e.g. package
// level `var re = btre.MustCompile(...)`).
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("btre: Compile(%q): %v", pattern, err))
	}
	return re
}

// NumSubexp returns the number of capturing groups in the pattern.
func (re *Regexp) NumSubexp() int {
	return re.pattern.NumGroups
}

// MatchString reports whether the pattern matches some substring of s (or
// all of s, per any `^`/`$` anchors).
func (re *Regexp) MatchString(s string) bool {
	return re.Match([]byte(s))
}

// Match reports whether the pattern matches some substring of b.
func (re *Regexp) Match(b []byte) bool {
	_, _, _, ok := re.search(b)
	return ok
}

// FindStringSubmatch returns nil if s does not match. Otherwise it returns
// a slice of length NumSubexp()+1: index 0 is the overall matched
// substring, and index i (for i >= 1) is the substring captured by group
// i, or the empty string if that group did not participate in the match.
func (re *Regexp) FindStringSubmatch(s string) []string {
	b := []byte(s)
	caps, start, length, ok := re.search(b)
	if !ok {
		return nil
	}
	out := make([]string, re.pattern.NumGroups+1)
	out[0] = s[start : start+length]
	for i := 1; i <= re.pattern.NumGroups; i++ {
		if v, set := caps.Get(i); set {
			out[i] = v
		}
	}
	return out
}

// search runs the engine, using the literal prefilter to pick candidate
// start offsets when the pattern isn't anchored at the start (an anchored
// pattern only ever tries offset 0, so a prefilter has nothing to narrow).
// The prefilter only changes which offsets are tried first — engine.MatchAt
// makes the real accept/reject decision at each one, so this can never
// accept an offset engine.Match itself would have rejected.
func (re *Regexp) search(text []byte) (*backtrack.Captures, int, int, bool) {
	if re.pattern.AnchorStart {
		caps, length, ok := re.engine.MatchAt(re.pattern, text, 0)
		return caps, 0, length, ok
	}

	for start := re.pf.NextCandidate(text, 0); start != -1 && start <= len(text); start = re.pf.NextCandidate(text, start+1) {
		caps, length, ok := re.engine.MatchAt(re.pattern, text, start)
		if ok {
			return caps, start, length, true
		}
	}
	return backtrack.NewCaptures(re.pattern.NumGroups), 0, 0, false
}
