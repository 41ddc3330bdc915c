package literal

import "github.com/coregx/btre/syntax"

// Extract computes a required-literal hint for p.
//
// If the pattern has one top-level alternative, the hint is that
// alternative's leading run of unquantified literal characters (possibly
// empty, e.g. if the pattern starts with a class, group, wildcard, or
// quantified atom).
//
// If the pattern has several top-level alternatives and every one of them
// is entirely a run of unquantified literals (no classes, groups,
// backreferences, or quantifiers anywhere in it), the hint is the full set
// of alternative strings — a match must begin with one of them verbatim.
//
// Otherwise, if every alternative at least starts with a non-empty literal
// run, the hint is that set of leading runs. If any alternative has no
// required leading literal at all, no hint can be given and Extract
// returns an empty Seq.
func Extract(p *syntax.Pattern) Seq {
	if len(p.Alts) == 0 {
		return Seq{}
	}
	if len(p.Alts) == 1 {
		prefix := leadingLiteralRun(p.Alts[0])
		if prefix == "" {
			return Seq{}
		}
		return Seq{Literals: []string{prefix}}
	}

	if lits, ok := fullLiteralAlternatives(p.Alts); ok {
		return Seq{Literals: lits}
	}

	prefixes := make([]string, 0, len(p.Alts))
	for _, alt := range p.Alts {
		pre := leadingLiteralRun(alt)
		if pre == "" {
			return Seq{}
		}
		prefixes = append(prefixes, pre)
	}
	return Seq{Literals: prefixes}
}

// leadingLiteralRun returns the longest prefix of seq consisting of
// unquantified literal nodes, concatenated.
func leadingLiteralRun(seq syntax.Sequence) string {
	buf := make([]byte, 0, len(seq))
	for _, n := range seq {
		if n.Kind != syntax.KindLiteral || n.Quant != syntax.QuantNone {
			break
		}
		buf = append(buf, n.Lit)
	}
	return string(buf)
}

// fullLiteralAlternatives reports whether every alternative is entirely an
// unquantified literal run, returning each as a plain string if so. An empty
// alternative (e.g. the trailing branch of "cat|") always matches the empty
// string at any position, so it disqualifies the hint entirely rather than
// contributing an empty-string literal: an empty-pattern entry fed to a
// multi-literal scanner would only be found where the scanner's underlying
// automaton happens to report a zero-length match, which is not every
// offset, silently turning a guaranteed match into "no match" wherever the
// other alternatives don't occur.
func fullLiteralAlternatives(alts []syntax.Sequence) ([]string, bool) {
	out := make([]string, 0, len(alts))
	for _, alt := range alts {
		if len(alt) == 0 {
			return nil, false
		}
		buf := make([]byte, 0, len(alt))
		for _, n := range alt {
			if n.Kind != syntax.KindLiteral || n.Quant != syntax.QuantNone {
				return nil, false
			}
			buf = append(buf, n.Lit)
		}
		out = append(out, string(buf))
	}
	return out, true
}
