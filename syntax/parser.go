package syntax

import "github.com/coregx/btre/internal/conv"

// cursor walks the pattern byte by byte. It is deliberately a small struct
// rather than an index threaded through every parse function, following
// the Cursor idiom used by other recursive-descent pattern parsers in this
// lineage.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) advance() byte {
	b := c.src[c.pos]
	c.pos++
	return b
}

// parser holds parse state: the cursor over the anchor-stripped core
// pattern, and a running count of capturing groups opened so far. Group
// indices are assigned at the moment their opening `(` is consumed, which
// is equivalent to (and simpler than) threading a group-index cursor
// through the matcher.
type parser struct {
	cursor
	groupCount int
}

// Parse compiles a pattern string into a Pattern, or reports a ParseError.
func Parse(pattern string) (*Pattern, error) {
	anchorStart, core := stripLeadingAnchor(pattern)
	core, anchorEnd := stripTrailingAnchor(core)

	p := &parser{cursor: cursor{src: core}}
	alts, err := p.parseAlternatives(false)
	if err != nil {
		// Report the error against the pattern as the caller wrote it, not
		// the anchor-stripped core the parser walked.
		if pe, ok := err.(*ParseError); ok {
			pe.Pattern = pattern
			if anchorStart {
				pe.Pos++
			}
		}
		return nil, err
	}

	return &Pattern{
		AnchorStart: anchorStart,
		AnchorEnd:   anchorEnd,
		Alts:        alts,
		NumGroups:   p.groupCount,
		Source:      pattern,
	}, nil
}

// stripLeadingAnchor removes a leading `^`, if present, and reports whether
// it was found. Only the very first character of the whole pattern counts;
// `^` elsewhere is parsed as a literal (see parseAtom).
func stripLeadingAnchor(s string) (bool, string) {
	if len(s) > 0 && s[0] == '^' {
		return true, s[1:]
	}
	return false, s
}

// stripTrailingAnchor removes a trailing `$`, if present and unescaped, and
// reports whether it was found. "Unescaped" means it is not preceded by an
// odd run of backslashes, so that `a\$` keeps its literal dollar sign
// instead of being misread as an anchor.
func stripTrailingAnchor(s string) (string, bool) {
	if len(s) == 0 || s[len(s)-1] != '$' {
		return s, false
	}
	backslashes := 0
	for i := len(s) - 2; i >= 0 && s[i] == '\\'; i-- {
		backslashes++
	}
	if backslashes%2 == 1 {
		return s, false
	}
	return s[:len(s)-1], true
}

// parseAlternatives parses one or more `|`-separated sequences. When
// stopAtParen is true (inside a group), it stops before an unconsumed `)`;
// at the top level it runs to end of input.
func (p *parser) parseAlternatives(stopAtParen bool) ([]Sequence, error) {
	var alts []Sequence
	for {
		seq, err := p.parseSequence(stopAtParen)
		if err != nil {
			return nil, err
		}
		alts = append(alts, seq)
		if p.eof() || p.peek() != '|' {
			break
		}
		p.advance() // consume '|'
	}
	return alts, nil
}

// parseSequence parses quantified atoms/groups until `|`, an unmatched `)`
// (when stopAtParen), or end of input. An empty result is valid: it
// matches the empty string, so a bare `|` or a dangling `|` at either end
// of an alternation is not an error.
func (p *parser) parseSequence(stopAtParen bool) (Sequence, error) {
	var seq Sequence
	for !p.eof() && p.peek() != '|' && !(stopAtParen && p.peek() == ')') {
		node, err := p.parseQuantified()
		if err != nil {
			return nil, err
		}
		seq = append(seq, node)
	}
	return seq, nil
}

// parseQuantified parses one atom or group, then attaches a trailing
// `?`/`+`/`*` if present. Quantifiers do not nest: a second quantifier
// character is left for the next iteration to parse as a fresh literal.
func (p *parser) parseQuantified() (Node, error) {
	node, err := p.parseAtom()
	if err != nil {
		return Node{}, err
	}
	switch p.peek() {
	case '?':
		p.advance()
		node.Quant = QuantOpt
	case '+':
		p.advance()
		node.Quant = QuantPlus
	case '*':
		p.advance()
		node.Quant = QuantStar
	}
	return node, nil
}

// parseAtom dispatches on the current character to produce one unquantified
// node: an escape, a character class, a group, the wildcard, or a literal.
func (p *parser) parseAtom() (Node, error) {
	switch c := p.peek(); {
	case c == '\\':
		return p.parseEscape()
	case c == '[':
		return p.parseClass()
	case c == '(':
		return p.parseGroup()
	case c == '.':
		p.advance()
		return Node{Kind: KindWildcard}, nil
	default:
		p.advance()
		return Node{Kind: KindLiteral, Lit: c}, nil
	}
}

// parseEscape handles everything after a `\`: a digit becomes a
// backreference, `d`/`w` become the digit/word-char escapes, anything else
// is a literal of that character. A trailing lone backslash (nothing left
// to escape) is treated as a literal backslash.
func (p *parser) parseEscape() (Node, error) {
	p.advance() // consume '\'
	if p.eof() {
		return Node{Kind: KindLiteral, Lit: '\\'}, nil
	}
	c := p.advance()
	switch {
	case c >= '1' && c <= '9':
		return Node{Kind: KindBackref, BackrefIndex: int(conv.IntToUint8(int(c - '0')))}, nil
	case c == 'd':
		return Node{Kind: KindEscapeDigit}, nil
	case c == 'w':
		return Node{Kind: KindEscapeWord}, nil
	default:
		return Node{Kind: KindLiteral, Lit: c}, nil
	}
}

// parseClass scans a `[...]` to its matching `]`. The body between the
// brackets (after an optional leading `^`) is stored verbatim; range and
// negation semantics are evaluated at match time by package charclass.
func (p *parser) parseClass() (Node, error) {
	openPos := p.pos
	p.advance() // consume '['

	negated := false
	if !p.eof() && p.peek() == '^' {
		negated = true
		p.advance()
	}

	bodyStart := p.pos
	for !p.eof() && p.peek() != ']' {
		p.advance()
	}
	if p.eof() {
		return Node{}, &ParseError{Kind: UnterminatedClass, Pos: openPos, Pattern: p.src}
	}
	body := p.src[bodyStart:p.pos]
	p.advance() // consume ']'

	return Node{Kind: KindClass, ClassBody: body, ClassNeg: negated}, nil
}

// parseGroup handles a `(` by assigning it the next capture index, parsing
// its `|`-separated alternatives, and requiring a matching `)`.
func (p *parser) parseGroup() (Node, error) {
	openPos := p.pos
	p.advance() // consume '('
	p.groupCount++
	index := p.groupCount

	alts, err := p.parseAlternatives(true)
	if err != nil {
		return Node{}, err
	}
	if p.eof() || p.peek() != ')' {
		return Node{}, &ParseError{Kind: UnmatchedParen, Pos: openPos, Pattern: p.src}
	}
	p.advance() // consume ')'

	return Node{Kind: KindGroup, Group: &Group{Alts: alts, Index: index}}, nil
}
