package prefilter

import "github.com/coregx/ahocorasick"

// MultiLiteral finds the first occurrence of any of several required
// literal alternatives using an Aho-Corasick automaton, built with the same
// NewBuilder/AddPattern/Build/Find call sequence a large-alternation
// matching strategy uses elsewhere in this lineage.
type MultiLiteral struct {
	auto *ahocorasick.Automaton
}

// NewMultiLiteral builds a MultiLiteral scanner for the given literals.
func NewMultiLiteral(literals []string) (*MultiLiteral, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &MultiLiteral{auto: auto}, nil
}

// NextCandidate implements Prefilter.
func (m *MultiLiteral) NextCandidate(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	match := m.auto.Find(haystack, start)
	if match == nil {
		return -1
	}
	return match.Start
}
