package prefilter

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// ByteScanner finds occurrences of a single required literal. It has no
// hand-written assembly of its own; instead it uses golang.org/x/sys/cpu to
// decide whether the host's wide-comparison instructions make the standard
// library's bytes.IndexByte/bytes.Index (which the Go runtime vectorizes on
// such hosts) worth preferring over an explicit scalar loop. Either path
// returns identical results — this only affects which portable Go code
// runs, not the outcome.
type ByteScanner struct {
	lit  string
	fast bool
}

// NewByteScanner builds a scanner for the given required literal.
func NewByteScanner(lit string) *ByteScanner {
	return &ByteScanner{
		lit:  lit,
		fast: cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD,
	}
}

// NextCandidate implements Prefilter.
func (s *ByteScanner) NextCandidate(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	if len(s.lit) == 0 {
		return start
	}
	if len(s.lit) == 1 {
		return s.indexByte(haystack, start, s.lit[0])
	}
	return s.index(haystack, start, s.lit)
}

func (s *ByteScanner) indexByte(haystack []byte, start int, b byte) int {
	if s.fast {
		idx := bytes.IndexByte(haystack[start:], b)
		if idx < 0 {
			return -1
		}
		return start + idx
	}
	for i := start; i < len(haystack); i++ {
		if haystack[i] == b {
			return i
		}
	}
	return -1
}

func (s *ByteScanner) index(haystack []byte, start int, lit string) int {
	if s.fast {
		idx := bytes.Index(haystack[start:], []byte(lit))
		if idx < 0 {
			return -1
		}
		return start + idx
	}
	for i := start; i+len(lit) <= len(haystack); i++ {
		if string(haystack[i:i+len(lit)]) == lit {
			return i
		}
	}
	return -1
}
