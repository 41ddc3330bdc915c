package literal

import (
	"reflect"
	"testing"

	"github.com/coregx/btre/syntax"
)

func extract(t *testing.T, pattern string) Seq {
	t.Helper()
	p, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("syntax.Parse(%q): %v", pattern, err)
	}
	return Extract(p)
}

func TestExtractSingleAlternativeLeadingRun(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"cat", []string{"cat"}},
		{"catdog", []string{"catdog"}},
		{"cat.*", []string{"cat"}},
		{"ca?t", []string{"c"}}, // quantified 'a?' stops the run before it
		{".cat", nil},
		{"[a-z]cat", nil},
		{"", nil},
	}
	for _, tt := range tests {
		seq := extract(t, tt.pattern)
		if tt.want == nil {
			if !seq.IsEmpty() {
				t.Errorf("Extract(%q) = %v, want empty", tt.pattern, seq.Literals)
			}
			continue
		}
		if !reflect.DeepEqual(seq.Literals, tt.want) {
			t.Errorf("Extract(%q) = %v, want %v", tt.pattern, seq.Literals, tt.want)
		}
	}
}

func TestExtractFullLiteralAlternatives(t *testing.T) {
	seq := extract(t, "cat|dog|bird")
	want := []string{"cat", "dog", "bird"}
	if !reflect.DeepEqual(seq.Literals, want) {
		t.Errorf("Extract = %v, want %v", seq.Literals, want)
	}
}

func TestExtractLeadingRunsOfEachAlternative(t *testing.T) {
	// Neither alternative is a pure literal (one has a trailing class, the
	// other a quantified literal), but both still have a nonempty required
	// leading literal run.
	seq := extract(t, "cat[0-9]|dog+")
	// "dog+" quantifies only the trailing 'g', so its required run is "do".
	want := []string{"cat", "do"}
	if !reflect.DeepEqual(seq.Literals, want) {
		t.Errorf("Extract = %v, want %v", seq.Literals, want)
	}
}

func TestExtractGivesUpWhenAnyAlternativeHasNoLeadingLiteral(t *testing.T) {
	seq := extract(t, "cat|[0-9]dog")
	if !seq.IsEmpty() {
		t.Errorf("Extract = %v, want empty (second alternative has no leading literal)", seq.Literals)
	}
}

func TestExtractLeadingGroupBeforeBackreferenceYieldsNoHint(t *testing.T) {
	seq := extract(t, `(a+)b\1`)
	if !seq.IsEmpty() {
		t.Errorf("Extract = %v, want empty (leading node is a group, not a literal)", seq.Literals)
	}
}

func TestExtractEmptyAlternativeDisqualifiesHint(t *testing.T) {
	// The trailing empty alternative in "cat|" matches the empty string at
	// any position, so no literal hint can be given: a prefilter that only
	// ever looks for "cat" would miss every offset the empty branch alone
	// would have matched.
	tests := []string{"cat|", "|cat", "cat|dog|"}
	for _, pattern := range tests {
		seq := extract(t, pattern)
		if !seq.IsEmpty() {
			t.Errorf("Extract(%q) = %v, want empty", pattern, seq.Literals)
		}
	}
}
