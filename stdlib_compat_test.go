package btre_test

// Differential tests against the standard library's regexp package, over
// the subset of syntax both engines understand: literals, '.', \d/\w,
// character classes, alternation, groups, and the ?/+/* quantifiers. Any
// pattern using backreferences is outside this subset and is covered by the
// non-differential tests instead, since stdlib regexp cannot parse them at
// all.

import (
	"regexp"
	"testing"

	"github.com/coregx/btre"
)

func TestAgreesWithStdlibOnSharedSubset(t *testing.T) {
	tests := []struct {
		pattern string
		inputs  []string
	}{
		{"cat", []string{"cat", "concatenate", "dog"}},
		{"^cat$", []string{"cat", "cats", "concatenate"}},
		{"[a-z]+", []string{"Hello", "HELLO", "hello"}},
		{`[^0-9]+`, []string{"hello5", "hello", "12345"}},
		{"(cat|dog)s?", []string{"cats", "dogs", "cat", "bird"}},
		{"a.c", []string{"abc", "axc", "ac"}},
		{`\d+`, []string{"room42", "no digits here", ""}},
		{`\w+`, []string{"_foo9", "!!!", ""}},
		{"(ab)+c", []string{"ababc", "abc", "c", "abababc"}},
		{"(ab)*c", []string{"c", "ababc", "xyz"}},
		{"a?b", []string{"ab", "b", "a"}},
	}
	for _, tt := range tests {
		std, err := regexp.Compile(tt.pattern)
		if err != nil {
			t.Fatalf("regexp.Compile(%q): %v", tt.pattern, err)
		}
		ours, err := btre.Compile(tt.pattern)
		if err != nil {
			t.Fatalf("btre.Compile(%q): %v", tt.pattern, err)
		}
		for _, in := range tt.inputs {
			want := std.MatchString(in)
			got := ours.MatchString(in)
			if got != want {
				t.Errorf("pattern %q, input %q: btre=%v stdlib=%v", tt.pattern, in, got, want)
			}
		}
	}
}

func TestAgreesWithStdlibOnCaptureGroups(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
	}{
		{"(cat|dog)s?", "dogs"},
		{"(ab)+c", "ababc"},
		{"(a)(b)(c)", "abc"},
	}
	for _, tt := range tests {
		std := regexp.MustCompile(tt.pattern)
		ours := btre.MustCompile(tt.pattern)

		wantMatch := std.FindStringSubmatch(tt.input)
		gotMatch := ours.FindStringSubmatch(tt.input)
		if len(wantMatch) != len(gotMatch) {
			t.Fatalf("pattern %q: length mismatch, btre=%v stdlib=%v", tt.pattern, gotMatch, wantMatch)
		}
		for i := range wantMatch {
			if wantMatch[i] != gotMatch[i] {
				t.Errorf("pattern %q, group %d: btre=%q stdlib=%q", tt.pattern, i, gotMatch[i], wantMatch[i])
			}
		}
	}
}
