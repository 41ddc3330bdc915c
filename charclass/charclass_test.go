package charclass

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		body    string
		ch      byte
		negated bool
		want    bool
	}{
		{"a-z", 'm', false, true},
		{"a-z", 'M', false, false},
		{"a-z", 'z', false, true},
		{"a-z", '{', false, false}, // one past 'z'
		{"a-zA-Z0-9", 'Q', false, true},
		{"a-zA-Z0-9", '5', false, true},
		{"a-zA-Z0-9", '_', false, false},
		{"abc", 'b', false, true},
		{"abc", 'd', false, false},
		{"a-z", 'm', true, false},
		{"a-z", 'M', true, true},
		{"", 'x', false, false},
		{"", 'x', true, true},
		{"a-", 'a', false, true},  // trailing '-' with no successor is literal
		{"a-", '-', false, true},
	}
	for _, tt := range tests {
		if got := Match(tt.body, tt.ch, tt.negated); got != tt.want {
			t.Errorf("Match(%q, %q, %v) = %v, want %v", tt.body, tt.ch, tt.negated, got, tt.want)
		}
	}
}
