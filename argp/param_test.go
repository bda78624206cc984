package argp

import "testing"

func TestParamKeys(t *testing.T) {
	tests := []struct {
		alias   string
		want    Param
		short   bool
		printed string
	}{
		{"v", Short('v'), true, "-v"},
		{"é", Short('é'), true, "-é"},
		{"verbose", Long("verbose"), false, "--verbose"},
		{"if", Long("if"), false, "--if"},
		{"", Long(""), false, "--"},
	}

	for _, tt := range tests {
		got := ParseKey(tt.alias)
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %#v, want %#v", tt.alias, got, tt.want)
		}
		if got.IsShort() != tt.short {
			t.Errorf("ParseKey(%q).IsShort() = %v", tt.alias, got.IsShort())
		}
		if got.String() != tt.printed {
			t.Errorf("ParseKey(%q).String() = %q, want %q", tt.alias, got.String(), tt.printed)
		}
	}
}

func TestParamEquality(t *testing.T) {
	if Short('a') == Long("a") {
		t.Error("Expected short and long keys with the same text to differ")
	}
	if Short('a') != Short('a') || Long("abc") != Long("abc") {
		t.Error("Expected keys with equal tag and payload to be equal")
	}
	if Short('x').Rune() != 'x' || Short('x').Name() != "" {
		t.Error("Unexpected short key accessors")
	}
	if Long("name").Name() != "name" || Long("name").Rune() != 0 {
		t.Error("Unexpected long key accessors")
	}
}
