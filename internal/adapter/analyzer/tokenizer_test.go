package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDelimiters(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{","}},
		{"   ", []string{","}},
		{"/", []string{"/"}},
		{" ; |  / ", []string{";", "|", "/"}},
	}

	for _, tt := range tests {
		got := ParseDelimiters(tt.input)
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("ParseDelimiters(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseDelimiters_DefaultNotShared(t *testing.T) {
	got := ParseDelimiters("")
	got[0] = "x"
	if DefaultDelimiters[0] != "," {
		t.Errorf("default delimiters were mutated: %v", DefaultDelimiters)
	}
}

func TestTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name       string
		delimiters []string
		input      string
		expected   []string
	}{
		{"comma default", []string{","}, "Health, Policy", []string{"health", "policy"}},
		{"duplicates collapse", []string{","}, "AI, ai ,Ai", []string{"ai"}},
		{"empty pieces dropped", []string{","}, ",, Climate ,", []string{"climate"}},
		{"slash delimiter", []string{"/"}, "Urban / Housing", []string{"housing", "urban"}},
		{"multiple delimiters", []string{";", "/"}, "a;b/c", []string{"a", "b", "c"}},
		{"regex metacharacters are literal", []string{"."}, "x.y", []string{"x", "y"}},
		{"pipe is literal", []string{"|"}, "left|right", []string{"left", "right"}},
		{"no delimiters", nil, "  Whole Thing ", []string{"whole thing"}},
		{"multi-char delimiter", []string{"and"}, "art and music", []string{"art", "music"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewPreferenceTokenizer(tt.delimiters)
			got := tok.Tokenize(tt.input).Sorted()
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenizer_EmptyInput(t *testing.T) {
	tok := NewPreferenceTokenizer([]string{","})

	for _, input := range []string{"", "   ", "\t"} {
		if got := tok.Tokenize(input); got.Len() != 0 {
			t.Errorf("expected empty set for %q, got %v", input, got.Sorted())
		}
	}
}

func TestTokenizer_CaseFolding(t *testing.T) {
	tok := NewPreferenceTokenizer([]string{","})

	got := tok.Tokenize("\u00c4RZTE, \u00e4rzte")
	if got.Len() != 1 || !got.Has("\u00e4rzte") {
		t.Errorf("expected case-folded single token, got %v", got.Sorted())
	}
}
