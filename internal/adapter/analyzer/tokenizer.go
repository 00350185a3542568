package analyzer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"classroom/internal/domain"
)

// DefaultDelimiters is used when no delimiter text is given.
var DefaultDelimiters = []string{","}

// ParseDelimiters reads a whitespace-separated list of literal delimiters.
func ParseDelimiters(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return append([]string(nil), DefaultDelimiters...)
	}
	return fields
}

// PreferenceTokenizer splits free-text preferences into case-folded token sets.
type PreferenceTokenizer struct {
	delimiters []string
	splitter   *regexp.Regexp
	folder     cases.Caser
}

// NewPreferenceTokenizer creates a tokenizer for the given literal delimiters.
func NewPreferenceTokenizer(delimiters []string) *PreferenceTokenizer {
	t := &PreferenceTokenizer{
		delimiters: delimiters,
		folder:     cases.Fold(),
	}
	if len(delimiters) > 0 {
		quoted := make([]string, len(delimiters))
		for i, d := range delimiters {
			quoted[i] = regexp.QuoteMeta(d)
		}
		t.splitter = regexp.MustCompile(strings.Join(quoted, "|"))
	}
	return t
}

// Delimiters returns the configured delimiters.
func (t *PreferenceTokenizer) Delimiters() []string {
	return t.delimiters
}

// Tokenize splits raw on any delimiter, trims and folds each piece and drops
// empty pieces.
func (t *PreferenceTokenizer) Tokenize(raw string) domain.TokenSet {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.TokenSet{}
	}
	if t.splitter == nil {
		return domain.NewTokenSet(t.fold(trimmed))
	}

	set := domain.TokenSet{}
	for _, part := range t.splitter.Split(trimmed, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set[t.fold(part)] = struct{}{}
	}
	return set
}

func (t *PreferenceTokenizer) fold(s string) string {
	return t.folder.String(s)
}
