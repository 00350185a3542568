package domain

import "sort"

type RosterEntry struct {
	Name    string `json:"name"`
	Excused bool   `json:"excused"`
}

type PreferenceEntry struct {
	Name        string `json:"name"`
	Preferences string `json:"preferences"`
}

// TokenSet is a set of normalized preference tokens.
type TokenSet map[string]struct{}

// NewTokenSet builds a set from the given tokens, collapsing duplicates.
func NewTokenSet(tokens ...string) TokenSet {
	set := make(TokenSet, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

func (s TokenSet) Len() int {
	return len(s)
}

// Sorted returns the tokens in lexical order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SimilarityMatrix is indexed by roster position.
type SimilarityMatrix [][]float64

type Group []string

type Assignment struct {
	Name  string `json:"name"`
	Group int    `json:"group"`
}

type Pair struct {
	Reviewer string `json:"reviewer"`
	Reviewee string `json:"reviewee"`
}

// Outcome marks a valid computation that produced nothing to show.
type Outcome struct {
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
}

type ColdCallResult struct {
	Outcome
	Names []string `json:"names"`
}

type GroupingResult struct {
	Outcome
	Groups []Group `json:"groups"`
}

// Assignments flattens groups into (name, group) rows with 1-based group numbers.
func (r GroupingResult) Assignments() []Assignment {
	var rows []Assignment
	for i, g := range r.Groups {
		for _, name := range g {
			rows = append(rows, Assignment{Name: name, Group: i + 1})
		}
	}
	return rows
}

type PeerReviewResult struct {
	Outcome
	Pairs []Pair `json:"pairs"`
}

type ColdCallRequest struct {
	Roster         string
	Seed           string
	SampleSize     string
	IncludeExcused bool
}

type GroupingRequest struct {
	Roster     string
	Seed       string
	TeamCount  string
	GroupSize  string
	Delimiters string
}

type PeerReviewRequest struct {
	Roster string
	Seed   string
}
