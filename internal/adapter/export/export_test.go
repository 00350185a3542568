package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classroom/internal/domain"
)

func TestColdCallCSV(t *testing.T) {
	assert.Equal(t, "name\nAna\nBen", ColdCallCSV([]string{"Ana", "Ben"}))
	assert.Equal(t, "name", ColdCallCSV(nil))
}

func TestAssignmentsCSV(t *testing.T) {
	rows := []domain.Assignment{{Name: "Ana", Group: 1}, {Name: "Ben", Group: 2}}
	got := AssignmentsCSV(rows)
	assert.Equal(t, "name,group\nAna,1\nBen,2", got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestPairsCSV(t *testing.T) {
	pairs := []domain.Pair{{Reviewer: "A", Reviewee: "B"}, {Reviewer: "B", Reviewee: "A"}}
	assert.Equal(t, "reviewer,reviewee\nA,B\nB,A", PairsCSV(pairs))
}

func TestRenderGroups_ContainsEveryName(t *testing.T) {
	groups := []domain.Group{{"Ana", "Ben"}, {"Cal"}, {"Dee"}}
	out := RenderGroups(groups, 2)
	for _, n := range []string{"Ana", "Ben", "Cal", "Dee", "Group 1", "Group 3"} {
		assert.Contains(t, out, n)
	}
}

func TestRenderPairs(t *testing.T) {
	out := RenderPairs([]domain.Pair{{Reviewer: "Alpha", Reviewee: "Beta"}, {Reviewer: "Beta", Reviewee: "Alpha"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "reviews")
	assert.Contains(t, lines[1], "Alpha")
}

func TestRenderNames(t *testing.T) {
	out := RenderNames([]string{"Ana", "Ben"})
	assert.Contains(t, out, "Selected 2")
	assert.Contains(t, out, "Ben")
}

func TestPayloads(t *testing.T) {
	p := GroupingPayload(domain.GroupingResult{Groups: []domain.Group{{"Ana"}, {"Ben"}}})
	assert.Equal(t, "name,group\nAna,1\nBen,2", p.CSV)

	empty := PeerReviewPayload(domain.PeerReviewResult{Outcome: domain.Outcome{Empty: true, Message: "nothing"}})
	assert.True(t, empty.Empty)
	assert.Empty(t, empty.CSV)

	out, err := ErrorPayload(errors.New("bad")).JSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "bad", decoded["error"])
}
