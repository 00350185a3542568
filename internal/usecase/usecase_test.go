package usecase

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"classroom/internal/domain"
)

const coldCallRoster = `name,excused
Ada,false
Bert,true
Cleo,false
Dev,
Eve,TRUE
Finn,false`

func TestColdCall_ExcludesExcusedByDefault(t *testing.T) {
	uc := NewColdCallUseCase(zap.NewNop())

	res, err := uc.Run(domain.ColdCallRequest{Roster: coldCallRoster, SampleSize: "2", Seed: "7"})
	require.NoError(t, err)
	assert.False(t, res.Empty)
	assert.Equal(t, []string{"Dev", "Cleo"}, res.Names)
}

func TestColdCall_IncludeExcused(t *testing.T) {
	uc := NewColdCallUseCase(nil)

	res, err := uc.Run(domain.ColdCallRequest{Roster: coldCallRoster, SampleSize: "3", Seed: "7", IncludeExcused: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Eve", "Dev", "Bert"}, res.Names)
}

func TestColdCall_SampleLargerThanPool(t *testing.T) {
	uc := NewColdCallUseCase(nil)

	res, err := uc.Run(domain.ColdCallRequest{Roster: coldCallRoster, SampleSize: "50"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ada", "Cleo", "Dev", "Finn"}, res.Names)
}

func TestColdCall_NoEligible(t *testing.T) {
	uc := NewColdCallUseCase(nil)

	res, err := uc.Run(domain.ColdCallRequest{Roster: "name,excused\nAda,true\nBen,true"})
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.Equal(t, "No eligible students found.", res.Message)
	assert.Empty(t, res.Names)
}

func TestColdCall_InvalidInput(t *testing.T) {
	uc := NewColdCallUseCase(nil)

	_, err := uc.Run(domain.ColdCallRequest{Roster: "  \n"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Run(domain.ColdCallRequest{Roster: coldCallRoster, SampleSize: "0"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "Sample size must be at least 1.")
}

func TestBreakout_NineNamesThreeTeams(t *testing.T) {
	roster := "Ana\nBen\nCal\nDee\nEli\nFay\nGus\nHal\nIvy"
	uc := NewBreakoutUseCase(zap.NewNop())

	first, err := uc.Run(domain.GroupingRequest{Roster: roster, TeamCount: "3", Seed: "42"})
	require.NoError(t, err)

	want := []domain.Group{
		{"Cal", "Eli", "Dee"},
		{"Ana", "Hal", "Gus"},
		{"Ben", "Ivy", "Fay"},
	}
	if diff := cmp.Diff(want, first.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	second, err := uc.Run(domain.GroupingRequest{Roster: roster, TeamCount: "3", Seed: "42"})
	require.NoError(t, err)
	if diff := cmp.Diff(first.Groups, second.Groups); diff != "" {
		t.Errorf("same seed produced different groups:\n%s", diff)
	}
}

func TestBreakout_GroupSize(t *testing.T) {
	roster := "names\nAda\nBert\nCleo\nDeepak\nEvan\nFatima\nGus"
	uc := NewBreakoutUseCase(nil)

	res, err := uc.Run(domain.GroupingRequest{Roster: roster, GroupSize: "3", Seed: "2"})
	require.NoError(t, err)

	want := []domain.Group{{"Bert", "Cleo", "Gus"}, {"Evan", "Ada"}, {"Deepak", "Fatima"}}
	if diff := cmp.Diff(want, res.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	rows := res.Assignments()
	require.Len(t, rows, 7)
	assert.Equal(t, domain.Assignment{Name: "Bert", Group: 1}, rows[0])
	assert.Equal(t, domain.Assignment{Name: "Fatima", Group: 3}, rows[6])
}

func TestBreakout_Errors(t *testing.T) {
	uc := NewBreakoutUseCase(nil)
	roster := "Ada\nBert\nCleo\nDeepak"

	tests := []struct {
		name string
		req  domain.GroupingRequest
		msg  string
	}{
		{"missing roster", domain.GroupingRequest{TeamCount: "2"}, "Upload a roster file to create groups."},
		{"no plan", domain.GroupingRequest{Roster: roster}, "Provide either team count or group size."},
		{"mismatch", domain.GroupingRequest{Roster: roster, TeamCount: "2", GroupSize: "1"}, "Team count and group size describe different groupings."},
		{"bad team count", domain.GroupingRequest{Roster: roster, TeamCount: "two"}, "Team count must be a whole number."},
		{"zero size", domain.GroupingRequest{Roster: roster, GroupSize: "0"}, "Group size must be at least 1."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Run(tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestPeerReview_KnownCycle(t *testing.T) {
	uc := NewPeerReviewUseCase(zap.NewNop())

	res, err := uc.Run(domain.PeerReviewRequest{Roster: "Team 1\nTeam 2\nTeam 3\nTeam 4", Seed: "3"})
	require.NoError(t, err)

	want := []domain.Pair{
		{Reviewer: "Team 2", Reviewee: "Team 4"},
		{Reviewer: "Team 4", Reviewee: "Team 1"},
		{Reviewer: "Team 1", Reviewee: "Team 3"},
		{Reviewer: "Team 3", Reviewee: "Team 2"},
	}
	if diff := cmp.Diff(want, res.Pairs); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestPeerReview_TooFewParticipants(t *testing.T) {
	uc := NewPeerReviewUseCase(nil)

	for _, roster := range []string{"Solo", "name\nSolo", "names"} {
		res, err := uc.Run(domain.PeerReviewRequest{Roster: roster})
		require.NoError(t, err, "roster %q", roster)
		assert.True(t, res.Empty)
		assert.Equal(t, "Upload at least two participants to create matches.", res.Message)
	}

	_, err := uc.Run(domain.PeerReviewRequest{Roster: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPreferenceGroups_BySimilarity(t *testing.T) {
	roster := strings.Join([]string{
		"name,preferences",
		"Ava,Health, Policy",
		"Blake,Health",
		"Cory,Environment",
		"Drew,Environment, Climate",
	}, "\n")
	uc := NewPreferenceUseCase(zap.NewNop())

	res, err := uc.Run(domain.GroupingRequest{Roster: roster, GroupSize: "2", Seed: "4"})
	require.NoError(t, err)

	want := []domain.Group{{"Blake", "Ava"}, {"Cory", "Drew"}}
	if diff := cmp.Diff(want, res.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestPreferenceGroups_CustomDelimiter(t *testing.T) {
	roster := "A,Urban / Housing\nB,Urban\nC,Housing"
	uc := NewPreferenceUseCase(nil)

	res, err := uc.Run(domain.GroupingRequest{Roster: roster, TeamCount: "2", Delimiters: "/", Seed: "5"})
	require.NoError(t, err)

	want := []domain.Group{{"B", "A"}, {"C"}}
	if diff := cmp.Diff(want, res.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestPreferenceGroups_IsPartition(t *testing.T) {
	roster := "Ava,a\nBen,a,b\nCal,\nDee,c\nEli,b c\nFay,c\nGus,a"
	uc := NewPreferenceUseCase(nil)

	res, err := uc.Run(domain.GroupingRequest{Roster: roster, TeamCount: "3"})
	require.NoError(t, err)
	require.Len(t, res.Groups, 3)

	var names []string
	for _, g := range res.Groups {
		names = append(names, g...)
	}
	assert.ElementsMatch(t, []string{"Ava", "Ben", "Cal", "Dee", "Eli", "Fay", "Gus"}, names)
	assert.Equal(t, []int{3, 2, 2}, []int{len(res.Groups[0]), len(res.Groups[1]), len(res.Groups[2])})
}

func TestPreferenceGroups_MissingRoster(t *testing.T) {
	uc := NewPreferenceUseCase(nil)

	_, err := uc.Run(domain.GroupingRequest{Roster: "name,preferences\n", GroupSize: "2"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
