package usecase

import (
	"strings"

	"go.uber.org/zap"

	"classroom/internal/adapter/analyzer"
	"classroom/internal/adapter/random"
	"classroom/internal/adapter/roster"
	"classroom/internal/domain"
	"classroom/internal/port"
)

// PreferenceUseCase groups students whose stated preferences overlap.
type PreferenceUseCase struct {
	logger *zap.Logger
}

// NewPreferenceUseCase creates a new preference grouping use case.
func NewPreferenceUseCase(logger *zap.Logger) *PreferenceUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceUseCase{logger: logger}
}

func (u *PreferenceUseCase) Run(req domain.GroupingRequest) (domain.GroupingResult, error) {
	entries := roster.ParsePreferences(req.Roster)
	if len(entries) == 0 {
		return domain.GroupingResult{}, invalidInput("Upload a roster file to create preference groups.")
	}

	groupsNeeded, err := resolveRequestedGroups(len(entries), req)
	if err != nil {
		return domain.GroupingResult{}, err
	}

	delimiters := analyzer.ParseDelimiters(req.Delimiters)
	u.logger.Debug("preference groups",
		zap.Int("students", len(entries)),
		zap.Int("groups", groupsNeeded),
		zap.Strings("delimiters", delimiters),
		zap.String("seed", strings.TrimSpace(req.Seed)),
	)

	if groupsNeeded == 0 {
		return domain.GroupingResult{Outcome: domain.Outcome{Empty: true, Message: msgNoGroups}}, nil
	}

	tokenizer := analyzer.NewPreferenceTokenizer(delimiters)
	rng := random.New(random.NormalizeSeed(req.Seed))
	return domain.GroupingResult{Groups: FormPreferenceGroups(entries, groupsNeeded, tokenizer, rng)}, nil
}

// FormPreferenceGroups tokenizes each entry's preferences, scores every pair
// and greedily assembles groups in shuffled anchor order.
func FormPreferenceGroups(entries []domain.PreferenceEntry, groups int, tokenizer port.Tokenizer, rng port.RNG) []domain.Group {
	if len(entries) == 0 || groups < 1 {
		return nil
	}

	sets := make([]domain.TokenSet, len(entries))
	for i, e := range entries {
		sets[i] = tokenizer.Tokenize(e.Preferences)
	}
	matrix := analyzer.BuildSimilarityMatrix(sets)

	order := random.Shuffle(indexRange(len(entries)), rng)
	indexGroups := GreedyPreferenceGroups(matrix, GroupSizes(len(entries), groups), order)

	result := make([]domain.Group, len(indexGroups))
	for i, members := range indexGroups {
		group := make(domain.Group, len(members))
		for j, idx := range members {
			group[j] = entries[idx].Name
		}
		result[i] = group
	}
	return result
}
