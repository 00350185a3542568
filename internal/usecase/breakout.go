package usecase

import (
	"strings"

	"go.uber.org/zap"

	"classroom/internal/adapter/random"
	"classroom/internal/adapter/roster"
	"classroom/internal/domain"
)

const msgNoGroups = "No groups to create."

// BreakoutUseCase splits a name list into balanced random groups.
type BreakoutUseCase struct {
	logger *zap.Logger
}

// NewBreakoutUseCase creates a new breakout use case.
func NewBreakoutUseCase(logger *zap.Logger) *BreakoutUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BreakoutUseCase{logger: logger}
}

func (u *BreakoutUseCase) Run(req domain.GroupingRequest) (domain.GroupingResult, error) {
	names := roster.ParseNames(req.Roster)
	if len(names) == 0 {
		return domain.GroupingResult{}, invalidInput("Upload a roster file to create groups.")
	}

	groupsNeeded, err := resolveRequestedGroups(len(names), req)
	if err != nil {
		return domain.GroupingResult{}, err
	}

	u.logger.Debug("breakout groups",
		zap.Int("names", len(names)),
		zap.Int("groups", groupsNeeded),
		zap.String("seed", strings.TrimSpace(req.Seed)),
	)

	if groupsNeeded == 0 {
		return domain.GroupingResult{Outcome: domain.Outcome{Empty: true, Message: msgNoGroups}}, nil
	}

	rng := random.New(random.NormalizeSeed(req.Seed))
	return domain.GroupingResult{Groups: Partition(names, groupsNeeded, rng)}, nil
}

func resolveRequestedGroups(nameCount int, req domain.GroupingRequest) (int, error) {
	teamCount, err := ParseCount(req.TeamCount, "Team count")
	if err != nil {
		return 0, err
	}
	groupSize, err := ParseCount(req.GroupSize, "Group size")
	if err != nil {
		return 0, err
	}
	return ResolveGroupCount(nameCount, teamCount, groupSize)
}
