package usecase

import (
	"strings"

	"go.uber.org/zap"

	"classroom/internal/adapter/random"
	"classroom/internal/adapter/roster"
	"classroom/internal/domain"
)

const msgTooFewPeers = "Upload at least two participants to create matches."

// PeerReviewUseCase pairs participants into a single review cycle.
type PeerReviewUseCase struct {
	logger *zap.Logger
}

// NewPeerReviewUseCase creates a new peer review use case.
func NewPeerReviewUseCase(logger *zap.Logger) *PeerReviewUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PeerReviewUseCase{logger: logger}
}

// Run returns one (reviewer, reviewee) pair per participant. Fewer than two
// participants is an empty result, not an error.
func (u *PeerReviewUseCase) Run(req domain.PeerReviewRequest) (domain.PeerReviewResult, error) {
	if strings.TrimSpace(req.Roster) == "" {
		return domain.PeerReviewResult{}, invalidInput("Upload a roster file to create matches.")
	}

	names := roster.ParseNames(req.Roster)

	u.logger.Debug("peer review",
		zap.Int("participants", len(names)),
		zap.String("seed", strings.TrimSpace(req.Seed)),
	)

	if len(names) < 2 {
		return domain.PeerReviewResult{Outcome: domain.Outcome{Empty: true, Message: msgTooFewPeers}}, nil
	}

	rng := random.New(random.NormalizeSeed(req.Seed))
	return domain.PeerReviewResult{Pairs: RoundRobin(names, rng)}, nil
}
