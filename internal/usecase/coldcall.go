package usecase

import (
	"strings"

	"go.uber.org/zap"

	"classroom/internal/adapter/random"
	"classroom/internal/adapter/roster"
	"classroom/internal/domain"
)

const msgNoEligible = "No eligible students found."

// ColdCallUseCase draws a random sample of students to call on.
type ColdCallUseCase struct {
	logger *zap.Logger
}

// NewColdCallUseCase creates a new cold-call use case.
func NewColdCallUseCase(logger *zap.Logger) *ColdCallUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ColdCallUseCase{logger: logger}
}

// Run parses the roster, filters out excused students unless asked not to,
// and returns the seeded sample in draw order.
func (u *ColdCallUseCase) Run(req domain.ColdCallRequest) (domain.ColdCallResult, error) {
	if strings.TrimSpace(req.Roster) == "" {
		return domain.ColdCallResult{}, invalidInput("Upload a roster file to run cold calling.")
	}

	sampleSize, err := ParseSampleSize(req.SampleSize)
	if err != nil {
		return domain.ColdCallResult{}, err
	}

	entries := roster.ParseColdCall(req.Roster)
	eligible := make([]string, 0, len(entries))
	for _, e := range entries {
		if req.IncludeExcused || !e.Excused {
			eligible = append(eligible, e.Name)
		}
	}

	u.logger.Debug("cold call",
		zap.Int("roster", len(entries)),
		zap.Int("eligible", len(eligible)),
		zap.Int("sample_size", sampleSize),
		zap.Bool("include_excused", req.IncludeExcused),
		zap.String("seed", strings.TrimSpace(req.Seed)),
	)

	if len(eligible) == 0 {
		return domain.ColdCallResult{Outcome: domain.Outcome{Empty: true, Message: msgNoEligible}}, nil
	}

	rng := random.New(random.NormalizeSeed(req.Seed))
	return domain.ColdCallResult{Names: SampleNames(eligible, sampleSize, rng)}, nil
}
