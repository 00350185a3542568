package cli

import (
	"github.com/spf13/cobra"

	"classroom/internal/adapter/export"
	"classroom/internal/domain"
	"classroom/internal/usecase"
)

var (
	peerFile string
	peerSeed string
)

var peerReviewCmd = &cobra.Command{
	Use:   "peer-review",
	Short: "Pair participants into a peer review cycle",
	Long: `Shuffle participants (students or teams, one per line) into a single cycle
so that everyone reviews exactly one other participant and is reviewed once.

Examples:
  classroom peer-review -f teams.txt
  classroom peer-review -f teams.txt --seed 3 --format json`,
	RunE: runPeerReview,
}

func init() {
	rootCmd.AddCommand(peerReviewCmd)
	peerReviewCmd.Flags().StringVarP(&peerFile, "file", "f", "", "participant file (default: stdin)")
	peerReviewCmd.Flags().StringVar(&peerSeed, "seed", "", "seed for reproducible matches (default from config)")
	addBatchFlags(peerReviewCmd)
}

func runPeerReview(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	uc := usecase.NewPeerReviewUseCase(GetLogger())
	seed := flagOrDefault(cmd, "seed", peerSeed, cfg.Defaults.Seed)

	return execute(cmd, "peer-review", peerFile, func(roster string) (result, error) {
		res, err := uc.Run(domain.PeerReviewRequest{Roster: roster, Seed: seed})
		if err != nil {
			return result{}, err
		}
		if res.Empty {
			return result{payload: export.PeerReviewPayload(res), table: export.RenderEmpty(res.Outcome)}, nil
		}
		return result{payload: export.PeerReviewPayload(res), table: export.RenderPairs(res.Pairs)}, nil
	})
}
