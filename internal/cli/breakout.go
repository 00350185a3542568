package cli

import (
	"github.com/spf13/cobra"

	"classroom/internal/adapter/export"
	"classroom/internal/domain"
	"classroom/internal/usecase"
)

var (
	breakoutFile      string
	breakoutTeamCount string
	breakoutGroupSize string
	breakoutSeed      string
)

var breakoutCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Split a roster into balanced breakout groups",
	Long: `Shuffle a list of names (one per line, optional "name" header) and split it
into groups whose sizes differ by at most one. Give --teams, --size, or both
when they agree.

Examples:
  classroom breakout -f names.txt --teams 4
  classroom breakout -f names.txt --size 3 --seed 42 --format csv -o groups.csv`,
	RunE: runBreakout,
}

func init() {
	rootCmd.AddCommand(breakoutCmd)
	breakoutCmd.Flags().StringVarP(&breakoutFile, "file", "f", "", "roster file (default: stdin)")
	breakoutCmd.Flags().StringVarP(&breakoutTeamCount, "teams", "t", "", "number of groups")
	breakoutCmd.Flags().StringVarP(&breakoutGroupSize, "size", "s", "", "students per group")
	breakoutCmd.Flags().StringVar(&breakoutSeed, "seed", "", "seed for reproducible groups (default from config)")
	addBatchFlags(breakoutCmd)
}

func runBreakout(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	uc := usecase.NewBreakoutUseCase(GetLogger())
	seed := flagOrDefault(cmd, "seed", breakoutSeed, cfg.Defaults.Seed)

	return execute(cmd, "breakout", breakoutFile, func(roster string) (result, error) {
		res, err := uc.Run(domain.GroupingRequest{
			Roster:    roster,
			Seed:      seed,
			TeamCount: breakoutTeamCount,
			GroupSize: breakoutGroupSize,
		})
		if err != nil {
			return result{}, err
		}
		return groupingResult(res, cfg.Output.GroupsPerRow), nil
	})
}

func groupingResult(res domain.GroupingResult, perRow int) result {
	if res.Empty {
		return result{payload: export.GroupingPayload(res), table: export.RenderEmpty(res.Outcome)}
	}
	return result{payload: export.GroupingPayload(res), table: export.RenderGroups(res.Groups, perRow)}
}
