package cli

import (
	"github.com/spf13/cobra"

	"classroom/internal/domain"
	"classroom/internal/usecase"
)

var (
	prefFile       string
	prefTeamCount  string
	prefGroupSize  string
	prefDelimiters string
	prefSeed       string
)

var projectGroupsCmd = &cobra.Command{
	Use:   "project-groups",
	Short: "Group students by overlapping project preferences",
	Long: `Read "name,preferences" rows and build groups of students whose stated
preferences overlap most (Jaccard similarity). Preferences are split on the
given delimiters and compared case-insensitively. Grouping is greedy: each
group starts from a shuffled anchor and is filled with the closest remaining
classmates.

Examples:
  classroom project-groups -f prefs.csv --size 3
  classroom project-groups -f prefs.csv --teams 5 --delimiters "/ ;" --seed 11`,
	RunE: runProjectGroups,
}

func init() {
	rootCmd.AddCommand(projectGroupsCmd)
	projectGroupsCmd.Flags().StringVarP(&prefFile, "file", "f", "", "preference roster file (default: stdin)")
	projectGroupsCmd.Flags().StringVarP(&prefTeamCount, "teams", "t", "", "number of groups")
	projectGroupsCmd.Flags().StringVarP(&prefGroupSize, "size", "s", "", "students per group")
	projectGroupsCmd.Flags().StringVar(&prefDelimiters, "delimiters", "", "whitespace-separated preference delimiters (default from config)")
	projectGroupsCmd.Flags().StringVar(&prefSeed, "seed", "", "seed for reproducible groups (default from config)")
	addBatchFlags(projectGroupsCmd)
}

func runProjectGroups(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	uc := usecase.NewPreferenceUseCase(GetLogger())
	seed := flagOrDefault(cmd, "seed", prefSeed, cfg.Defaults.Seed)
	delimiters := flagOrDefault(cmd, "delimiters", prefDelimiters, cfg.Defaults.Delimiters)

	return execute(cmd, "project-groups", prefFile, func(roster string) (result, error) {
		res, err := uc.Run(domain.GroupingRequest{
			Roster:     roster,
			Seed:       seed,
			TeamCount:  prefTeamCount,
			GroupSize:  prefGroupSize,
			Delimiters: delimiters,
		})
		if err != nil {
			return result{}, err
		}
		return groupingResult(res, cfg.Output.GroupsPerRow), nil
	})
}
