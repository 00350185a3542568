package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"classroom/internal/adapter/export"
	"classroom/internal/domain"
	"classroom/internal/usecase"
)

var (
	coldCallFile           string
	coldCallSampleSize     string
	coldCallSeed           string
	coldCallIncludeExcused bool
)

var coldCallCmd = &cobra.Command{
	Use:   "cold-call",
	Short: "Pick students to cold call",
	Long: `Draw a random sample of students from a "name,excused" roster. The first
row is always treated as a header. Students marked excused (true) are left
out unless --include-excused is set.

Examples:
  classroom cold-call -f roster.csv
  classroom cold-call -f roster.csv -n 3 --seed 42 --format csv`,
	RunE: runColdCall,
}

func init() {
	rootCmd.AddCommand(coldCallCmd)
	coldCallCmd.Flags().StringVarP(&coldCallFile, "file", "f", "", "roster file (default: stdin)")
	coldCallCmd.Flags().StringVarP(&coldCallSampleSize, "sample-size", "n", "", "number of students to pick (default from config)")
	coldCallCmd.Flags().StringVar(&coldCallSeed, "seed", "", "seed for a reproducible draw (default from config)")
	coldCallCmd.Flags().BoolVar(&coldCallIncludeExcused, "include-excused", false, "include students marked excused")
	addBatchFlags(coldCallCmd)
}

func runColdCall(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	uc := usecase.NewColdCallUseCase(GetLogger())

	sampleSize := flagOrDefault(cmd, "sample-size", coldCallSampleSize, strconv.Itoa(cfg.Defaults.SampleSize))
	seed := flagOrDefault(cmd, "seed", coldCallSeed, cfg.Defaults.Seed)
	includeExcused := coldCallIncludeExcused
	if !cmd.Flags().Changed("include-excused") {
		includeExcused = cfg.Defaults.IncludeExcused
	}

	return execute(cmd, "cold-call", coldCallFile, func(roster string) (result, error) {
		res, err := uc.Run(domain.ColdCallRequest{
			Roster:         roster,
			Seed:           seed,
			SampleSize:     sampleSize,
			IncludeExcused: includeExcused,
		})
		if err != nil {
			return result{}, err
		}
		if res.Empty {
			return result{payload: export.ColdCallPayload(res), table: export.RenderEmpty(res.Outcome)}, nil
		}
		return result{payload: export.ColdCallPayload(res), table: export.RenderNames(res.Names)}, nil
	})
}

// flagOrDefault returns the flag value when set on the command line, else
// the configured default.
func flagOrDefault(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) || value != "" {
		return value
	}
	return fallback
}
