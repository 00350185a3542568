package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"classroom/config"
)

var (
	cfgFile      string
	cfg          *config.Config
	rootDir      string
	outputFormat string
	outputPath   string
	verbose      bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "classroom",
	Short: "Seeded cold calling, breakout groups and peer review matching",
	Long: `classroom draws students for cold calling, splits rosters into balanced
breakout groups, pairs participants into a peer review cycle, and groups
students by overlapping project preferences. Pass --seed to make any run
reproducible.

Example usage:
  classroom cold-call -f roster.csv -n 3 --seed 42
  classroom breakout -f names.txt --teams 4
  classroom peer-review -f teams.txt --seed 7
  classroom project-groups -f prefs.csv --size 3 --delimiters "/ ;"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if outputFormat == "" {
			outputFormat = cfg.Output.Format
		}

		logger, err = newLogger(cfg.Logging.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./classroom.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "working directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "output format: table, csv or json (default from config)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file, or output directory with --batch")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// newLogger builds a production zap logger writing to stderr.
func newLogger(level string, debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if debug {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}

func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}

func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}
