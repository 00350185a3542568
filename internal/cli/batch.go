package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"classroom/internal/adapter/fs"
	"classroom/internal/port"
	"classroom/internal/usecase"
)

var (
	batchDir      string
	batchIncludes []string
)

// BatchResult summarizes a --batch run.
type BatchResult struct {
	FilesProcessed int
	FilesEmpty     int
	FilesSkipped   int
	OutputDir      string
	Warnings       []string
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&batchDir, "batch", "", "run over every roster file under this directory")
	cmd.Flags().StringSliceVar(&batchIncludes, "include", nil, "glob patterns for --batch (default from config)")
}

// runBatch applies run to each roster file found under batchDir and writes
// one CSV per input into the output directory.
func runBatch(cmd *cobra.Command, task string, run runner) error {
	cfg := GetConfig()
	log := GetLogger()

	includes := cfg.Batch.Includes
	if len(batchIncludes) > 0 {
		includes = batchIncludes
	}
	if err := fs.ValidatePatterns(append(append([]string{}, includes...), cfg.Batch.Excludes...)); err != nil {
		return err
	}

	dir := batchDir
	if !filepath.IsAbs(dir) && rootDir != "" {
		dir = filepath.Join(rootDir, dir)
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	var walker port.RosterWalker = fs.NewWalker(includes, cfg.Batch.Excludes)
	files, err := walker.Walk(dir)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", batchDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no roster files matched under %s", batchDir)
	}

	outDir := outputPath
	if outDir == "" {
		outDir = filepath.Join(dir, ".classroom", "out")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", task)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(cmd.ErrOrStderr())
		}),
	)

	summary := BatchResult{OutputDir: outDir}
	var reader port.FileReader = fs.Reader{}
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f.Path)

		text, err := reader.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}

		res, err := run(text)
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			summary.FilesSkipped++
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("%s: %s", rel, err))
			log.Warn("skipped roster", zap.String("file", rel), zap.Error(err))
		case err != nil:
			return fmt.Errorf("%s: %w", rel, err)
		case res.payload.Empty:
			summary.FilesEmpty++
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("%s: %s", rel, res.payload.Message))
		default:
			target := filepath.Join(outDir, batchOutputName(rel, task))
			if err := os.WriteFile(target, []byte(res.payload.CSV), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
			summary.FilesProcessed++
			log.Debug("wrote batch output", zap.String("file", rel), zap.String("output", target))
		}
		_ = bar.Add(1)
	}

	printBatchSummary(cmd, summary)
	return nil
}

// batchOutputName flattens a roster's relative path into one file name,
// e.g. "fall/period1.csv" -> "fall_period1.breakout.csv".
func batchOutputName(rel, task string) string {
	base := strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
	base = strings.ReplaceAll(base, "/", "_")
	return base + "." + task + ".csv"
}

func printBatchSummary(cmd *cobra.Command, s BatchResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nBatch complete:\n")
	fmt.Fprintf(out, "  Files processed: %d\n", s.FilesProcessed)
	fmt.Fprintf(out, "  Files empty:     %d\n", s.FilesEmpty)
	fmt.Fprintf(out, "  Files skipped:   %d (invalid input)\n", s.FilesSkipped)

	if len(s.Warnings) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, w := range s.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	fmt.Fprintf(out, "\nOutput written to: %s\n", s.OutputDir)
}
