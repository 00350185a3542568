package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"classroom/internal/adapter/export"
	"classroom/internal/adapter/fs"
)

// result is what every task hands back for rendering.
type result struct {
	payload export.Payload
	table   string
}

// runner turns one roster text into a result.
type runner func(roster string) (result, error)

func (r result) render(format string) (string, error) {
	switch format {
	case "json":
		return r.payload.JSON()
	case "csv":
		if r.payload.Empty {
			return "", nil
		}
		return r.payload.CSV, nil
	case "table", "":
		return r.table, nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// readRoster reads the roster from path, or from stdin when path is "" or "-".
func readRoster(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read roster from stdin: %w", err)
		}
		return string(data), nil
	}
	if !filepath.IsAbs(path) && rootDir != "" {
		path = filepath.Join(rootDir, path)
	}
	text, err := fs.Reader{}.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read roster: %w", err)
	}
	return text, nil
}

// execute runs a task once, or over every roster file when --batch is set.
func execute(cmd *cobra.Command, task, rosterPath string, run runner) error {
	if batchDir != "" {
		return runBatch(cmd, task, run)
	}

	text, err := readRoster(cmd, rosterPath)
	if err != nil {
		return err
	}

	res, err := run(text)
	if err != nil {
		return err
	}
	return emit(cmd, res)
}

func emit(cmd *cobra.Command, res result) error {
	out, err := res.render(outputFormat)
	if err != nil {
		return err
	}
	if res.payload.Empty && outputFormat == "csv" {
		cmd.PrintErrln(res.payload.Message)
		return nil
	}

	if outputPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	GetLogger().Info("wrote output", zap.String("path", outputPath), zap.String("format", outputFormat))
	return nil
}
