package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"luminas/internal/config"
)

//go:embed sample_scenario.csv
var sampleScenarioCSV []byte

func newSampleCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample scenario script into the input directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := filepath.Join(cfg.Paths.InputDir, "sample_scenario.csv")
			if trimmed := strings.TrimSpace(targetPath); trimmed != "" {
				expanded, err := config.ExpandPath(trimmed)
				if err != nil {
					return fmt.Errorf("resolve sample path: %w", err)
				}
				target = expanded
			}
			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("sample already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check sample path: %w", err)
				}
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create sample directory: %w", err)
			}
			if err := os.WriteFile(target, sampleScenarioCSV, 0o644); err != nil {
				return fmt.Errorf("write sample script: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample scenario to %s\n", target)
			fmt.Fprintf(out, "Compile it with `luminas compile %s`\n", filepath.Base(target))
			fmt.Fprintf(out, "Referenced images belong under %s and %s\n",
				relOrAbs(cfg.BackgroundsDir()), relOrAbs(cfg.CharactersDir()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the sample script")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing sample script")
	return cmd
}

func relOrAbs(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
