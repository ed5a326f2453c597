package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"luminas/internal/compile"
)

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var strict bool
	var artifactName string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "compile [script.csv]",
		Short: "Build a scenario script into a self-contained artifact",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			csvName := "scenario.csv"
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				csvName = strings.TrimSpace(args[0])
			}
			if strict {
				cfg.Build.StrictAssets = true
			}
			if name := strings.TrimSpace(artifactName); name != "" {
				cfg.Build.ArtifactName = name
			}

			pipeline := compile.New(cfg, ctx.ensureLogger())
			report, err := pipeline.Compile(cmd.Context(), csvName)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Compiled %s (%d rows)\n", report.ScriptPath, report.Rows)
			fmt.Fprintf(out, "Artifact: %s (%d bytes, %d assets embedded)\n",
				report.ArtifactPath, report.ArtifactSize, report.Assets)
			if len(report.Unresolved) > 0 {
				fmt.Fprintf(out, "Warning: %d asset reference(s) unresolved:\n", len(report.Unresolved))
				for _, name := range report.Unresolved {
					fmt.Fprintf(out, "  - %s\n", name)
				}
			}
			fmt.Fprintf(out, "Done in %s\n", report.Elapsed.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail the build when any asset reference is unresolved")
	cmd.Flags().StringVarP(&artifactName, "output", "o", "", "Artifact file name (overrides configuration)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the build report as JSON")
	return cmd
}
