// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/computor/internal/batch"
	"github.com/pdiddy/computor/internal/history"
	"github.com/pdiddy/computor/internal/report"
	"github.com/pdiddy/computor/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Solve every equation listed in a YAML file",
	Long: `Batch reads a YAML file with an "equations" list and solves each entry in
order. Entries are plain strings or mappings with "name" and "equation" keys.
Malformed entries are reported and skipped; the command fails if any entry
failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f, err := batch.ReadFile(args[0])
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	results, summary := batch.Run(f, cfg.Solver)
	out := cmd.OutOrStdout()
	printed := false
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed  %q: %v\n", res.Entry.Equation, res.Err)
			continue
		}

		r := res.Report
		if store != nil {
			if r, err = store.Record(cmd.Context(), r); err != nil {
				return err
			}
		}
		if printed {
			fmt.Fprintln(out)
		}
		printed = true
		if r.Name != "" && cfg.Output.Format == types.OutputText {
			fmt.Fprintf(out, "# %s\n", r.Name)
		}
		if err := report.Write(out, r, cfg.Output); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "\nsolved: %d, failed: %d\n", summary.Solved, summary.Failed)
	if summary.HasFailures() {
		return fmt.Errorf("%d equation(s) failed", summary.Failed)
	}
	return nil
}
