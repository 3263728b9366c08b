// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-stamp/pkg/arxiv"
)

// idResult pairs an argument with its parsed identifier.
type idResult struct {
	Input string   `json:"input" yaml:"input"`
	ID    arxiv.ID `json:"id" yaml:"id"`
}

var idCmd = &cobra.Command{
	Use:   "id <identifier>...",
	Short: "Parse and normalize arXiv identifiers",
	Long: `Id parses each argument as exactly one arXiv identifier, with or
without the "arXiv:" marker, and prints the normalized record. Arguments
that fail are reported on stderr and make the command exit non-zero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runID,
}

func init() {
	rootCmd.AddCommand(idCmd)
}

func runID(cmd *cobra.Command, args []string) error {
	var (
		results []idResult
		lines   []string
		failed  int
	)
	for _, arg := range args {
		id, err := arxiv.ParseIdentifier(arg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
			failed++
			continue
		}
		results = append(results, idResult{Input: arg, ID: id})
		lines = append(lines, describeID(id))
	}

	if err := render(cmd.OutOrStdout(), cfg.Format, results, lines); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d identifier(s) failed to parse", failed)
	}
	return nil
}
