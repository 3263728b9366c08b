// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-stamp/internal/index"
	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Query the occurrence index built by scan --index",
}

var indexStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print paper, stamp, occurrence and run counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := index.NewStore(cfg.Index)
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats(cmd.Context())
		if err != nil {
			return err
		}
		lines := []string{
			fmt.Sprintf("Papers:      %d", stats.Papers),
			fmt.Sprintf("Stamped:     %d", stats.Stamped),
			fmt.Sprintf("Occurrences: %d", stats.Occurrences),
			fmt.Sprintf("Runs:        %d", stats.Runs),
		}
		return render(cmd.OutOrStdout(), cfg.Format, stats, lines)
	},
}

var indexGetCmd = &cobra.Command{
	Use:   "get <identifier>...",
	Short: "Look up identifiers in the index",
	Long: `Get prints the indexed record for each identifier: the highest
version seen, the stamp category and date if any occurrence carried a
stamp, and the number of occurrences. Versions in the argument are
ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndexGet,
}

func init() {
	indexCmd.AddCommand(indexStatsCmd)
	indexCmd.AddCommand(indexGetCmd)

	rootCmd.AddCommand(indexCmd)
}

func runIndexGet(cmd *cobra.Command, args []string) error {
	store, err := index.NewStore(cfg.Index)
	if err != nil {
		return err
	}
	defer store.Close()

	var (
		papers []types.IndexedPaper
		lines  []string
		failed int
	)
	for _, arg := range args {
		p, err := store.Get(cmd.Context(), arg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
			failed++
			continue
		}
		papers = append(papers, *p)

		line := fmt.Sprintf("%s\toccurrences=%d", p.ID, p.Occurrences)
		if p.Category != "" {
			line += " category=" + p.Category
		}
		if p.Submitted != nil {
			line += " submitted=" + p.Submitted.String()
		}
		lines = append(lines, line)
	}

	if err := render(cmd.OutOrStdout(), cfg.Format, papers, lines); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d identifier(s) not found", failed)
	}
	return nil
}
