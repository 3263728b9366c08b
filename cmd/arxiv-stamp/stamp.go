// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-stamp/pkg/arxiv"
)

var stampCmd = &cobra.Command{
	Use:   "stamp <text>",
	Short: "Parse an arXiv stamp from text",
	Long: `Stamp finds the first arXiv identifier in the text and parses the
stamp that starts there: the identifier, a bracketed category and a
submission date, e.g.

  arxiv-stamp stamp "arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007"

Multiple arguments are joined with spaces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := arxiv.ParseStamp(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), cfg.Format, st, []string{describeStamp(st)})
	},
}

func init() {
	rootCmd.AddCommand(stampCmd)
}
