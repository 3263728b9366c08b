// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-stamp/internal/category"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [token...]",
	Short: "List arXiv subject categories or check tokens against them",
	Long: `Without arguments, categories lists the built-in arXiv taxonomy,
including legacy archives that only appear in old identifiers. With
arguments, each token is checked exactly (case-sensitive) and unknown
tokens make the command exit non-zero.`,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().String("group", "", "only list categories in this group (e.g. physics)")

	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	var (
		cats    []category.Category
		lines   []string
		unknown int
	)

	if len(args) == 0 {
		group, _ := cmd.Flags().GetString("group")
		for _, c := range category.All() {
			if group != "" && c.Group != group {
				continue
			}
			cats = append(cats, c)
		}
	} else {
		for _, tok := range args {
			c, ok := category.Lookup(tok)
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: unknown category\n", tok)
				unknown++
				continue
			}
			cats = append(cats, c)
		}
	}

	for _, c := range cats {
		line := c.Token + "\t" + c.Group
		if c.Legacy {
			line += "\tlegacy"
		}
		lines = append(lines, line)
	}

	if err := render(cmd.OutOrStdout(), cfg.Format, cats, lines); err != nil {
		return err
	}
	if unknown > 0 {
		return fmt.Errorf("%d unknown category token(s)", unknown)
	}
	return nil
}
