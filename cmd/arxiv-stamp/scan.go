// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-stamp/internal/index"
	"github.com/pdiddy/arxiv-stamp/internal/scan"
	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

// scanRecord is the output form of one occurrence. Parse failures carry
// the error text instead of an identifier.
type scanRecord struct {
	Path  string         `json:"path,omitempty" yaml:"path,omitempty"`
	Line  int            `json:"line" yaml:"line"`
	Raw   string         `json:"raw" yaml:"raw"`
	ID    *types.ArxivID `json:"id,omitempty" yaml:"id,omitempty"`
	Stamp *types.Stamp   `json:"stamp,omitempty" yaml:"stamp,omitempty"`
	Error string         `json:"error,omitempty" yaml:"error,omitempty"`
}

var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "Find arXiv identifiers and stamps in files",
	Long: `Scan reads the given files, or walks the given directories for files
with a configured extension, and reports every identifier-shaped match
with its location. Matches that begin a full stamp also report the
category and submission date. With no paths, standard input is scanned.

With --index the parsed occurrences are recorded in the SQLite index so
they can be queried later with "arxiv-stamp index".`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringSlice("ext", nil, "file extensions to scan when walking directories")
	scanCmd.Flags().Bool("index", false, "record occurrences in the index database")
	scanCmd.Flags().Bool("unique", false, "print each identifier once instead of every occurrence")

	viper.BindPFlag("scan.extensions", scanCmd.Flags().Lookup("ext"))

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	var (
		occs []types.Occurrence
		err  error
	)
	if len(args) == 0 {
		occs, err = scan.Reader(cmd.InOrStdin(), "")
	} else {
		occs, err = scan.Paths(cmd.Context(), args, cfg.Scan.Extensions)
	}
	if err != nil {
		return err
	}

	useIndex, _ := cmd.Flags().GetBool("index")
	if useIndex {
		if err := recordOccurrences(cmd, occs); err != nil {
			return err
		}
	}

	unique, _ := cmd.Flags().GetBool("unique")
	if unique {
		ids := scan.Unique(occs)
		lines := make([]string, 0, len(ids))
		for _, id := range ids {
			lines = append(lines, id.String())
		}
		return render(cmd.OutOrStdout(), cfg.Format, ids, lines)
	}

	records := make([]scanRecord, 0, len(occs))
	lines := make([]string, 0, len(occs))
	for _, o := range occs {
		rec := scanRecord{Path: o.Path, Line: o.Line, Raw: o.Raw}
		loc := fmt.Sprintf("%s:%d", o.Path, o.Line)
		if o.Path == "" {
			loc = fmt.Sprintf("-:%d", o.Line)
		}
		switch {
		case o.Err != nil:
			rec.Error = o.Err.Error()
			lines = append(lines, fmt.Sprintf("%s\t%s\terror: %v", loc, o.Raw, o.Err))
		case o.Stamp != nil:
			id := o.ID
			rec.ID = &id
			rec.Stamp = o.Stamp
			lines = append(lines, fmt.Sprintf("%s\t%s", loc, o.Stamp))
		default:
			id := o.ID
			rec.ID = &id
			lines = append(lines, fmt.Sprintf("%s\t%s", loc, o.ID))
		}
		records = append(records, rec)
	}
	return render(cmd.OutOrStdout(), cfg.Format, records, lines)
}

// recordOccurrences stores occs in the index as a single run.
func recordOccurrences(cmd *cobra.Command, occs []types.Occurrence) error {
	ctx := cmd.Context()

	store, err := index.NewStore(cfg.Index)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.BeginRun(ctx)
	if err != nil {
		return err
	}
	summary, err := store.Record(ctx, runID, occs)
	if err != nil {
		return err
	}
	if err := store.FinishRun(ctx, runID, summary); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Indexed %d occurrence(s) in run %s (%d unparsable skipped)\n",
		summary.Recorded, runID, summary.Failed)
	return nil
}
