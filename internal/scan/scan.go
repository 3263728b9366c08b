// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan extracts arXiv identifier occurrences from text files such
// as .tex sources and .bib/.bbl bibliographies.
//
// Scanning is line-oriented. Every identifier-shaped span becomes one
// types.Occurrence: parsed when valid, carrying the parse error when not,
// and carrying the stamp when the span starts a complete stamp.
package scan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pdiddy/arxiv-stamp/internal/identifier"
	"github.com/pdiddy/arxiv-stamp/internal/stamp"
	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

// DefaultExtensions are scanned when walking directories and no
// extensions are configured.
var DefaultExtensions = []string{".tex", ".bib", ".bbl", ".txt"}

const maxLineSize = 1 << 20

// Line returns the occurrences in a single line of text.
func Line(path string, lineNo int, text string) []types.Occurrence {
	var occs []types.Occurrence
	for _, m := range identifier.LocateAll(text) {
		occ := types.Occurrence{Path: path, Line: lineNo, Raw: m.Text}
		id, err := identifier.Parse(m.Text)
		if err != nil {
			occ.Err = err
			occs = append(occs, occ)
			continue
		}
		occ.ID = id
		if st, err := stamp.Parse(text[m.Start:]); err == nil && st.ID == id {
			occ.Stamp = &st
		}
		occs = append(occs, occ)
	}
	return occs
}

// Reader scans r line by line. path is recorded on each occurrence.
func Reader(r io.Reader, path string) ([]types.Occurrence, error) {
	var occs []types.Occurrence
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		occs = append(occs, Line(path, lineNo, sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return occs, fmt.Errorf("reading %s: %w", displayName(path), err)
	}
	return occs, nil
}

// File scans a single file regardless of its extension.
func File(path string) ([]types.Occurrence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Reader(f, path)
}

// Paths scans each path. Files are scanned directly; directories are
// walked and only files whose extension is in exts are scanned (case
// insensitive). An empty exts means DefaultExtensions.
func Paths(ctx context.Context, paths []string, exts []string) ([]types.Occurrence, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	wanted := make([]string, len(exts))
	for i, e := range exts {
		wanted[i] = normalizeExt(e)
	}

	var occs []types.Occurrence
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return occs, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			found, err := File(root)
			occs = append(occs, found...)
			if err != nil {
				return occs, err
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !slices.Contains(wanted, strings.ToLower(filepath.Ext(path))) {
				return nil
			}
			found, err := File(path)
			occs = append(occs, found...)
			return err
		})
		if err != nil {
			return occs, fmt.Errorf("walking %s: %w", root, err)
		}
	}
	return occs, nil
}

// Unique returns the distinct identifiers among the parsed occurrences,
// without version, in first-seen order.
func Unique(occs []types.Occurrence) []types.ArxivID {
	seen := make(map[string]bool)
	var ids []types.ArxivID
	for _, occ := range occs {
		if occ.Err != nil {
			continue
		}
		bare := occ.ID.Bare()
		if seen[bare] {
			continue
		}
		seen[bare] = true
		ids = append(ids, occ.ID.WithVersion(0))
	}
	return ids
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func displayName(path string) string {
	if path == "" {
		return "input"
	}
	return path
}
