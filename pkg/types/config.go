// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how the CLI renders records.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Valid reports whether f is a known output format.
func (f OutputFormat) Valid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// ScanConfig holds settings for the scan stage.
type ScanConfig struct {
	// Extensions lists the file extensions scanned when walking a directory
	// (default .tex, .bib, .bbl, .txt). Files named explicitly are always scanned.
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// IndexConfig holds settings for the SQLite occurrence index.
type IndexConfig struct {
	// Path is the database file (default "arxiv-stamp.db").
	Path string `json:"path" yaml:"path"`
}

// Config groups all CLI configuration. It is decoded by viper from the
// config file, ARXIV_STAMP_* environment variables and flags.
type Config struct {
	Format OutputFormat `json:"format" yaml:"format"`
	Scan   ScanConfig   `json:"scan" yaml:"scan"`
	Index  IndexConfig  `json:"index" yaml:"index"`
}
