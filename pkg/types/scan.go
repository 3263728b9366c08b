// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Occurrence is one identifier-shaped match found while scanning text.
// Exactly one of ID and Err is meaningful: Err is non-nil when the match
// failed to parse.
type Occurrence struct {
	// Path is the file the match came from (empty for standard input).
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Line is the 1-based line number of the match.
	Line int `json:"line" yaml:"line"`

	// Raw is the matched text as it appeared in the input.
	Raw string `json:"raw" yaml:"raw"`

	// ID is the parsed identifier.
	ID ArxivID `json:"id" yaml:"id"`

	// Stamp is set when the match begins a complete stamp.
	Stamp *Stamp `json:"stamp,omitempty" yaml:"stamp,omitempty"`

	// Err is the parse failure, if any.
	Err error `json:"-" yaml:"-"`
}

// IndexedPaper is the index's aggregate view of one version-less identifier.
type IndexedPaper struct {
	// ID is the identifier at the highest version seen (Version 0 when
	// only unversioned references were found).
	ID ArxivID `json:"id" yaml:"id"`

	// Category is the stamp category, if any occurrence carried a stamp.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Submitted is the stamp date, if any occurrence carried a stamp.
	Submitted *Date `json:"submitted,omitempty" yaml:"submitted,omitempty"`

	// Occurrences is how many times the identifier was recorded.
	Occurrences int `json:"occurrences" yaml:"occurrences"`
}

// IndexStats summarizes the contents of the index.
type IndexStats struct {
	Papers      int64 `json:"papers" yaml:"papers"`
	Stamped     int64 `json:"stamped" yaml:"stamped"`
	Occurrences int64 `json:"occurrences" yaml:"occurrences"`
	Runs        int64 `json:"runs" yaml:"runs"`
}
