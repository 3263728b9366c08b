// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records shared by the arxiv-stamp parsers,
// scanner, index and CLI.
//
// ArxivID and Stamp are value types built only by the parsers in
// internal/identifier and internal/stamp. They hold no references into the
// text they were parsed from.
package types

import (
	"fmt"
	"strings"
)

// Scheme identifies which of the two arXiv identifier grammars an ID uses.
type Scheme string

const (
	// SchemeOld is archive/YYMMNNN, used up to March 2007.
	SchemeOld Scheme = "old"

	// SchemeNew is YYMM.NNNNN, used since 1 April 2007.
	SchemeNew Scheme = "new"
)

// ArxivID is a normalized arXiv identifier.
type ArxivID struct {
	// Scheme is the grammar the identifier was written in.
	Scheme Scheme `json:"scheme" yaml:"scheme"`

	// Archive is the old-scheme prefix (e.g. "hep-th", "math.CO").
	// Empty for new-scheme identifiers.
	Archive string `json:"archive,omitempty" yaml:"archive,omitempty"`

	// Year is the four-digit year, always 2000 + YY.
	Year int `json:"year" yaml:"year"`

	// Month is the submission month, 1-12.
	Month int `json:"month" yaml:"month"`

	// Number is the sequence number exactly as written, leading zeros kept.
	Number string `json:"number" yaml:"number"`

	// Version is the vN suffix. Zero means no suffix (latest version).
	Version int `json:"version,omitempty" yaml:"version,omitempty"`
}

// IsLatest reports whether the identifier carries no version suffix.
func (id ArxivID) IsLatest() bool {
	return id.Version == 0
}

// WithVersion returns a copy of id pinned to version v. A v of zero
// yields the unversioned identifier.
func (id ArxivID) WithVersion(v int) ArxivID {
	id.Version = v
	return id
}

// Bare returns the identifier without the "arXiv:" marker and without a
// version suffix (e.g. "0706.0001", "hep-th/9901001").
func (id ArxivID) Bare() string {
	yymm := fmt.Sprintf("%02d%02d", id.Year%100, id.Month)
	if id.Scheme == SchemeOld {
		return id.Archive + "/" + yymm + id.Number
	}
	return yymm + "." + id.Number
}

// String returns the canonical form, e.g. "arXiv:0706.0001v1" or
// "arXiv:hep-th/9901001". Parsing it yields an identical record.
func (id ArxivID) String() string {
	var b strings.Builder
	b.WriteString("arXiv:")
	b.WriteString(id.Bare())
	if id.Version > 0 {
		fmt.Fprintf(&b, "v%d", id.Version)
	}
	return b.String()
}

// versioned returns Bare plus the version suffix, if any.
func (id ArxivID) versioned() string {
	if id.Version > 0 {
		return fmt.Sprintf("%sv%d", id.Bare(), id.Version)
	}
	return id.Bare()
}

// AbstractURL returns the arxiv.org abstract page URL for the identifier.
func (id ArxivID) AbstractURL() string {
	return "https://arxiv.org/abs/" + id.versioned()
}

// PDFURL returns the arxiv.org PDF URL for the identifier.
func (id ArxivID) PDFURL() string {
	return "https://arxiv.org/pdf/" + id.versioned()
}
