// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv recognizes and normalizes arXiv identifiers and stamps.
//
// ParseIdentifier accepts exactly one identifier in either historical
// scheme; ParseStamp scans a longer text for an identifier followed by a
// bracketed category and a submission date. Both are pure functions, safe
// for concurrent use, and never touch the network.
//
//	id, err := arxiv.ParseIdentifier("arXiv:0706.0001v1")
//	if errors.Is(err, arxiv.ErrInvalidMonth) {
//		...
//	}
//
//	st, err := arxiv.ParseStamp("arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007")
package arxiv

import (
	"github.com/pdiddy/arxiv-stamp/internal/category"
	"github.com/pdiddy/arxiv-stamp/internal/identifier"
	"github.com/pdiddy/arxiv-stamp/internal/stamp"
	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

type (
	// ID is a normalized arXiv identifier.
	ID = types.ArxivID

	// Stamp is an identifier with its subject category and submission date.
	Stamp = types.Stamp

	// Date is a calendar date.
	Date = types.Date
)

// Error kinds returned by the parsers; match them with errors.Is.
var (
	ErrInvalidFormat     = types.ErrInvalidFormat
	ErrInvalidMonth      = types.ErrInvalidMonth
	ErrInvalidDay        = types.ErrInvalidDay
	ErrInvalidYear       = types.ErrInvalidYear
	ErrInvalidVersion    = types.ErrInvalidVersion
	ErrUnknownCategory   = types.ErrUnknownCategory
	ErrMissingIdentifier = types.ErrMissingIdentifier
	ErrMissingCategory   = types.ErrMissingCategory
	ErrInvalidDate       = types.ErrInvalidDate
)

// ParseIdentifier parses text as a single identifier. Only surrounding
// whitespace and a leading "arXiv:" marker are tolerated.
func ParseIdentifier(text string) (ID, error) {
	return identifier.Parse(text)
}

// ParseStamp finds the first identifier in text and parses the stamp that
// starts there.
func ParseStamp(text string) (Stamp, error) {
	return stamp.Parse(text)
}

// IsValidCategory reports whether token is an arXiv subject category.
// The match is exact and case-sensitive.
func IsValidCategory(token string) bool {
	return category.IsValid(token)
}
