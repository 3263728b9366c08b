// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Parse failure kinds. Parsers wrap these with the offending token; test
// for a kind with errors.Is.
var (
	// ErrInvalidFormat: the text matches neither identifier scheme.
	ErrInvalidFormat = errors.New("invalid identifier format")

	// ErrInvalidMonth: a month outside 1-12 or an unrecognized month name.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDay: a day that does not exist in its month and year.
	ErrInvalidDay = errors.New("invalid day")

	// ErrInvalidYear: a date year that is not four decimal digits.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidVersion: a v suffix that is not a positive integer.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrUnknownCategory: a category token outside the arXiv vocabulary.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrMissingIdentifier: stamp text with no parseable identifier.
	ErrMissingIdentifier = errors.New("missing identifier")

	// ErrMissingCategory: stamp text with no bracketed category after the identifier.
	ErrMissingCategory = errors.New("missing category")

	// ErrInvalidDate: a date expression that is not "D Month YYYY".
	ErrInvalidDate = errors.New("invalid date expression")
)
