// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package identifier parses arXiv identifiers in both historical schemes:
//
//	new (since April 2007): YYMM.NNNN or YYMM.NNNNN, e.g. 0706.0001v1
//	old (up to March 2007): archive/YYMMNNN, e.g. hep-th/9901001
//
// Parse accepts exactly one identifier, optionally prefixed by "arXiv:".
// Locate and LocateAll find identifier-shaped spans inside longer text for
// callers that scan prose.
package identifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/arxiv-stamp/internal/category"
	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

const prefix = "arxiv:"

// minNewSchemeYear is the year the YYMM.NNNNN scheme replaced archive/YYMMNNN.
const minNewSchemeYear = 2007

var (
	// newPattern captures YY, MM, the sequence number and any v suffix.
	newPattern = regexp.MustCompile(`^(\d{2})(\d{2})\.(\d{4,5})(v.*)?$`)

	// oldPattern captures the archive (with optional subject class), YY,
	// MM, the three-digit sequence number and any v suffix.
	oldPattern = regexp.MustCompile(`^([A-Za-z]+(?:-[A-Za-z]+)*(?:\.[A-Za-z]+(?:-[A-Za-z]+)*)?)/(\d{2})(\d{2})(\d{3})(v.*)?$`)
)

// Parse validates text as a single arXiv identifier. Surrounding
// whitespace and a leading "arXiv:" marker (any case) are ignored; the
// marker must be directly followed by the identifier.
//
// Errors wrap types.ErrInvalidFormat, types.ErrInvalidMonth,
// types.ErrInvalidVersion, types.ErrInvalidYear for a new-scheme year
// before 2007 or, for an old-scheme archive outside the vocabulary,
// types.ErrUnknownCategory.
func Parse(text string) (types.ArxivID, error) {
	s := strings.TrimSpace(text)
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		s = s[len(prefix):]
	}

	if m := newPattern.FindStringSubmatch(s); m != nil {
		return build(types.SchemeNew, "", m[1], m[2], m[3], m[4])
	}
	if m := oldPattern.FindStringSubmatch(s); m != nil {
		if !category.IsValid(m[1]) {
			return types.ArxivID{}, fmt.Errorf("%w: archive %q in %q", types.ErrUnknownCategory, m[1], text)
		}
		return build(types.SchemeOld, m[1], m[2], m[3], m[4], m[5])
	}
	return types.ArxivID{}, fmt.Errorf("%w: %q is neither YYMM.NNNNN nor archive/YYMMNNN", types.ErrInvalidFormat, text)
}

// build range-checks the captured components. yy and mm are always two
// digits by construction of the patterns.
func build(scheme types.Scheme, archive, yy, mm, number, suffix string) (types.ArxivID, error) {
	month, _ := strconv.Atoi(mm)
	if month < 1 || month > 12 {
		return types.ArxivID{}, fmt.Errorf("%w: %q is outside 01-12", types.ErrInvalidMonth, mm)
	}
	year, _ := strconv.Atoi(yy)
	year = ExpandYear(year)
	if scheme == types.SchemeNew && year < minNewSchemeYear {
		return types.ArxivID{}, fmt.Errorf("%w: %d predates YYMM.NNNNN identifiers (%d)", types.ErrInvalidYear, year, minNewSchemeYear)
	}

	version, err := parseVersion(suffix)
	if err != nil {
		return types.ArxivID{}, err
	}

	return types.ArxivID{
		Scheme:  scheme,
		Archive: archive,
		Year:    year,
		Month:   month,
		Number:  number,
		Version: version,
	}, nil
}

// ExpandYear maps a two-digit identifier year to 2000+yy. There is no
// century pivot: "99" is 2099, not 1999. Parse additionally rejects
// new-scheme years before 2007.
func ExpandYear(yy int) int {
	return 2000 + yy
}

// parseVersion parses an optional "vN" suffix. An empty suffix is version 0.
func parseVersion(suffix string) (int, error) {
	if suffix == "" {
		return 0, nil
	}
	digits := strings.TrimPrefix(suffix, "v")
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q is not vN", types.ErrInvalidVersion, suffix)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q must be a positive integer", types.ErrInvalidVersion, suffix)
	}
	return n, nil
}
