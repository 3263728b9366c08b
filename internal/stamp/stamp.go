// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stamp parses arXiv stamps, the identifier + category + date line
// arXiv prints in the margin of every PDF:
//
//	arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007
//
// The identifier may be preceded by arbitrary text. After it, only
// whitespace may separate the bracketed category and the date, and the date
// must end the line. Parsing is first-match: a failure at any step is
// returned without looking further into the text.
package stamp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/arxiv-stamp/internal/category"
	"github.com/pdiddy/arxiv-stamp/internal/dates"
	"github.com/pdiddy/arxiv-stamp/internal/identifier"
	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

// Parse locates and validates one stamp in text.
//
// A text without an identifier fails with types.ErrMissingIdentifier; a
// malformed identifier fails with the same kind wrapping the identifier
// error, so errors.Is matches both. Category failures are
// types.ErrMissingCategory or types.ErrUnknownCategory; date failures are
// types.ErrInvalidDate or whatever the date resolver reports.
func Parse(text string) (types.Stamp, error) {
	m, ok := identifier.Locate(text)
	if !ok {
		return types.Stamp{}, fmt.Errorf("%w: no arXiv identifier in %q", types.ErrMissingIdentifier, text)
	}
	id, err := identifier.Parse(m.Text)
	if err != nil {
		return types.Stamp{}, fmt.Errorf("%w: %w", types.ErrMissingIdentifier, err)
	}

	cat, rest, err := parseCategory(text[m.End:])
	if err != nil {
		return types.Stamp{}, err
	}

	submitted, err := parseDate(rest)
	if err != nil {
		return types.Stamp{}, err
	}

	return types.Stamp{ID: id, Category: cat, Submitted: submitted}, nil
}

// parseCategory expects "[token]" after optional whitespace and returns the
// token and the text after the closing bracket.
func parseCategory(s string) (string, string, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if !strings.HasPrefix(s, "[") {
		return "", "", fmt.Errorf("%w: expected [category] after identifier", types.ErrMissingCategory)
	}
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return "", "", fmt.Errorf("%w: unterminated bracket in %q", types.ErrMissingCategory, s)
	}
	token := s[1:end]
	if !category.IsValid(token) {
		return "", "", fmt.Errorf("%w: %q", types.ErrUnknownCategory, token)
	}
	return token, s[end+1:], nil
}

// parseDate reads "D Month YYYY" from the first non-blank line of s.
func parseDate(s string) (types.Date, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return types.Date{}, fmt.Errorf("%w: want \"D Month YYYY\", got %q", types.ErrInvalidDate, strings.TrimSpace(s))
	}
	return dates.Resolve(fields[0], fields[1], fields[2])
}
