// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dates resolves the day, month and year tokens of a stamp date
// ("1 Jun 2007") into a validated calendar date.
//
// Months may be numeric or English names and abbreviations. Years must
// already be four digits; two-digit year expansion belongs to identifier
// parsing, not here.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

// monthNames maps lower-cased spellings to months. "sept", "june" and
// "july" appear on older arXiv stamps.
var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Resolve validates the three tokens and returns the date they name.
// Errors wrap types.ErrInvalidDay, types.ErrInvalidMonth or
// types.ErrInvalidYear.
func Resolve(day, month, year string) (types.Date, error) {
	y, err := parseYear(year)
	if err != nil {
		return types.Date{}, err
	}
	m, err := ParseMonth(month)
	if err != nil {
		return types.Date{}, err
	}
	d, ok := parseDigits(day)
	if !ok || d < 1 || d > 31 {
		return types.Date{}, fmt.Errorf("%w: %q is not a day of the month", types.ErrInvalidDay, day)
	}
	if d > DaysIn(m, y) {
		return types.Date{}, fmt.Errorf("%w: %s %d has %d days, got %d", types.ErrInvalidDay, m, y, DaysIn(m, y), d)
	}
	return types.Date{Year: y, Month: m, Day: d}, nil
}

// ParseMonth accepts a month number 1-12 or an English month name or
// abbreviation in any letter case.
func ParseMonth(tok string) (time.Month, error) {
	if n, ok := parseDigits(tok); ok {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: %q is outside 1-12", types.ErrInvalidMonth, tok)
		}
		return time.Month(n), nil
	}
	if m, ok := monthNames[strings.ToLower(tok)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: unrecognized month %q", types.ErrInvalidMonth, tok)
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month m of year.
func DaysIn(m time.Month, year int) int {
	switch m {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func parseYear(tok string) (int, error) {
	y, ok := parseDigits(tok)
	if !ok || len(tok) != 4 {
		return 0, fmt.Errorf("%w: %q is not a four-digit year", types.ErrInvalidYear, tok)
	}
	return y, nil
}

// parseDigits parses a non-empty run of ASCII digits. Signs, spaces and
// anything strconv would otherwise tolerate are rejected.
func parseDigits(tok string) (int, bool) {
	if tok == "" || len(tok) > 9 {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	return n, err == nil
}
