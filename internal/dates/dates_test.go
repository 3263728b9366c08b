// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year string
		want             types.Date
		wantErr          error
	}{
		{"abbreviated month", "1", "Jun", "2007", types.Date{Year: 2007, Month: time.June, Day: 1}, nil},
		{"full month lower case", "15", "january", "2000", types.Date{Year: 2000, Month: time.January, Day: 15}, nil},
		{"upper case", "3", "SEPT", "2019", types.Date{Year: 2019, Month: time.September, Day: 3}, nil},
		{"numeric month", "31", "12", "1999", types.Date{Year: 1999, Month: time.December, Day: 31}, nil},
		{"zero padded", "01", "06", "2007", types.Date{Year: 2007, Month: time.June, Day: 1}, nil},
		{"leap day", "29", "Feb", "2008", types.Date{Year: 2008, Month: time.February, Day: 29}, nil},
		{"leap day 2000", "29", "Feb", "2000", types.Date{Year: 2000, Month: time.February, Day: 29}, nil},

		{"feb 30", "30", "Feb", "2007", types.Date{}, types.ErrInvalidDay},
		{"feb 29 non leap", "29", "Feb", "2007", types.Date{}, types.ErrInvalidDay},
		{"feb 29 1900", "29", "Feb", "1900", types.Date{}, types.ErrInvalidDay},
		{"april 31", "31", "Apr", "2010", types.Date{}, types.ErrInvalidDay},
		{"day 0", "0", "Jan", "2010", types.Date{}, types.ErrInvalidDay},
		{"day 32", "32", "Jan", "2000", types.Date{}, types.ErrInvalidDay},
		{"day not numeric", "first", "Jan", "2000", types.Date{}, types.ErrInvalidDay},
		{"signed day", "+1", "Jan", "2000", types.Date{}, types.ErrInvalidDay},

		{"unknown month name", "1", "Zan", "2000", types.Date{}, types.ErrInvalidMonth},
		{"month 13", "1", "13", "2000", types.Date{}, types.ErrInvalidMonth},
		{"month 0", "1", "0", "2000", types.Date{}, types.ErrInvalidMonth},
		{"month with period", "1", "Jun.", "2000", types.Date{}, types.ErrInvalidMonth},

		{"three digit year", "1", "Jan", "200", types.Date{}, types.ErrInvalidYear},
		{"two digit year", "1", "Jan", "07", types.Date{}, types.ErrInvalidYear},
		{"non numeric year", "1", "Jan", "20o7", types.Date{}, types.ErrInvalidYear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.day, tt.month, tt.year)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q, %q, %q) error = %v, want %v", tt.day, tt.month, tt.year, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q, %q, %q) unexpected error: %v", tt.day, tt.month, tt.year, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, %q, %q) = %v, want %v", tt.day, tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestIsLeap(t *testing.T) {
	for year, want := range map[int]bool{1900: false, 2000: true, 2004: true, 2007: false, 2100: false, 2400: true} {
		if got := IsLeap(year); got != want {
			t.Errorf("IsLeap(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.January, 2007, 31},
		{time.February, 2007, 28},
		{time.February, 2008, 29},
		{time.April, 2007, 30},
		{time.December, 2007, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.month, tt.year); got != tt.want {
			t.Errorf("DaysIn(%v, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}
