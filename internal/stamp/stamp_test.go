// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stamp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Stamp
	}{
		{
			name:  "new scheme",
			input: "arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007",
			want: types.Stamp{
				ID:        types.ArxivID{Scheme: types.SchemeNew, Year: 2007, Month: 6, Number: "0001", Version: 1},
				Category:  "q-bio.CB",
				Submitted: types.Date{Year: 2007, Month: time.June, Day: 1},
			},
		},
		{
			name:  "unversioned",
			input: "arXiv:2001.00001 [cs.LG] 1 Jan 2000",
			want: types.Stamp{
				ID:        types.ArxivID{Scheme: types.SchemeNew, Year: 2020, Month: 1, Number: "00001"},
				Category:  "cs.LG",
				Submitted: types.Date{Year: 2000, Month: time.January, Day: 1},
			},
		},
		{
			name:  "old scheme with bare archive",
			input: "arXiv:hep-th/9901001v3  [hep-th]   12 January 1999",
			want: types.Stamp{
				ID:        types.ArxivID{Scheme: types.SchemeOld, Archive: "hep-th", Year: 2099, Month: 1, Number: "001", Version: 3},
				Category:  "hep-th",
				Submitted: types.Date{Year: 1999, Month: time.January, Day: 12},
			},
		},
		{
			name:  "preceded by prose",
			input: "Downloaded from arXiv:1706.03762v5 [cs.CL] 6 Dec 2017",
			want: types.Stamp{
				ID:        types.ArxivID{Scheme: types.SchemeNew, Year: 2017, Month: 6, Number: "03762", Version: 5},
				Category:  "cs.CL",
				Submitted: types.Date{Year: 2017, Month: time.December, Day: 6},
			},
		},
		{
			name:  "components on separate lines",
			input: "arXiv:1706.03762v5\n[cs.CL]\n6 Dec 2017\nAttention Is All You Need",
			want: types.Stamp{
				ID:        types.ArxivID{Scheme: types.SchemeNew, Year: 2017, Month: 6, Number: "03762", Version: 5},
				Category:  "cs.CL",
				Submitted: types.Date{Year: 2017, Month: time.December, Day: 6},
			},
		},
		{
			name:  "tabs and trailing whitespace",
			input: "\tarXiv:1401.7878\t[math.CO]\t29 Feb 2012 \r\n",
			want: types.Stamp{
				ID:        types.ArxivID{Scheme: types.SchemeNew, Year: 2014, Month: 1, Number: "7878"},
				Category:  "math.CO",
				Submitted: types.Date{Year: 2012, Month: time.February, Day: 29},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr []error
	}{
		{"empty", "", []error{types.ErrMissingIdentifier}},
		{"no identifier", "[cs.LG] 1 Jan 2000", []error{types.ErrMissingIdentifier}},
		{"invalid identifier month", "arXiv:9913.12345 [cs.LG] 1 Jan 2000", []error{types.ErrMissingIdentifier, types.ErrInvalidMonth}},
		{"invalid identifier version", "arXiv:0706.0001v0 [cs.LG] 1 Jan 2000", []error{types.ErrMissingIdentifier, types.ErrInvalidVersion}},
		{"identifier before 2007", "arXiv:0001.0001v1 [cs.LG] 1 Jan 2000", []error{types.ErrMissingIdentifier, types.ErrInvalidYear}},
		{"identifier only", "arXiv:2001.00001", []error{types.ErrMissingCategory}},
		{"category missing", "arXiv:2001.00001 1 Jan 2000", []error{types.ErrMissingCategory}},
		{"unterminated bracket", "arXiv:2001.00001 [cs.LG 1 Jan 2000", []error{types.ErrMissingCategory}},
		{"prose before category", "arXiv:2001.00001 see [cs.LG] 1 Jan 2000", []error{types.ErrMissingCategory}},
		{"unknown category", "arXiv:9912.12345v2 [bogus.cat] 1 Jun 2007", []error{types.ErrUnknownCategory}},
		{"category wrong case", "arXiv:2001.00001 [CS.LG] 1 Jan 2000", []error{types.ErrUnknownCategory}},
		{"empty category", "arXiv:2001.00001 [] 1 Jan 2000", []error{types.ErrUnknownCategory}},
		{"feb 30", "arXiv:0706.0001v1 [q-bio.CB] 30 Feb 2007", []error{types.ErrInvalidDay}},
		{"day 32", "arXiv:2001.00001 [cs.LG] 32 Jan 2000", []error{types.ErrInvalidDay}},
		{"unknown month", "arXiv:2001.00001 [cs.LG] 1 Zan 2000", []error{types.ErrInvalidMonth}},
		{"short year", "arXiv:2001.00001 [cs.LG] 1 Jan 200", []error{types.ErrInvalidYear}},
		{"no date", "arXiv:2001.00001 [cs.LG]", []error{types.ErrInvalidDate}},
		{"date on later line", "arXiv:2001.00001 [cs.LG] 1 Jan\n2000", []error{types.ErrInvalidDate}},
		{"trailing text", "arXiv:2001.00001 [cs.LG] 1 Jan 2000 extra", []error{types.ErrInvalidDate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.True(t, errors.Is(err, want), "Parse(%q) error %v does not match %v", tt.input, err, want)
			}
		})
	}
}

func TestParseNoRescan(t *testing.T) {
	// The first identifier is malformed; a valid stamp later in the text
	// must not be picked up instead.
	_, err := Parse("arXiv:9913.00001 [cs.LG] 1 Jan 2000 arXiv:2001.00001 [cs.LG] 1 Jan 2000")
	assert.ErrorIs(t, err, types.ErrMissingIdentifier)
	assert.ErrorIs(t, err, types.ErrInvalidMonth)
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007",
		"arXiv:hep-th/9901001 [hep-th] 3 Sept 1999",
		"arXiv:1401.00008v12 [cond-mat.str-el] 31 December 2014",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input)
			require.NoError(t, err)
			second, err := Parse(first.String())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}
