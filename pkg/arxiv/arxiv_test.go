// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-stamp/pkg/arxiv"
	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

func TestScenarios(t *testing.T) {
	t.Run("versioned identifier", func(t *testing.T) {
		id, err := arxiv.ParseIdentifier("arXiv:9912.12345v2")
		require.NoError(t, err)
		assert.Equal(t, 2099, id.Year)
		assert.Equal(t, 12, id.Month)
		assert.Equal(t, "12345", id.Number)
		assert.Equal(t, 2, id.Version)
	})

	t.Run("stamp", func(t *testing.T) {
		st, err := arxiv.ParseStamp("arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007")
		require.NoError(t, err)
		assert.Equal(t, arxiv.Stamp{
			ID:        arxiv.ID{Scheme: types.SchemeNew, Year: 2007, Month: 6, Number: "0001", Version: 1},
			Category:  "q-bio.CB",
			Submitted: arxiv.Date{Year: 2007, Month: time.June, Day: 1},
		}, st)
		assert.Equal(t, "2007-06-01", st.Submitted.String())
	})

	t.Run("empty identifier", func(t *testing.T) {
		_, err := arxiv.ParseIdentifier("")
		assert.ErrorIs(t, err, arxiv.ErrInvalidFormat)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := arxiv.ParseStamp("arXiv:9912.12345v2 [bogus.cat] 1 Jun 2007")
		assert.ErrorIs(t, err, arxiv.ErrUnknownCategory)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := arxiv.ParseIdentifier("arXiv:9913.12345")
		assert.ErrorIs(t, err, arxiv.ErrInvalidMonth)
	})

	t.Run("new scheme before 2007", func(t *testing.T) {
		_, err := arxiv.ParseIdentifier("0612.1234v1")
		assert.ErrorIs(t, err, arxiv.ErrInvalidYear)

		id, err := arxiv.ParseIdentifier("arXiv:0703.0001")
		require.NoError(t, err)
		assert.Equal(t, 2007, id.Year)
	})

	t.Run("invalid day", func(t *testing.T) {
		_, err := arxiv.ParseStamp("arXiv:0706.0001v1 [q-bio.CB] 30 Feb 2007")
		assert.ErrorIs(t, err, arxiv.ErrInvalidDay)
	})
}

func TestParseIdentifierRejectsProse(t *testing.T) {
	_, err := arxiv.ParseIdentifier("see arXiv:0706.0001")
	assert.ErrorIs(t, err, arxiv.ErrInvalidFormat)

	st, err := arxiv.ParseStamp("see arXiv:0706.0001 [q-bio.CB] 1 Jun 2007")
	require.NoError(t, err)
	assert.Equal(t, "0706.0001", st.ID.Bare())
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, arxiv.IsValidCategory("q-bio.CB"))
	assert.True(t, arxiv.IsValidCategory("astro-ph"))
	assert.False(t, arxiv.IsValidCategory("bogus.cat"))
}

func TestConcurrentParsing(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := arxiv.ParseStamp("arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
