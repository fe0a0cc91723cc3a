package publication

import (
	"testing"

	"shelf/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	t.Run("fiction", func(t *testing.T) {
		r, err := ParseRecord("F Asimov, Foundation, 1951")
		require.NoError(t, err)
		assert.Equal(t, Fiction, r.Kind)
		assert.Equal(t, "Asimov", r.Author)
		assert.Equal(t, "Foundation", r.Title)
		assert.Equal(t, 1951, r.Year)
		assert.Equal(t, FictionCopies, r.Copies())
	})

	t.Run("children", func(t *testing.T) {
		r, err := ParseRecord("C Dr. Seuss, Green Eggs and Ham, 1960")
		require.NoError(t, err)
		assert.Equal(t, Children, r.Kind)
		assert.Equal(t, "Dr. Seuss", r.Author)
		assert.Equal(t, "Green Eggs and Ham", r.Title)
		assert.Equal(t, 1960, r.Year)
	})

	t.Run("periodical", func(t *testing.T) {
		r, err := ParseRecord("P Communications of the ACM, 5 2023")
		require.NoError(t, err)
		assert.Equal(t, Periodical, r.Kind)
		assert.Empty(t, r.Author)
		assert.Equal(t, "Communications of the ACM", r.Title)
		assert.Equal(t, 5, r.Month)
		assert.Equal(t, 2023, r.Year)
		assert.Equal(t, PeriodicalCopies, r.Copies())
	})

	t.Run("rejects bad lines", func(t *testing.T) {
		for _, line := range []string{
			"",
			"Z Some, Thing, 2000",
			"F Asimov, Foundation",
			"F Asimov, Foundation, soon",
			"C , Title, 2000",
			"P Time",
			"P Time, May 2020",
		} {
			_, err := ParseRecord(line)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput, line)
		}
	})

	t.Run("unknown type message", func(t *testing.T) {
		_, err := ParseRecord("Z Some, Thing, 2000")
		assert.Equal(t, "'Z' is not a valid publication type", apperr.Reason(err))
	})
}

func TestLookupKey(t *testing.T) {
	t.Run("fiction fields match catalog layout", func(t *testing.T) {
		key, err := LookupKey(Fiction, "Asimov, Foundation,")
		require.NoError(t, err)
		assert.Zero(t, CompareFiction(key, NewFiction("Asimov", "Foundation", 1951)))
	})

	t.Run("children fields are title first", func(t *testing.T) {
		key, err := LookupKey(Children, "Green Eggs and Ham, Dr. Seuss,")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Seuss", key.Author)
		assert.Equal(t, "Green Eggs and Ham", key.Title)
		assert.Zero(t, CompareChildren(key, NewChildren("Dr. Seuss", "Green Eggs and Ham", 1960)))
	})

	t.Run("periodical fields are year month title", func(t *testing.T) {
		key, err := LookupKey(Periodical, "2020 1 Time Magazine,")
		require.NoError(t, err)
		assert.Equal(t, "Time Magazine", key.Title)
		assert.Equal(t, 1, key.Month)
		assert.Equal(t, 2020, key.Year)
		assert.Zero(t, ComparePeriodical(key, NewPeriodical("Time Magazine", 1, 2020)))
	})

	t.Run("malformed", func(t *testing.T) {
		cases := []struct {
			c      Category
			fields string
		}{
			{Fiction, "Asimov"},
			{Children, ", Seuss,"},
			{Periodical, "2020 Time,"},
			{Periodical, "twenty one Time,"},
			{Periodical, "2020 1 ,"},
			{'X', "a, b,"},
		}
		for _, tc := range cases {
			_, err := LookupKey(tc.c, tc.fields)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput, tc.fields)
		}
	})
}

func TestTitleOf(t *testing.T) {
	assert.Equal(t, "Foundation", TitleOf(Fiction, "Asimov, Foundation,"))
	assert.Equal(t, "Green Eggs", TitleOf(Children, "Green Eggs, Seuss,"))
	assert.Equal(t, "Time", TitleOf(Periodical, "2020 1 Time,"))
	assert.Equal(t, "", TitleOf(Fiction, "Asimov"))
	assert.Equal(t, "", TitleOf(Periodical, "2020"))
}
