package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, start, end time.Time) Interval {
	t.Helper()
	iv, err := NewInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestNewInterval_Valid(t *testing.T) {
	iv, err := NewInterval(day(2024, 1, 1), day(2024, 1, 5))

	require.NoError(t, err)
	assert.Equal(t, 4, iv.DurationDays())
}

func TestNewInterval_NormalizesToDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)

	iv, err := NewInterval(start, end)

	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 1), iv.Start)
	assert.Equal(t, day(2024, 1, 3), iv.End)
	assert.Equal(t, 2, iv.DurationDays())
}

func TestNewInterval_StartAfterEnd(t *testing.T) {
	_, err := NewInterval(day(2024, 1, 5), day(2024, 1, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewInterval_ZeroDuration(t *testing.T) {
	_, err := NewInterval(day(2024, 1, 1), day(2024, 1, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewInterval_SubDayDuration(t *testing.T) {
	// после нормализации к дате остаётся нулевая длительность
	_, err := NewInterval(
		time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestInterval_Overlaps(t *testing.T) {
	a := mustInterval(t, day(2024, 1, 1), day(2024, 1, 5))
	b := mustInterval(t, day(2024, 1, 3), day(2024, 1, 6))

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestInterval_Overlaps_Contained(t *testing.T) {
	outer := mustInterval(t, day(2024, 1, 1), day(2024, 1, 10))
	inner := mustInterval(t, day(2024, 1, 3), day(2024, 1, 5))

	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestInterval_Overlaps_AdjacentDoesNot(t *testing.T) {
	a := mustInterval(t, day(2024, 1, 1), day(2024, 1, 5))
	b := mustInterval(t, day(2024, 1, 5), day(2024, 1, 8))

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestInterval_Overlaps_Disjoint(t *testing.T) {
	a := mustInterval(t, day(2024, 1, 1), day(2024, 1, 3))
	b := mustInterval(t, day(2024, 1, 7), day(2024, 1, 9))

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestInterval_OverlapsRange(t *testing.T) {
	a := mustInterval(t, day(2024, 1, 1), day(2024, 1, 5))

	assert.True(t, a.OverlapsRange(day(2024, 1, 4), day(2024, 1, 6)))
	assert.False(t, a.OverlapsRange(day(2024, 1, 5), day(2024, 1, 6)))
}
