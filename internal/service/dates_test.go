package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDateRange_ReturnsEveryNight(t *testing.T) {
	checkIn := toDay(time.Now()).AddDate(0, 0, 7)
	checkOut := checkIn.AddDate(0, 0, 4)

	nights, err := ExpandDateRange(checkIn, checkOut)

	require.NoError(t, err)
	require.Len(t, nights, 4)
	assert.Equal(t, checkIn, nights[0])
	for i := 1; i < len(nights); i++ {
		assert.Equal(t, nights[i-1].AddDate(0, 0, 1), nights[i], "nights must be consecutive and ascending")
	}
	// check-out itself is not an occupied night
	assert.Equal(t, checkOut.AddDate(0, 0, -1), nights[len(nights)-1])
}

func TestExpandDateRange_SingleNight(t *testing.T) {
	checkIn := toDay(time.Now()).AddDate(0, 0, 1)

	nights, err := ExpandDateRange(checkIn, checkIn.AddDate(0, 0, 1))

	require.NoError(t, err)
	require.Len(t, nights, 1)
	assert.Equal(t, checkIn, nights[0])
}

func TestExpandDateRange_CheckInToday(t *testing.T) {
	today := toDay(time.Now())

	nights, err := ExpandDateRange(today, today.AddDate(0, 0, 2))

	require.NoError(t, err)
	assert.Len(t, nights, 2)
}

func TestExpandDateRange_CheckInPast(t *testing.T) {
	yesterday := toDay(time.Now()).AddDate(0, 0, -1)

	nights, err := ExpandDateRange(yesterday, yesterday.AddDate(0, 0, 3))

	assert.ErrorIs(t, err, ErrCheckInPast)
	assert.Nil(t, nights, "no partial output on failure")
}

func TestExpandDateRange_EmptyRange(t *testing.T) {
	checkIn := toDay(time.Now()).AddDate(0, 0, 5)

	nights, err := ExpandDateRange(checkIn, checkIn)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, nights)
}

func TestExpandDateRange_InvertedRange(t *testing.T) {
	checkIn := toDay(time.Now()).AddDate(0, 0, 5)

	nights, err := ExpandDateRange(checkIn, checkIn.AddDate(0, 0, -2))

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, nights)
}

func TestExpandDateRange_Deterministic(t *testing.T) {
	checkIn := toDay(time.Now()).AddDate(0, 0, 3)
	checkOut := checkIn.AddDate(0, 0, 10)

	first, err := ExpandDateRange(checkIn, checkOut)
	require.NoError(t, err)
	second, err := ExpandDateRange(checkIn, checkOut)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpandDateRange_NormalizesTimeOfDay(t *testing.T) {
	day := toDay(time.Now()).AddDate(0, 0, 2)
	checkIn := day.Add(15 * time.Hour)
	checkOut := day.AddDate(0, 0, 2).Add(9 * time.Hour)

	nights, err := ExpandDateRange(checkIn, checkOut)

	require.NoError(t, err)
	require.Len(t, nights, 2)
	assert.Equal(t, day, nights[0])
}

func TestNightsWithin_InclusiveOfLastNight(t *testing.T) {
	first := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 0, 2)

	nights := nightsWithin(first, last)

	require.Len(t, nights, 3)
	assert.Equal(t, first, nights[0])
	assert.Equal(t, last, nights[2])
}

func TestNightsWithin_PastDatesAllowed(t *testing.T) {
	first := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	nights := nightsWithin(first, first)

	assert.Len(t, nights, 1)
}
