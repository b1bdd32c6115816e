package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRangeDays(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []string
	}{
		{"ascending", "2026-03-10", "2026-03-12", []string{"2026-03-10", "2026-03-11", "2026-03-12"}},
		{"reversed arguments", "2026-03-12", "2026-03-10", []string{"2026-03-10", "2026-03-11", "2026-03-12"}},
		{"single day", "2026-03-10", "2026-03-10", []string{"2026-03-10"}},
		{"month boundary", "2026-01-30", "2026-02-02", []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-02"}},
		{"leap february", "2024-02-28", "2024-03-01", []string{"2024-02-28", "2024-02-29", "2024-03-01"}},
		{"year boundary", "2025-12-31", "2026-01-01", []string{"2025-12-31", "2026-01-01"}},
		{"invalid start", "garbage", "2026-03-10", nil},
		{"invalid end", "2026-03-10", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangeDays(tt.a, tt.b))
		})
	}
}

func TestSortedUnique(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"unsorted with duplicates", []string{"2026-03-12", "2026-03-10", "2026-03-12"}, []string{"2026-03-10", "2026-03-12"}},
		{"already sorted", []string{"2026-03-10", "2026-03-11"}, []string{"2026-03-10", "2026-03-11"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortedUnique(tt.in))
		})
	}
}

func TestSortedUnique_DoesNotMutateInput(t *testing.T) {
	in := []string{"2026-03-12", "2026-03-10"}
	SortedUnique(in)
	assert.Equal(t, []string{"2026-03-12", "2026-03-10"}, in)
}

func TestHumanDay(t *testing.T) {
	assert.Equal(t, "2 January 2026", HumanDay("2026-01-02"))
	assert.Equal(t, "31 December 2025", HumanDay("2025-12-31"))
	assert.Equal(t, "garbage", HumanDay("garbage"))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, time.January))
	assert.Equal(t, 28, DaysInMonth(2026, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 30, DaysInMonth(2026, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestFirstWeekday(t *testing.T) {
	// 1 Mar 2026 is a Sunday, 1 May 2026 is a Friday.
	assert.Equal(t, 0, FirstWeekday(2026, time.March))
	assert.Equal(t, 5, FirstWeekday(2026, time.May))
}

func TestDayRoundTrip(t *testing.T) {
	day := Day(2026, time.March, 9)
	assert.Equal(t, "2026-03-09", day)

	parsed, err := ParseDay(day)
	assert.NoError(t, err)
	assert.Equal(t, day, FormatDay(parsed))
}

func TestToday(t *testing.T) {
	now := time.Date(2026, time.August, 28, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-28", Today(now))
}
