package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notBooked(string) bool { return false }

func TestSelectDay_RangeFlow(t *testing.T) {
	s := NewSelector()
	s.Activate("prop-1", time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, s.SelectDay("2026-03-10", notBooked))
	assert.Equal(t, SelectionAnchor, s.State())
	assert.Equal(t, []string{"2026-03-10"}, s.Selection())

	require.NoError(t, s.SelectDay("2026-03-15", notBooked))
	assert.Equal(t, SelectionRange, s.State())
	assert.Equal(t, []string{
		"2026-03-10", "2026-03-11", "2026-03-12",
		"2026-03-13", "2026-03-14", "2026-03-15",
	}, s.Selection())
}

func TestSelectDay_SecondPickEarlierSwaps(t *testing.T) {
	s := NewSelector()
	s.Activate("prop-1", time.Now())

	require.NoError(t, s.SelectDay("2026-03-15", notBooked))
	require.NoError(t, s.SelectDay("2026-03-12", notBooked))

	assert.Equal(t, SelectionRange, s.State())
	assert.Equal(t, []string{"2026-03-12", "2026-03-13", "2026-03-14", "2026-03-15"}, s.Selection())
}

func TestSelectDay_SameDayTwiceIsOneDayRange(t *testing.T) {
	s := NewSelector()
	s.Activate("prop-1", time.Now())

	require.NoError(t, s.SelectDay("2026-03-10", notBooked))
	require.NoError(t, s.SelectDay("2026-03-10", notBooked))

	assert.Equal(t, SelectionRange, s.State())
	assert.Equal(t, []string{"2026-03-10"}, s.Selection())
}

func TestSelectDay_PickAfterRangeStartsOver(t *testing.T) {
	s := NewSelector()
	s.Activate("prop-1", time.Now())

	require.NoError(t, s.SelectDay("2026-03-10", notBooked))
	require.NoError(t, s.SelectDay("2026-03-12", notBooked))
	require.NoError(t, s.SelectDay("2026-03-20", notBooked))

	assert.Equal(t, SelectionAnchor, s.State())
	assert.Equal(t, []string{"2026-03-20"}, s.Selection())
}

func TestSelectDay_BookedDayRejectedStateUnchanged(t *testing.T) {
	s := NewSelector()
	s.Activate("prop-1", time.Now())

	require.NoError(t, s.SelectDay("2026-03-10", notBooked))

	err := s.SelectDay("2026-03-12", func(day string) bool { return day == "2026-03-12" })
	assert.ErrorIs(t, err, ErrDayBooked)
	assert.Equal(t, SelectionAnchor, s.State())
	assert.Equal(t, []string{"2026-03-10"}, s.Selection())
}

func TestSelectDay_InvalidDay(t *testing.T) {
	s := NewSelector()
	s.Activate("prop-1", time.Now())

	for _, day := range []string{"", "12.03.2026", "2026-3-10", "not-a-day"} {
		err := s.SelectDay(day, notBooked)
		assert.ErrorIs(t, err, ErrInvalidDay, "day %q", day)
	}
	assert.Equal(t, SelectionEmpty, s.State())
}

func TestReset_Idempotent(t *testing.T) {
	s := NewSelector()
	s.Activate("prop-1", time.Now())

	require.NoError(t, s.SelectDay("2026-03-10", notBooked))
	s.Reset()
	assert.Equal(t, SelectionEmpty, s.State())
	assert.Nil(t, s.Selection())

	s.Reset()
	assert.Equal(t, SelectionEmpty, s.State())
}

func TestActivate_DiscardsSelectionEvenForSameProperty(t *testing.T) {
	s := NewSelector()
	s.Activate("prop-1", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, s.SelectDay("2026-03-10", notBooked))

	s.Activate("prop-1", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, SelectionEmpty, s.State())

	year, month := s.Cursor()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.April, month)
}

func TestMonthNavigation_CrossesYearBoundaries(t *testing.T) {
	s := NewSelector()
	s.Activate("prop-1", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC))

	s.PrevMonth()
	year, month := s.Cursor()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.December, month)

	s.NextMonth()
	s.NextMonth()
	year, month = s.Cursor()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.February, month)
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantLead  int
		wantDays  int
		wantWeeks int
	}{
		// 1 Mar 2026 is a Sunday: no leading padding.
		{"march 2026 starts sunday", 2026, time.March, 0, 31, 5},
		// 1 Feb 2026 is a Sunday, 28 days: exactly 4 full weeks.
		{"february 2026 exact weeks", 2026, time.February, 0, 28, 4},
		// 1 May 2026 is a Friday.
		{"may 2026 starts friday", 2026, time.May, 5, 31, 6},
		// Leap February.
		{"february 2024 leap", 2024, time.February, 4, 29, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector()
			s.Activate("prop-1", time.Date(tt.year, tt.month, 1, 0, 0, 0, 0, time.UTC))

			weeks := s.MonthGrid()
			require.Len(t, weeks, tt.wantWeeks)

			var cells []int
			for i, week := range weeks {
				require.LessOrEqual(t, len(week), 7)
				if i < len(weeks)-1 {
					require.Len(t, week, 7)
				}
				cells = append(cells, week...)
			}

			for i := 0; i < tt.wantLead; i++ {
				assert.Equal(t, 0, cells[i], "cell %d should pad", i)
			}
			for d := 1; d <= tt.wantDays; d++ {
				assert.Equal(t, d, cells[tt.wantLead+d-1])
			}
			assert.Len(t, cells, tt.wantLead+tt.wantDays)
		})
	}
}
