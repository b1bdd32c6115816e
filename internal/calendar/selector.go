package calendar

import (
	"errors"
	"time"

	"staybook/pkg/dateutil"
)

// SelectionState tracks how far a date-range selection has progressed.
type SelectionState string

const (
	// SelectionEmpty means no day has been picked yet.
	SelectionEmpty SelectionState = "empty"
	// SelectionAnchor means one day is picked and the next pick closes
	// the range.
	SelectionAnchor SelectionState = "anchor"
	// SelectionRange means a complete range is held. The next pick
	// starts a fresh selection.
	SelectionRange SelectionState = "range"
)

var (
	ErrDayBooked   = errors.New("day is already booked")
	ErrInvalidDay  = errors.New("invalid day")
	ErrNoSelection = errors.New("nothing selected")
)

// Selector is the in-memory date-range picker for one property. It is
// transient by design: nothing here is persisted, and activating a
// different property discards the state wholesale.
//
// A range is anchored by the first picked day and closed by the second.
// Picks arrive in any order; an earlier second pick becomes the start.
// Only the picked day itself is checked against booked dates, so a
// range may span booked days in its interior. The commit path re-checks
// every day, which keeps that race harmless.
type Selector struct {
	propertyID  string
	cursorYear  int
	cursorMonth time.Month

	state  SelectionState
	anchor string
	end    string
}

func NewSelector() *Selector {
	return &Selector{state: SelectionEmpty}
}

// Activate binds the selector to a property and positions the month
// cursor at now. Any previous selection is discarded, even when the
// property is unchanged.
func (s *Selector) Activate(propertyID string, now time.Time) {
	s.propertyID = propertyID
	s.cursorYear = now.Year()
	s.cursorMonth = now.Month()
	s.Reset()
}

func (s *Selector) PropertyID() string {
	return s.propertyID
}

func (s *Selector) State() SelectionState {
	return s.state
}

// SelectDay advances the selection with one picked day. isBooked is
// consulted for the picked day only; a booked day is rejected and the
// selection is left untouched.
func (s *Selector) SelectDay(day string, isBooked func(day string) bool) error {
	if _, err := dateutil.ParseDay(day); err != nil {
		return ErrInvalidDay
	}
	if isBooked != nil && isBooked(day) {
		return ErrDayBooked
	}

	switch s.state {
	case SelectionAnchor:
		if day < s.anchor {
			s.end = s.anchor
			s.anchor = day
		} else {
			s.end = day
		}
		s.state = SelectionRange
	default:
		// Empty, or a held range being replaced.
		s.anchor = day
		s.end = ""
		s.state = SelectionAnchor
	}
	return nil
}

// Reset drops the current selection. Safe to call in any state.
func (s *Selector) Reset() {
	s.state = SelectionEmpty
	s.anchor = ""
	s.end = ""
}

// Selection lists the currently selected days in ascending order. An
// anchor alone counts as a one-day selection.
func (s *Selector) Selection() []string {
	switch s.state {
	case SelectionAnchor:
		return []string{s.anchor}
	case SelectionRange:
		return dateutil.RangeDays(s.anchor, s.end)
	default:
		return nil
	}
}

func (s *Selector) PrevMonth() {
	s.cursorYear, s.cursorMonth = shiftMonth(s.cursorYear, s.cursorMonth, -1)
}

func (s *Selector) NextMonth() {
	s.cursorYear, s.cursorMonth = shiftMonth(s.cursorYear, s.cursorMonth, 1)
}

func (s *Selector) Cursor() (int, time.Month) {
	return s.cursorYear, s.cursorMonth
}

func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// MonthGrid lays out the cursor month in calendar weeks. Each week has
// up to seven cells; a zero cell is padding before the 1st, which falls
// on its weekday with Sunday in the first column. The last week is not
// padded.
func (s *Selector) MonthGrid() [][]int {
	lead := dateutil.FirstWeekday(s.cursorYear, s.cursorMonth)
	total := dateutil.DaysInMonth(s.cursorYear, s.cursorMonth)

	cells := make([]int, 0, lead+total)
	for i := 0; i < lead; i++ {
		cells = append(cells, 0)
	}
	for d := 1; d <= total; d++ {
		cells = append(cells, d)
	}

	var weeks [][]int
	for len(cells) > 0 {
		n := min(7, len(cells))
		weeks = append(weeks, cells[:n])
		cells = cells[n:]
	}
	return weeks
}
