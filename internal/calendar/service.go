package calendar

import (
	"context"
	"sync"
	"time"

	"staybook/internal/bookings/service"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/model"
)

// SelectionView is the selection snapshot returned to clients.
type SelectionView struct {
	PropertyID string         `json:"property_id"`
	State      SelectionState `json:"state"`
	Dates      []string       `json:"dates"`
}

// GridView is one month of the calendar. Weeks hold day numbers with
// zero cells padding the first week.
type GridView struct {
	Year        int      `json:"year"`
	Month       string   `json:"month"`
	Weeks       [][]int  `json:"weeks"`
	BookedDates []string `json:"booked_dates"`
}

type CalendarService interface {
	Activate(ctx context.Context, propertyID string) (*GridView, error)
	SelectDay(ctx context.Context, day string) (*SelectionView, error)
	Commit(ctx context.Context, client model.Client) (*model.Booking, error)
	Reset() *SelectionView
	Selection() *SelectionView
	PrevMonth(ctx context.Context) (*GridView, error)
	NextMonth(ctx context.Context) (*GridView, error)
	Grid(ctx context.Context) (*GridView, error)
}

// calendarService guards one Selector with a mutex. The picker is a
// single shared surface, mirroring one operator working one calendar
// at a time.
type calendarService struct {
	mu       sync.Mutex
	selector *Selector
	bookings service.BookingService
	cfg      *config.Config
	now      func() time.Time
}

func NewCalendarService(bookings service.BookingService, cfg *config.Config) CalendarService {
	return &calendarService{
		selector: NewSelector(),
		bookings: bookings,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *calendarService) Activate(ctx context.Context, propertyID string) (*GridView, error) {
	if propertyID == "" {
		return nil, apperrors.InvalidInput("Property ID cannot be empty")
	}

	// Existence check doubles as the booked-dates fetch for the grid.
	booked, err := s.bookings.BookedDates(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selector.Activate(propertyID, s.now())
	s.cfg.Log.Info("Calendar activated", "property_id", propertyID)
	return s.gridLocked(booked), nil
}

func (s *calendarService) SelectDay(ctx context.Context, day string) (*SelectionView, error) {
	s.mu.Lock()
	propertyID := s.selector.PropertyID()
	s.mu.Unlock()

	if propertyID == "" {
		return nil, apperrors.InvalidInput("No property activated")
	}

	booked, err := s.bookings.BookedDates(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	bookedSet := make(map[string]bool, len(booked))
	for _, d := range booked {
		bookedSet[d] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.selector.SelectDay(day, func(d string) bool { return bookedSet[d] })
	if err != nil {
		switch err {
		case ErrInvalidDay:
			return nil, apperrors.InvalidInput("Date must be in YYYY-MM-DD format")
		case ErrDayBooked:
			return nil, apperrors.Conflict("Day is already booked", map[string]any{"date": day})
		default:
			return nil, apperrors.Internal("Failed to select day", err)
		}
	}

	return s.selectionLocked(), nil
}

// Commit turns the current selection plus the client form into a
// booking. The selection is dropped only after the booking sticks, so a
// conflict leaves the picker intact for correction.
func (s *calendarService) Commit(ctx context.Context, client model.Client) (*model.Booking, error) {
	s.mu.Lock()
	propertyID := s.selector.PropertyID()
	dates := s.selector.Selection()
	s.mu.Unlock()

	if propertyID == "" {
		return nil, apperrors.InvalidInput("No property activated")
	}
	if len(dates) == 0 {
		return nil, apperrors.InvalidInput("No dates selected")
	}

	booking := &model.Booking{
		Dates:  dates,
		Client: client,
	}
	if err := s.bookings.Commit(ctx, propertyID, booking); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.selector.Reset()
	s.mu.Unlock()

	return booking, nil
}

func (s *calendarService) Reset() *SelectionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selector.Reset()
	return s.selectionLocked()
}

func (s *calendarService) Selection() *SelectionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selectionLocked()
}

func (s *calendarService) PrevMonth(ctx context.Context) (*GridView, error) {
	return s.shiftMonth(ctx, func() { s.selector.PrevMonth() })
}

func (s *calendarService) NextMonth(ctx context.Context) (*GridView, error) {
	return s.shiftMonth(ctx, func() { s.selector.NextMonth() })
}

func (s *calendarService) Grid(ctx context.Context) (*GridView, error) {
	return s.shiftMonth(ctx, nil)
}

func (s *calendarService) shiftMonth(ctx context.Context, shift func()) (*GridView, error) {
	s.mu.Lock()
	propertyID := s.selector.PropertyID()
	s.mu.Unlock()

	if propertyID == "" {
		return nil, apperrors.InvalidInput("No property activated")
	}

	booked, err := s.bookings.BookedDates(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if shift != nil {
		shift()
	}
	return s.gridLocked(booked), nil
}

func (s *calendarService) selectionLocked() *SelectionView {
	dates := s.selector.Selection()
	if dates == nil {
		dates = []string{}
	}
	return &SelectionView{
		PropertyID: s.selector.PropertyID(),
		State:      s.selector.State(),
		Dates:      dates,
	}
}

func (s *calendarService) gridLocked(booked []string) *GridView {
	year, month := s.selector.Cursor()
	if booked == nil {
		booked = []string{}
	}
	return &GridView{
		Year:        year,
		Month:       month.String(),
		Weeks:       s.selector.MonthGrid(),
		BookedDates: booked,
	}
}
