package service

import (
	"context"
	"testing"
	"time"

	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/bookings/validator"
	"staybook/pkg/config"
	mongotx "staybook/pkg/db/mongo"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockBookingRepository struct {
	findPropertyFunc func(ctx context.Context, propertyID string) (*model.Property, error)
	pushBookingFunc  func(ctx context.Context, propertyID string, booking *model.Booking) error
	pullBookingFunc  func(ctx context.Context, propertyID string, bookingID string) error
}

func (m *mockBookingRepository) FindProperty(ctx context.Context, propertyID string) (*model.Property, error) {
	if m.findPropertyFunc != nil {
		return m.findPropertyFunc(ctx, propertyID)
	}
	return &model.Property{ID: propertyID, Name: "Test Property", Price: 100}, nil
}

func (m *mockBookingRepository) PushBooking(ctx context.Context, propertyID string, booking *model.Booking) error {
	if m.pushBookingFunc != nil {
		return m.pushBookingFunc(ctx, propertyID, booking)
	}
	return nil
}

func (m *mockBookingRepository) PullBooking(ctx context.Context, propertyID string, bookingID string) error {
	if m.pullBookingFunc != nil {
		return m.pullBookingFunc(ctx, propertyID, bookingID)
	}
	return nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	var sessCtx mongo.SessionContext
	return fn(sessCtx)
}

type mockDispatcher struct {
	calls []dispatchCall
}

type dispatchCall struct {
	property *model.Property
	booking  *model.Booking
}

func (m *mockDispatcher) DispatchAsync(property *model.Property, booking *model.Booking) {
	m.calls = append(m.calls, dispatchCall{property: property, booking: booking})
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
}

func validBooking() *model.Booking {
	return &model.Booking{
		Dates: []string{"2026-03-10", "2026-03-11", "2026-03-12"},
		Client: model.Client{
			FullName: "Anna Petrova",
			Phone:    "+7 999 123-45-67",
		},
	}
}

func newTestService(repo *mockBookingRepository, dispatcher Dispatcher) BookingService {
	cfg := testConfig()
	return NewBookingService(repo, validator.NewBookingValidator(cfg.Log), dispatcher, cfg)
}

func TestCommit_Success(t *testing.T) {
	var pushed *model.Booking
	repo := &mockBookingRepository{
		pushBookingFunc: func(ctx context.Context, propertyID string, booking *model.Booking) error {
			pushed = booking
			return nil
		},
	}
	dispatcher := &mockDispatcher{}
	svc := newTestService(repo, dispatcher)

	booking := validBooking()
	if err := svc.Commit(context.Background(), "prop-1", booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pushed == nil {
		t.Fatal("expected booking to be pushed")
	}
	if _, err := uuid.Parse(booking.ID); err != nil {
		t.Errorf("expected valid UUID booking ID, got %q", booking.ID)
	}
	if booking.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if len(dispatcher.calls) != 1 {
		t.Fatalf("expected one dispatch, got %d", len(dispatcher.calls))
	}
	if dispatcher.calls[0].booking.ID != booking.ID {
		t.Error("dispatched booking does not match committed booking")
	}
}

func TestCommit_ConflictingDatesRejected(t *testing.T) {
	repo := &mockBookingRepository{
		findPropertyFunc: func(ctx context.Context, propertyID string) (*model.Property, error) {
			return &model.Property{
				ID:    propertyID,
				Name:  "Test Property",
				Price: 100,
				Bookings: []model.Booking{
					{ID: uuid.NewString(), Dates: []string{"2026-03-11"}},
				},
			}, nil
		},
	}
	dispatcher := &mockDispatcher{}
	svc := newTestService(repo, dispatcher)

	err := svc.Commit(context.Background(), "prop-1", validBooking())
	if err == nil {
		t.Fatal("expected conflict error")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected CONFLICT, got %s", appErr.Code)
	}
	if len(dispatcher.calls) != 0 {
		t.Error("conflicting commit must not dispatch")
	}
}

func TestCommit_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *model.Booking)
	}{
		{"empty dates", func(b *model.Booking) { b.Dates = nil }},
		{"malformed date", func(b *model.Booking) { b.Dates = []string{"11.03.2026"} }},
		{"single word name", func(b *model.Booking) { b.Client.FullName = "Anna" }},
		{"missing name", func(b *model.Booking) { b.Client.FullName = "" }},
		{"too few phone digits", func(b *model.Booking) { b.Client.Phone = "12345" }},
		{"phone with letters", func(b *model.Booking) { b.Client.Phone = "phone: 89991234567" }},
		{"bad email", func(b *model.Booking) { b.Client.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&mockBookingRepository{}, &mockDispatcher{})

			booking := validBooking()
			tt.mutate(booking)

			err := svc.Commit(context.Background(), "prop-1", booking)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
				t.Errorf("expected VALIDATION_ERROR, got %s", apperrors.AsAppError(err).Code)
			}
		})
	}
}

func TestCommit_DeduplicatesAndSortsDates(t *testing.T) {
	var pushed *model.Booking
	repo := &mockBookingRepository{
		pushBookingFunc: func(ctx context.Context, propertyID string, booking *model.Booking) error {
			pushed = booking
			return nil
		},
	}
	svc := newTestService(repo, &mockDispatcher{})

	booking := validBooking()
	booking.Dates = []string{"2026-03-12", "2026-03-10", "2026-03-12", "2026-03-11"}

	if err := svc.Commit(context.Background(), "prop-1", booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2026-03-10", "2026-03-11", "2026-03-12"}
	if len(pushed.Dates) != len(want) {
		t.Fatalf("expected %d dates, got %v", len(want), pushed.Dates)
	}
	for i, d := range want {
		if pushed.Dates[i] != d {
			t.Errorf("date %d: expected %s, got %s", i, d, pushed.Dates[i])
		}
	}
}

func TestCommit_PropertyNotFound(t *testing.T) {
	repo := &mockBookingRepository{
		findPropertyFunc: func(ctx context.Context, propertyID string) (*model.Property, error) {
			return nil, bookingserrors.ErrPropertyNotFound
		},
	}
	svc := newTestService(repo, &mockDispatcher{})

	err := svc.Commit(context.Background(), "missing", validBooking())
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", apperrors.AsAppError(err).Code)
	}
}

func TestCommit_NilDispatcherIsSafe(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	if err := svc.Commit(context.Background(), "prop-1", validBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookedDates_UnionSortedUnique(t *testing.T) {
	repo := &mockBookingRepository{
		findPropertyFunc: func(ctx context.Context, propertyID string) (*model.Property, error) {
			return &model.Property{
				ID: propertyID,
				Bookings: []model.Booking{
					{Dates: []string{"2026-03-12", "2026-03-11"}},
					{Dates: []string{"2026-03-11", "2026-03-01"}},
				},
			}, nil
		},
	}
	svc := newTestService(repo, &mockDispatcher{})

	dates, err := svc.BookedDates(context.Background(), "prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2026-03-01", "2026-03-11", "2026-03-12"}
	if len(dates) != len(want) {
		t.Fatalf("expected %v, got %v", want, dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], dates[i])
		}
	}
}

func TestIsBooked(t *testing.T) {
	repo := &mockBookingRepository{
		findPropertyFunc: func(ctx context.Context, propertyID string) (*model.Property, error) {
			return &model.Property{
				ID:       propertyID,
				Bookings: []model.Booking{{Dates: []string{"2026-03-11"}}},
			}, nil
		},
	}
	svc := newTestService(repo, &mockDispatcher{})

	booked, err := svc.IsBooked(context.Background(), "prop-1", "2026-03-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !booked {
		t.Error("expected 2026-03-11 to be booked")
	}

	booked, err = svc.IsBooked(context.Background(), "prop-1", "2026-03-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booked {
		t.Error("expected 2026-03-12 to be free")
	}

	if _, err := svc.IsBooked(context.Background(), "prop-1", "garbage"); err == nil {
		t.Error("expected error for malformed day")
	}
}

func TestRemove(t *testing.T) {
	var pulledProperty, pulledBooking string
	repo := &mockBookingRepository{
		pullBookingFunc: func(ctx context.Context, propertyID string, bookingID string) error {
			pulledProperty = propertyID
			pulledBooking = bookingID
			return nil
		},
	}
	svc := newTestService(repo, &mockDispatcher{})

	id := uuid.NewString()
	if err := svc.Remove(context.Background(), "prop-1", id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pulledProperty != "prop-1" || pulledBooking != id {
		t.Errorf("unexpected pull arguments: %s %s", pulledProperty, pulledBooking)
	}
}

func TestRemove_BookingNotFound(t *testing.T) {
	repo := &mockBookingRepository{
		pullBookingFunc: func(ctx context.Context, propertyID string, bookingID string) error {
			return bookingserrors.ErrBookingNotFound
		},
	}
	svc := newTestService(repo, &mockDispatcher{})

	err := svc.Remove(context.Background(), "prop-1", uuid.NewString())
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", apperrors.AsAppError(err).Code)
	}
}

func TestCommit_PropertiesAreIndependent(t *testing.T) {
	// Day 2026-03-10 is taken on prop-1 but free on prop-2.
	repo := &mockBookingRepository{
		findPropertyFunc: func(ctx context.Context, propertyID string) (*model.Property, error) {
			p := &model.Property{ID: propertyID, Name: "P " + propertyID, Price: 100}
			if propertyID == "prop-1" {
				p.Bookings = []model.Booking{{ID: uuid.NewString(), Dates: []string{"2026-03-10"}}}
			}
			return p, nil
		},
	}
	svc := newTestService(repo, &mockDispatcher{})

	booking := validBooking()
	booking.Dates = []string{"2026-03-10"}
	if err := svc.Commit(context.Background(), "prop-1", booking); err == nil {
		t.Fatal("expected conflict on prop-1")
	}

	booking = validBooking()
	booking.Dates = []string{"2026-03-10"}
	if err := svc.Commit(context.Background(), "prop-2", booking); err != nil {
		t.Fatalf("prop-2 must not be blocked by prop-1: %v", err)
	}
}

func TestCommit_SanitizesClient(t *testing.T) {
	var pushed *model.Booking
	repo := &mockBookingRepository{
		pushBookingFunc: func(ctx context.Context, propertyID string, booking *model.Booking) error {
			pushed = booking
			return nil
		},
	}
	svc := newTestService(repo, &mockDispatcher{})

	booking := validBooking()
	booking.Client.FullName = "  anna   petrova  "
	booking.Client.Phone = "8 (999) 123-45-67"
	booking.Client.Email = " Anna@Example.COM "

	if err := svc.Commit(context.Background(), "prop-1", booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pushed.Client.FullName != "anna petrova" {
		t.Errorf("expected collapsed whitespace, got %q", pushed.Client.FullName)
	}
	if pushed.Client.Phone != "+79991234567" {
		t.Errorf("expected E.164 phone, got %q", pushed.Client.Phone)
	}
	if pushed.Client.Email != "anna@example.com" {
		t.Errorf("expected lowercased email, got %q", pushed.Client.Email)
	}

	if time.Since(pushed.CreatedAt) > time.Minute {
		t.Error("CreatedAt not recent")
	}
}
