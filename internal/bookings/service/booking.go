package service

import (
	"context"
	"errors"
	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/bookings/repository"
	"staybook/internal/bookings/validator"
	"staybook/pkg/config"
	"staybook/pkg/dateutil"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/model"
	"staybook/pkg/sanitizer"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dispatcher relays a confirmed booking to the notification pipeline.
// Delivery is best-effort and must never affect the commit outcome.
type Dispatcher interface {
	DispatchAsync(property *model.Property, booking *model.Booking)
}

type BookingService interface {
	BookedDates(ctx context.Context, propertyID string) ([]string, error)
	IsBooked(ctx context.Context, propertyID string, day string) (bool, error)
	Commit(ctx context.Context, propertyID string, booking *model.Booking) error
	Remove(ctx context.Context, propertyID string, bookingID string) error
}

type bookingService struct {
	repo       repository.BookingRepository
	validator  *validator.BookingValidator
	dispatcher Dispatcher
	cfg        *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	dispatcher Dispatcher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:       repo,
		validator:  validator,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

// BookedDates is the union of all booked days of the property, sorted
// ascending without duplicates.
func (s *bookingService) BookedDates(ctx context.Context, propertyID string) ([]string, error) {
	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	var days []string
	for _, booking := range property.Bookings {
		days = append(days, booking.Dates...)
	}
	return dateutil.SortedUnique(days), nil
}

func (s *bookingService) IsBooked(ctx context.Context, propertyID string, day string) (bool, error) {
	if _, err := dateutil.ParseDay(day); err != nil {
		return false, apperrors.InvalidInput("Date must be in YYYY-MM-DD format")
	}

	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return false, err
	}

	return bookedSet(property)[day], nil
}

// Commit validates the booking, checks every requested day against the
// property's booked set inside a transaction, and appends the booking.
// The conflict check and the write happen atomically, so two concurrent
// commits for overlapping days cannot both succeed.
func (s *bookingService) Commit(ctx context.Context, propertyID string, booking *model.Booking) error {
	if propertyID == "" {
		return apperrors.InvalidInput("Property ID cannot be empty")
	}

	s.sanitize(booking)
	booking.Dates = dateutil.SortedUnique(booking.Dates)

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "property_id", propertyID, "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	booking.ID = uuid.NewString()
	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	var property *model.Property
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		var err error
		property, err = s.findProperty(sessCtx, propertyID)
		if err != nil {
			return err
		}

		if conflicts := collectConflicts(property, booking.Dates); len(conflicts) > 0 {
			return apperrors.Conflict("Selected dates are already booked", map[string]any{
				"dates": conflicts,
			})
		}

		if err := s.repo.PushBooking(sessCtx, propertyID, booking); err != nil {
			return apperrors.Internal("Failed to save booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to commit booking", "property_id", propertyID, "error", err)
		return err
	}

	s.cfg.Log.Info("Booking committed successfully",
		"booking_id", booking.ID,
		"property_id", propertyID,
		"nights", booking.Nights(),
	)

	if s.dispatcher != nil {
		s.dispatcher.DispatchAsync(property, booking)
	}
	return nil
}

func (s *bookingService) Remove(ctx context.Context, propertyID string, bookingID string) error {
	if propertyID == "" {
		return apperrors.InvalidInput("Property ID cannot be empty")
	}
	if bookingID == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.PullBooking(ctx, propertyID, bookingID); err != nil {
		if errors.Is(err, bookingserrors.ErrPropertyNotFound) {
			return apperrors.NotFoundWithID("Property", propertyID)
		}
		if errors.Is(err, bookingserrors.ErrBookingNotFound) {
			return apperrors.NotFoundWithID("Booking", bookingID)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid property ID format")
		}
		s.cfg.Log.Error("Failed to remove booking", "property_id", propertyID, "booking_id", bookingID, "error", err)
		return apperrors.Internal("Failed to remove booking", err)
	}

	s.cfg.Log.Info("Booking removed successfully", "property_id", propertyID, "booking_id", bookingID)
	return nil
}

func (s *bookingService) findProperty(ctx context.Context, propertyID string) (*model.Property, error) {
	property, err := s.repo.FindProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrPropertyNotFound) {
			return nil, apperrors.NotFoundWithID("Property", propertyID)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid property ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve property", err)
	}
	return property, nil
}

func (s *bookingService) sanitize(b *model.Booking) {
	b.Client.FullName = sanitizer.NormalizeName(b.Client.FullName)
	b.Client.Phone = sanitizer.NormalizePhone(b.Client.Phone)
	b.Client.Email = sanitizer.NormalizeEmail(b.Client.Email)
	b.Client.Notes = sanitizer.TrimAndNormalize(b.Client.Notes)
}

func bookedSet(property *model.Property) map[string]bool {
	set := make(map[string]bool)
	for _, booking := range property.Bookings {
		for _, day := range booking.Dates {
			set[day] = true
		}
	}
	return set
}

func collectConflicts(property *model.Property, dates []string) []string {
	booked := bookedSet(property)
	var conflicts []string
	for _, day := range dates {
		if booked[day] {
			conflicts = append(conflicts, day)
		}
	}
	return conflicts
}
