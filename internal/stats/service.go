package stats

import (
	"context"
	"errors"
	"sort"
	"time"

	propertieserrors "staybook/internal/properties/errors"
	"staybook/pkg/config"
	"staybook/pkg/dateutil"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/model"
)

// PropertyLister is the slice of the property repository the aggregator
// needs.
type PropertyLister interface {
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Property, error)
	FindByID(ctx context.Context, id string) (*model.Property, error)
}

// PropertyStats aggregates the bookings of a single property.
type PropertyStats struct {
	PropertyID    string  `json:"property_id"`
	PropertyName  string  `json:"property_name"`
	TotalBookings int     `json:"total_bookings"`
	TotalNights   int     `json:"total_nights"`
	TotalRevenue  float64 `json:"total_revenue"`
	AverageStay   float64 `json:"average_stay"`
}

// GlobalStats aggregates across every property. AveragePrice averages
// positive nightly prices only, so zero or missing prices do not drag
// the mean down.
type GlobalStats struct {
	PropertyCount int     `json:"property_count"`
	TotalBookings int     `json:"total_bookings"`
	TotalNights   int     `json:"total_nights"`
	TotalRevenue  float64 `json:"total_revenue"`
	AveragePrice  float64 `json:"average_price"`
	AverageStay   float64 `json:"average_stay"`
	Currency      string  `json:"currency"`
}

// TodayBooking is one guest staying today.
type TodayBooking struct {
	PropertyID   string       `json:"property_id"`
	PropertyName string       `json:"property_name"`
	BookingID    string       `json:"booking_id"`
	Client       model.Client `json:"client"`
	Dates        []string     `json:"dates"`
	Nights       int          `json:"nights"`
	CreatedAt    time.Time    `json:"created_at"`
}

type StatsService interface {
	Global(ctx context.Context) (*GlobalStats, error)
	ForProperty(ctx context.Context, propertyID string) (*PropertyStats, error)
	Today(ctx context.Context) ([]TodayBooking, error)
}

type statsService struct {
	properties PropertyLister
	cfg        *config.Config
	now        func() time.Time
}

func NewStatsService(properties PropertyLister, cfg *config.Config) StatsService {
	return &statsService{
		properties: properties,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *statsService) Global(ctx context.Context) (*GlobalStats, error) {
	properties, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &GlobalStats{
		PropertyCount: len(properties),
		Currency:      s.cfg.Currency,
	}

	var pricedCount int
	var priceSum float64
	for _, property := range properties {
		if property == nil {
			continue
		}
		if property.Price > 0 {
			pricedCount++
			priceSum += property.Price
		}
		ps := aggregateProperty(property)
		stats.TotalBookings += ps.TotalBookings
		stats.TotalNights += ps.TotalNights
		stats.TotalRevenue += ps.TotalRevenue
	}

	if pricedCount > 0 {
		stats.AveragePrice = priceSum / float64(pricedCount)
	}
	if stats.TotalBookings > 0 {
		stats.AverageStay = float64(stats.TotalNights) / float64(stats.TotalBookings)
	}

	return stats, nil
}

func (s *statsService) ForProperty(ctx context.Context, propertyID string) (*PropertyStats, error) {
	if propertyID == "" {
		return nil, apperrors.InvalidInput("Property ID cannot be empty")
	}

	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, mapLookupError(err, propertyID)
	}

	return aggregateProperty(property), nil
}

// Today lists bookings that cover the current calendar day, ordered by
// creation time.
func (s *statsService) Today(ctx context.Context) ([]TodayBooking, error) {
	properties, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	today := dateutil.Today(s.now())

	result := []TodayBooking{}
	for _, property := range properties {
		if property == nil {
			continue
		}
		for _, booking := range property.Bookings {
			if !containsDay(booking.Dates, today) {
				continue
			}
			result = append(result, TodayBooking{
				PropertyID:   property.ID,
				PropertyName: property.Name,
				BookingID:    booking.ID,
				Client:       booking.Client,
				Dates:        booking.Dates,
				Nights:       booking.Nights(),
				CreatedAt:    booking.CreatedAt,
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *statsService) listAll(ctx context.Context) ([]*model.Property, error) {
	// Limit 0 disables the limit; aggregation always walks the full set.
	properties, err := s.properties.FindAll(ctx, 0, 0)
	if err != nil {
		s.cfg.Log.Error("Failed to list properties for aggregation", "error", err)
		return nil, apperrors.Internal("Failed to aggregate bookings", err)
	}
	return properties, nil
}

func aggregateProperty(property *model.Property) *PropertyStats {
	stats := &PropertyStats{
		PropertyID:   property.ID,
		PropertyName: property.Name,
	}

	for _, booking := range property.Bookings {
		nights := booking.Nights()
		if nights == 0 {
			continue
		}
		stats.TotalBookings++
		stats.TotalNights += nights
		stats.TotalRevenue += float64(nights) * property.Price
	}

	if stats.TotalBookings > 0 {
		stats.AverageStay = float64(stats.TotalNights) / float64(stats.TotalBookings)
	}
	return stats
}

func mapLookupError(err error, propertyID string) error {
	if errors.Is(err, propertieserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Property", propertyID)
	}
	if errors.Is(err, propertieserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid property ID format")
	}
	return apperrors.Internal("Failed to retrieve property", err)
}

func containsDay(dates []string, day string) bool {
	for _, d := range dates {
		if d == day {
			return true
		}
	}
	return false
}
