package stats

import (
	"context"
	"testing"
	"time"

	propertieserrors "staybook/internal/properties/errors"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPropertyLister struct {
	findAllFunc  func(ctx context.Context, limit int, offset int64) ([]*model.Property, error)
	findByIDFunc func(ctx context.Context, id string) (*model.Property, error)
}

func (m *mockPropertyLister) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Property, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockPropertyLister) FindByID(ctx context.Context, id string) (*model.Property, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, propertieserrors.ErrNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		Currency: "RUB",
		Log:      logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
}

func fixedNowService(lister PropertyLister, now time.Time) *statsService {
	s := NewStatsService(lister, testConfig()).(*statsService)
	s.now = func() time.Time { return now }
	return s
}

func sampleProperties() []*model.Property {
	return []*model.Property{
		{
			ID: "p1", Name: "Flat", Price: 100,
			Bookings: []model.Booking{
				{ID: "b1", Dates: []string{"2026-03-10", "2026-03-11"}, CreatedAt: time.Unix(200, 0)},
				{ID: "b2", Dates: []string{"2026-03-20"}, CreatedAt: time.Unix(100, 0)},
			},
		},
		{
			ID: "p2", Name: "Cabin", Price: 50,
			Bookings: []model.Booking{
				{ID: "b3", Dates: []string{"2026-03-10", "2026-03-11", "2026-03-12"}, CreatedAt: time.Unix(300, 0)},
			},
		},
		// Draft property without a price yet; excluded from AveragePrice.
		{ID: "p3", Name: "Unpriced"},
	}
}

func TestGlobal(t *testing.T) {
	svc := fixedNowService(&mockPropertyLister{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Property, error) {
			return sampleProperties(), nil
		},
	}, time.Now())

	stats, err := svc.Global(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.PropertyCount)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 6, stats.TotalNights)
	// p1: 3 nights * 100, p2: 3 nights * 50
	assert.InDelta(t, 450.0, stats.TotalRevenue, 0.001)
	// Only the two priced properties count.
	assert.InDelta(t, 75.0, stats.AveragePrice, 0.001)
	assert.InDelta(t, 2.0, stats.AverageStay, 0.001)
	assert.Equal(t, "RUB", stats.Currency)
}

func TestGlobal_EmptyCollection(t *testing.T) {
	svc := fixedNowService(&mockPropertyLister{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Property, error) {
			return nil, nil
		},
	}, time.Now())

	stats, err := svc.Global(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.PropertyCount)
	assert.Zero(t, stats.TotalBookings)
	assert.Zero(t, stats.AveragePrice)
	assert.Zero(t, stats.AverageStay)
}

func TestGlobal_ToleratesNilEntries(t *testing.T) {
	svc := fixedNowService(&mockPropertyLister{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Property, error) {
			return []*model.Property{nil, {ID: "p1", Name: "Flat", Price: 100}}, nil
		},
	}, time.Now())

	stats, err := svc.Global(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PropertyCount)
	assert.InDelta(t, 100.0, stats.AveragePrice, 0.001)
}

func TestForProperty(t *testing.T) {
	svc := fixedNowService(&mockPropertyLister{
		findByIDFunc: func(ctx context.Context, id string) (*model.Property, error) {
			return sampleProperties()[0], nil
		},
	}, time.Now())

	stats, err := svc.ForProperty(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", stats.PropertyID)
	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 3, stats.TotalNights)
	assert.InDelta(t, 300.0, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 1.5, stats.AverageStay, 0.001)
}

func TestForProperty_NotFound(t *testing.T) {
	svc := fixedNowService(&mockPropertyLister{}, time.Now())

	_, err := svc.ForProperty(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.AsAppError(err).Code)
}

func TestToday(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	svc := fixedNowService(&mockPropertyLister{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Property, error) {
			return sampleProperties(), nil
		},
	}, now)

	bookings, err := svc.Today(context.Background())
	require.NoError(t, err)

	// b1 (p1) and b3 (p2) cover 2026-03-10; b2 does not.
	require.Len(t, bookings, 2)
	assert.Equal(t, "b1", bookings[0].BookingID)
	assert.Equal(t, "b3", bookings[1].BookingID)
	assert.True(t, bookings[0].CreatedAt.Before(bookings[1].CreatedAt))
	assert.Equal(t, "Flat", bookings[0].PropertyName)
	assert.Equal(t, 2, bookings[0].Nights)
}

func TestToday_NoGuests(t *testing.T) {
	svc := fixedNowService(&mockPropertyLister{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Property, error) {
			return sampleProperties(), nil
		},
	}, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))

	bookings, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
