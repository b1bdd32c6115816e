package notifier

import (
	"context"

	"staybook/pkg/config"
	"staybook/pkg/kafka"
	"staybook/pkg/model"
)

// Publisher is the producer surface the dispatcher needs.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// KafkaDispatcher publishes booking confirmations keyed by property ID
// so events for one property stay ordered. Delivery failures are logged
// and dropped; the booking itself is already committed.
type KafkaDispatcher struct {
	publisher Publisher
	cfg       *config.Config
}

func NewKafkaDispatcher(publisher Publisher, cfg *config.Config) *KafkaDispatcher {
	return &KafkaDispatcher{
		publisher: publisher,
		cfg:       cfg,
	}
}

func (d *KafkaDispatcher) Dispatch(ctx context.Context, property *model.Property, booking *model.Booking) error {
	event := &BookingConfirmedEvent{
		BookingID:    booking.ID,
		PropertyID:   property.ID,
		PropertyName: property.Name,
		NightlyPrice: property.Price,
		Currency:     d.cfg.Currency,
		Client:       booking.Client,
		Dates:        booking.Dates,
		CreatedAt:    booking.CreatedAt,
	}

	msg := kafka.NewMessage().
		WithKey(property.ID).
		WithValue(event).
		WithEventType(EventTypeBookingConfirmed).
		WithSource("staybook").
		Build()

	return d.publisher.Publish(ctx, msg)
}

// DispatchAsync publishes in the background with its own timeout, so a
// slow or dead broker cannot stall or fail the booking flow.
func (d *KafkaDispatcher) DispatchAsync(property *model.Property, booking *model.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.DispatchTimeout)
		defer cancel()

		if err := d.Dispatch(ctx, property, booking); err != nil {
			d.cfg.Log.Error("Failed to dispatch booking confirmation",
				"booking_id", booking.ID,
				"property_id", property.ID,
				"error", err,
			)
		}
	}()
}
