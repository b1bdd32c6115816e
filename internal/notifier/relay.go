package notifier

import (
	"context"
	"fmt"

	"staybook/pkg/kafka"
	"staybook/pkg/logger"
)

// Sender delivers one rendered message to the operator.
type Sender interface {
	SendMessage(ctx context.Context, text string) error
}

// Relay consumes booking confirmations and forwards them as chat
// messages. Undecodable payloads are permanent failures and go straight
// to the DLQ; delivery errors are surfaced for retry classification.
type Relay struct {
	sender Sender
	log    *logger.Logger
}

func NewRelay(sender Sender, log *logger.Logger) *Relay {
	return &Relay{
		sender: sender,
		log:    log,
	}
}

func (r *Relay) Handle(ctx context.Context, msg kafka.Message) error {
	if eventType := msg.GetEventType(); eventType != "" && eventType != EventTypeBookingConfirmed {
		r.log.Warn("Skipping message with unexpected event type",
			"event_type", eventType,
			"event_id", msg.GetEventID(),
		)
		return nil
	}

	var event BookingConfirmedEvent
	if err := msg.DecodeValue(&event); err != nil {
		return fmt.Errorf("%w: undecodable booking confirmation: %v", kafka.ErrInvalidMessage, err)
	}

	if err := r.sender.SendMessage(ctx, FormatBookingMessage(&event)); err != nil {
		return fmt.Errorf("failed to relay booking %s: %w", event.BookingID, err)
	}

	r.log.Info("Booking confirmation relayed",
		"booking_id", event.BookingID,
		"property_id", event.PropertyID,
	)
	return nil
}
