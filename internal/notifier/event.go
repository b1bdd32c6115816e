package notifier

import (
	"time"

	"staybook/pkg/model"
)

// EventTypeBookingConfirmed is the event published for every committed
// booking.
const EventTypeBookingConfirmed = "booking.confirmed"

// BookingConfirmedEvent is the wire payload of a confirmed booking. It
// snapshots everything the notifier needs so the consumer never has to
// read the database.
type BookingConfirmedEvent struct {
	BookingID    string       `json:"booking_id"`
	PropertyID   string       `json:"property_id"`
	PropertyName string       `json:"property_name"`
	NightlyPrice float64      `json:"nightly_price"`
	Currency     string       `json:"currency"`
	Client       model.Client `json:"client"`
	Dates        []string     `json:"dates"`
	CreatedAt    time.Time    `json:"created_at"`
}
