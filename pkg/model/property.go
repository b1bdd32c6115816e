package model

import (
	"time"
)

// Property is a rentable unit. Bookings are embedded in the property
// document; this is the canonical representation, there is no separate
// bookings collection.
type Property struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name        string    `json:"name" bson:"name" validate:"required,min=1,max=200"`
	Description string    `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
	Address     string    `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=500"`
	Price       float64   `json:"price" bson:"price" validate:"required,gt=0"`
	Bookings    []Booking `json:"bookings" bson:"bookings"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// PropertyUpdate carries partial updates for a property. The bookings
// list is owned by the booking service and cannot be replaced here.
type PropertyUpdate struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,max=500"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}

// Booking is a confirmed reservation of a set of calendar days on one
// property. Immutable after creation except for deletion.
type Booking struct {
	ID        string    `json:"id" bson:"id" validate:"omitempty,uuid4"`
	Dates     []string  `json:"dates" bson:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
	Client    Client    `json:"client" bson:"client"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// Nights is the number of distinct days the booking covers.
func (b *Booking) Nights() int {
	return len(b.Dates)
}

// Client is the contact snapshot captured at booking time. It is not
// linked to any client registry; duplicates across bookings are expected.
type Client struct {
	FullName string `json:"full_name" bson:"full_name" validate:"required,full_name"`
	Phone    string `json:"phone" bson:"phone" validate:"required,loose_phone"`
	Email    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=1000"`
}
