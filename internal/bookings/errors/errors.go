package errors

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidID        = errors.New("invalid property ID")
)
