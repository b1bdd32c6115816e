package errors

import "errors"

var (
	ErrNotFound  = errors.New("property not found")
	ErrInvalidID = errors.New("invalid property ID")
)
