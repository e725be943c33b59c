package mpin

import "errors"

var (
	// ErrInvalidDate is returned when day/month/year do not form a real
	// calendar date.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidPINFormat is returned when the PIN is not all digits or its
	// length does not match the requested length.
	ErrInvalidPINFormat = errors.New("invalid pin format")
)
