package errors

import "errors"

var (
	ErrInvalidDateRange = errors.New("check_out must be after check_in")

	ErrNoRooms = errors.New("at least one room is required")

	ErrInvalidPhone = errors.New("customer phone number is not valid")
)
