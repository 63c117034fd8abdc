package check_in

import "errors"

var (
	// ErrBookingNotFound возвращается, когда на дату нет подходящих бронирований
	ErrBookingNotFound = errors.New("check_in: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_in: invalid input data")
)
