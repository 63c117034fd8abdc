package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда на дату нет бронирований ресурса
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")
)
