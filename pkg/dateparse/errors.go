package dateparse

import "errors"

var (
	// ErrInvalidDate возвращается, когда строка не распознана ни одним правилом дат
	ErrInvalidDate = errors.New("dateparse: invalid date")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("dateparse: invalid time")
)
