package directory

import "errors"

var (
	// ErrOfficeNotFound возвращается, когда офис не найден и не задан дефолтный
	ErrOfficeNotFound = errors.New("directory: office not found (set office_id in config or pass --office)")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("directory: internal error")
)
