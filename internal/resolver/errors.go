package resolver

import "errors"

var (
	// ErrResourceNotFound возвращается, когда токен не совпал ни с одним ресурсом
	ErrResourceNotFound = errors.New("resolver: resource not found")
)
