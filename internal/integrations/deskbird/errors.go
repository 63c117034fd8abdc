package deskbird

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized возвращается на 401: токен отсутствует или недействителен
	ErrUnauthorized = errors.New("deskbird: unauthorized (check your API token)")

	// ErrForbidden возвращается на 403: аутентифицирован, но операция запрещена
	ErrForbidden = errors.New("deskbird: forbidden")

	// ErrRateLimited возвращается на 429. Клиент НЕ ретраит сам — решение
	// о повторе принимает вызывающая сторона
	ErrRateLimited = errors.New("deskbird: rate limited")

	// ErrInternal возвращается при внутренних ошибках клиента (транспорт, кодирование)
	ErrInternal = errors.New("deskbird client: internal error")
)

// RequestError любой прочий не-2xx ответ сервиса, с телом для диагностики
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("deskbird: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("deskbird: request failed with status %d: %s", e.Status, e.Body)
}

// statusErrors полная таблица классификации статус-кодов в ошибки.
// Добавление нового классифицированного статуса — одна строка здесь.
var statusErrors = map[int]error{
	401: ErrUnauthorized,
	403: ErrForbidden,
	429: ErrRateLimited,
}

// classifyStatus конвертирует HTTP-статус в ошибку клиента.
// 2xx -> nil, известные статусы -> сентинел, остальное -> *RequestError
func classifyStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	if err, ok := statusErrors[status]; ok {
		return err
	}
	return &RequestError{Status: status, Body: diagnosticBody(body)}
}
