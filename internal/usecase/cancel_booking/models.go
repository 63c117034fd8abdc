package cancel_booking

import "github.com/eternauta1337/skill-deskbird/internal/domain"

// Request модель запроса на отмену бронирования
type Request struct {
	UserID   string // ID текущего пользователя
	OfficeID string // ID офиса (пусто — офис по умолчанию)
	Resource string // Свободный токен ресурса
	Date     string // Свободный ввод даты (пусто — сегодня)
}

// Response модель ответа с отменённым бронированием
type Response struct {
	Booking  domain.Booking // бронирование на момент до отмены
	Resource domain.Resource
	Date     string // каноническая дата YYYY-MM-DD
}
