package check_in

import "github.com/eternauta1337/skill-deskbird/internal/domain"

// Request модель запроса на check-in
type Request struct {
	UserID   string // ID текущего пользователя
	OfficeID string // ID офиса (пусто — офис по умолчанию)
	Resource string // Свободный токен ресурса; пусто — любое бронирование дня
	Date     string // Свободный ввод даты (пусто — сегодня)
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	Booking domain.Booking
	Date    string // каноническая дата YYYY-MM-DD
}
