package book_resource

import "github.com/eternauta1337/skill-deskbird/internal/domain"

// Request модель запроса на бронирование ресурса
type Request struct {
	UserID   string // ID текущего пользователя
	OfficeID string // ID офиса (пусто — офис по умолчанию)
	Resource string // Свободный токен ресурса ("a1", "desk 12", "tokyo")
	Date     string // Свободный ввод даты ("tomorrow", "15/3", "2024-03-15"; пусто — сегодня)
	Start    string // Свободный ввод времени начала (пусто — 09:00)
	End      string // Свободный ввод времени конца (пусто — 18:00)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking  domain.Booking
	Resource domain.Resource
	Date     string // каноническая дата YYYY-MM-DD
}
