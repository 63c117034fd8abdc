package my_bookings

import "github.com/eternauta1337/skill-deskbird/internal/domain"

// Request модель запроса на список своих бронирований
type Request struct {
	UserID string // ID текущего пользователя
	Days   int    // Горизонт в днях от сегодня; <=0 — значение по умолчанию
}

// Day бронирования одной даты в хронологическом порядке
type Day struct {
	Date     string // каноническая дата YYYY-MM-DD
	Bookings []domain.Booking
}

// Response бронирования пользователя, сгруппированные и упорядоченные по дате
type Response struct {
	From string // каноническая дата начала периода
	To   string // каноническая дата конца периода (включительно)
	Days []Day
}
