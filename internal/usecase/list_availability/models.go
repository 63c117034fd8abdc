package list_availability

import (
	"time"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
)

// Request модель запроса расписания на день
type Request struct {
	OfficeID string               // ID офиса (пусто — офис по умолчанию)
	Date     string               // Свободный ввод даты (пусто — сегодня)
	Type     *domain.ResourceType // Опциональный фильтр по типу ресурса
}

// Occupation занятый интервал ресурса
type Occupation struct {
	Start    time.Time
	End      time.Time
	Occupant string
}

// ResourceAvailability состояние одного ресурса на день
type ResourceAvailability struct {
	Resource    domain.Resource
	Occupations []Occupation
}

// IsFree возвращает true, если на день нет ни одного пересекающегося бронирования
func (r *ResourceAvailability) IsFree() bool {
	return len(r.Occupations) == 0
}

// Group ресурсы одного типа
type Group struct {
	Type      domain.ResourceType
	Resources []ResourceAvailability
}

// Response расписание офиса на день, сгруппированное по типу ресурса
type Response struct {
	Date   string // каноническая дата YYYY-MM-DD
	Office domain.Office
	Groups []Group
}
