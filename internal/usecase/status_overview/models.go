package status_overview

import (
	"time"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
)

// Request модель запроса сводки по столам
type Request struct {
	OfficeID string // ID офиса (пусто — офис по умолчанию)
}

// Occupation занятый интервал стола
type Occupation struct {
	Start    time.Time
	End      time.Time
	Occupant string
}

// DeskStatus состояние одного стола на день
type DeskStatus struct {
	Resource    domain.Resource
	Occupations []Occupation
}

// IsFree возвращает true, если на день нет ни одного пересекающегося бронирования
func (d *DeskStatus) IsFree() bool {
	return len(d.Occupations) == 0
}

// DayStatus состояние всех столов офиса на одну дату
type DayStatus struct {
	Date  string // каноническая дата YYYY-MM-DD
	Desks []DeskStatus
}

// Response сводка по столам на сегодня и завтра
type Response struct {
	Office domain.Office
	Days   []DayStatus // ровно два элемента: сегодня и завтра
}
