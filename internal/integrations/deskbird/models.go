package deskbird

import (
	"encoding/json"
	"time"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
)

// paginatedEnvelope обёртка всех списочных ответов API
type paginatedEnvelope[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Page параметры пагинации; нулевые значения означают дефолты API-клиента
type Page struct {
	Limit  int
	Offset int
}

// ResourceFilter фильтр для списка ресурсов
type ResourceFilter struct {
	OfficeID string
	ZoneID   string
	Type     *domain.ResourceType
	Page     Page
}

// officeModel wire-модель офиса
type officeModel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TimeZone string `json:"timezone,omitempty"`
}

func (m officeModel) toDomain() domain.Office {
	return domain.Office{ID: m.ID, Name: m.Name, TimeZone: m.TimeZone}
}

// resourceModel wire-модель ресурса
type resourceModel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	OfficeID string  `json:"officeId"`
	ZoneID   *string `json:"zoneId,omitempty"`
	FloorID  *string `json:"floorId,omitempty"`
}

func (m resourceModel) toDomain() domain.Resource {
	return domain.Resource{
		ID:       m.ID,
		Name:     m.Name,
		Type:     domain.ResourceType(m.Type),
		OfficeID: m.OfficeID,
		ZoneID:   m.ZoneID,
		FloorID:  m.FloorID,
	}
}

// userModel wire-модель пользователя
type userModel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	OfficeID string `json:"officeId,omitempty"`
	Status   string `json:"status,omitempty"`
}

func (m userModel) toDomain() domain.User {
	return domain.User{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Role:     m.Role,
		OfficeID: m.OfficeID,
		Status:   m.Status,
	}
}

// bookingModel wire-модель бронирования; таймстемпы — ISO-8601 с явным офсетом
type bookingModel struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	ResourceID    string    `json:"resourceId"`
	OfficeID      string    `json:"officeId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	CheckInStatus string    `json:"checkInStatus"`
	IsAnonymous   bool      `json:"isAnonymous"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	User     *struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user,omitempty"`
	Resource *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"resource,omitempty"`
}

func (m bookingModel) toDomain() domain.Booking {
	b := domain.Booking{
		ID:            m.ID,
		UserID:        m.UserID,
		ResourceID:    m.ResourceID,
		OfficeID:      m.OfficeID,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Status:        domain.BookingStatus(m.Status),
		CheckInStatus: domain.CheckInStatus(m.CheckInStatus),
		IsAnonymous:   m.IsAnonymous,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.User != nil {
		b.User = &domain.UserSummary{ID: m.User.ID, Name: m.User.Name, Email: m.User.Email}
	}
	if m.Resource != nil {
		b.Resource = &domain.ResourceSummary{
			ID:   m.Resource.ID,
			Name: m.Resource.Name,
			Type: domain.ResourceType(m.Resource.Type),
		}
	}
	return b
}

// CreateBookingRequest тело запроса на создание бронирования
type CreateBookingRequest struct {
	UserID      string    `json:"userId"`
	ResourceID  string    `json:"resourceId"`
	OfficeID    string    `json:"officeId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAnonymous bool      `json:"isAnonymous"`
}

// UpdateBookingRequest тело запроса на изменение бронирования; nil-поля не отправляются
type UpdateBookingRequest struct {
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// errorModel тело ошибки сервиса
type errorModel struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// diagnosticBody извлекает диагностическое сообщение из тела ответа:
// сначала JSON (поле message/error), затем сырой текст
func diagnosticBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var em errorModel
	if err := json.Unmarshal(body, &em); err == nil {
		if em.Message != "" {
			return em.Message
		}
		if em.Error != "" {
			return em.Error
		}
	}
	return string(body)
}
