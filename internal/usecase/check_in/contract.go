package check_in

import (
	"context"
	"time"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
)

// DirectoryService интерфейс справочника офисов и ресурсов
type DirectoryService interface {
	ResolveOffice(ctx context.Context, officeID string) (*domain.Office, error)
	ResolveResource(ctx context.Context, officeID, token string) (*domain.Resource, error)
}

// BookingClient интерфейс клиента deskbird API
type BookingClient interface {
	ListBookings(ctx context.Context, filter domain.BookingsFilter, page deskbird.Page) ([]domain.Booking, error)
	CheckIn(ctx context.Context, id string) (*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
