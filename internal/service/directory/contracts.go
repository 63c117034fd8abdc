package directory

import (
	"context"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
)

// BookingClient интерфейс клиента deskbird API, нужный справочнику
type BookingClient interface {
	ListOffices(ctx context.Context) ([]domain.Office, error)
	ListResources(ctx context.Context, filter deskbird.ResourceFilter) ([]domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
