package book_resource

import (
	"context"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
	"github.com/eternauta1337/skill-deskbird/pkg/dateparse"
)

// UseCase use case бронирования ресурса
type UseCase struct {
	directory    DirectoryService
	client       BookingClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(directory DirectoryService, client BookingClient, logger Logger) *UseCase {
	return &UseCase{
		directory:    directory,
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование: нормализация даты/времени, резолюция ресурса,
// создание бронирования. Предварительной проверки пересечений на клиенте нет —
// источник истины о конфликтах только remote service.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookResource: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату и времена до любых сетевых вызовов
	date, err := dateparse.NormalizeDate(req.Date, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("BookResource: invalid date %q: %v", req.Date, err)
		return nil, err
	}

	start, err := normalizeTimeOrDefault(req.Start, domain.DefaultStartTime)
	if err != nil {
		uc.logger.Warn("BookResource: invalid start time %q: %v", req.Start, err)
		return nil, err
	}

	end, err := normalizeTimeOrDefault(req.End, domain.DefaultEndTime)
	if err != nil {
		uc.logger.Warn("BookResource: invalid end time %q: %v", req.End, err)
		return nil, err
	}

	// 3. Строим моменты времени date+time в UTC и проверяем границы интервала
	startTime, err := buildInstant(date, start)
	if err != nil {
		return nil, err
	}
	endTime, err := buildInstant(date, end)
	if err != nil {
		return nil, err
	}
	if !startTime.Before(endTime) {
		uc.logger.Warn("BookResource: invalid range %s..%s", start, end)
		return nil, ErrInvalidTimeRange
	}

	// 4. Резолвим офис и ресурс
	office, err := uc.directory.ResolveOffice(ctx, req.OfficeID)
	if err != nil {
		return nil, err
	}

	resource, err := uc.directory.ResolveResource(ctx, office.ID, req.Resource)
	if err != nil {
		uc.logger.Warn("BookResource: resource %q not resolved in office=%s", req.Resource, office.ID)
		return nil, err
	}

	uc.logger.Info("BookResource: user=%s resource=%s (%s) %s %s-%s",
		req.UserID, resource.ID, resource.Name, date, start, end)

	// 5. Создаем бронирование; отказ сервиса поднимается как есть
	booking, err := uc.client.CreateBooking(ctx, deskbird.CreateBookingRequest{
		UserID:     req.UserID,
		ResourceID: resource.ID,
		OfficeID:   office.ID,
		StartTime:  startTime,
		EndTime:    endTime,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookResource: created booking id=%s", booking.ID)

	return &Response{
		Booking:  *booking,
		Resource: *resource,
		Date:     date,
	}, nil
}
