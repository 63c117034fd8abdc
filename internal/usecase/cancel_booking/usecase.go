package cancel_booking

import (
	"context"
	"fmt"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
	"github.com/eternauta1337/skill-deskbird/pkg/dateparse"
)

// UseCase use case отмены бронирования
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

// Execute отменяет первое (в порядке ответа сервиса) активное бронирование
// текущего пользователя на ресурс и дату. Если бронирований нет, запрос отмены
// не отправляется вовсе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.Resource == "" {
		return nil, fmt.Errorf("%w: resource token is required", ErrInvalidInput)
	}

	// 1. Нормализуем дату
	date, err := dateparse.NormalizeDate(req.Date, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CancelBooking: invalid date %q: %v", req.Date, err)
		return nil, err
	}

	// 2. Резолвим офис и ресурс
	office, err := uc.directory.ResolveOffice(ctx, req.OfficeID)
	if err != nil {
		return nil, err
	}

	resource, err := uc.directory.ResolveResource(ctx, office.ID, req.Resource)
	if err != nil {
		uc.logger.Warn("CancelBooking: resource %q not resolved in office=%s", req.Resource, office.ID)
		return nil, err
	}

	// 3. Ищем бронирования пользователя на этот ресурс и дату
	bookings, err := uc.client.ListBookings(ctx, domain.BookingsFilter{
		StartDate:  date,
		EndDate:    date,
		UserID:     req.UserID,
		ResourceID: resource.ID,
	}, deskbird.Page{})
	if err != nil {
		return nil, err
	}

	target := firstActive(bookings)
	if target == nil {
		uc.logger.Warn("CancelBooking: no active booking for user=%s resource=%s date=%s",
			req.UserID, resource.ID, date)
		return nil, ErrBookingNotFound
	}

	// 4. Отменяем первое совпавшее
	if err := uc.client.CancelBooking(ctx, target.ID); err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: cancelled booking id=%s resource=%s date=%s", target.ID, resource.ID, date)

	return &Response{
		Booking:  *target,
		Resource: *resource,
		Date:     date,
	}, nil
}

// firstActive возвращает первое активное бронирование в порядке ответа сервиса
func firstActive(bookings []domain.Booking) *domain.Booking {
	for i := range bookings {
		if bookings[i].IsActive() {
			return &bookings[i]
		}
	}
	return nil
}
