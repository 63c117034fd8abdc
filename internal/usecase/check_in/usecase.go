package check_in

import (
	"context"
	"fmt"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
	"github.com/eternauta1337/skill-deskbird/pkg/dateparse"
)

// UseCase use case подтверждения присутствия
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

// Execute выполняет check-in по первому подходящему бронированию пользователя
// на день. Токен ресурса опционален и только сужает выбор
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	// 1. Нормализуем дату
	date, err := dateparse.NormalizeDate(req.Date, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CheckIn: invalid date %q: %v", req.Date, err)
		return nil, err
	}

	filter := domain.BookingsFilter{
		StartDate: date,
		EndDate:   date,
		UserID:    req.UserID,
	}

	// 2. Опциональный токен ресурса сужает поиск
	if req.Resource != "" {
		office, err := uc.directory.ResolveOffice(ctx, req.OfficeID)
		if err != nil {
			return nil, err
		}
		resource, err := uc.directory.ResolveResource(ctx, office.ID, req.Resource)
		if err != nil {
			uc.logger.Warn("CheckIn: resource %q not resolved in office=%s", req.Resource, office.ID)
			return nil, err
		}
		filter.ResourceID = resource.ID
	}

	// 3. Ищем бронирования дня
	bookings, err := uc.client.ListBookings(ctx, filter, deskbird.Page{})
	if err != nil {
		return nil, err
	}

	target := firstCheckable(bookings)
	if target == nil {
		uc.logger.Warn("CheckIn: no booking to check in for user=%s date=%s", req.UserID, date)
		return nil, ErrBookingNotFound
	}

	// 4. Check-in первого совпавшего
	checked, err := uc.client.CheckIn(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckIn: checked in booking id=%s date=%s", checked.ID, date)

	return &Response{
		Booking: *checked,
		Date:    date,
	}, nil
}

// firstCheckable возвращает первое бронирование, ожидающее check-in,
// в порядке ответа сервиса
func firstCheckable(bookings []domain.Booking) *domain.Booking {
	for i := range bookings {
		if bookings[i].CanCheckIn() {
			return &bookings[i]
		}
	}
	return nil
}
