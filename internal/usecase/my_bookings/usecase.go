package my_bookings

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
)

// UseCase use case списка своих бронирований
type UseCase struct {
	client       BookingClient
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// loc — зона, в которой бронирования раскладываются по датам
func NewUseCase(client BookingClient, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает бронирования пользователя от сегодня до сегодня+N дней,
// сгруппированные и упорядоченные по дате
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	days := req.Days
	if days <= 0 {
		days = domain.DefaultHorizonDays
	}

	now := uc.timeProvider.Now().In(uc.loc)
	from := now.Format(domain.DateFormat)
	to := now.AddDate(0, 0, days).Format(domain.DateFormat)

	bookings, err := uc.client.ListBookings(ctx, domain.BookingsFilter{
		StartDate: from,
		EndDate:   to,
		UserID:    req.UserID,
	}, deskbird.Page{})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("MyBookings: user=%s period=%s..%s bookings=%d", req.UserID, from, to, len(bookings))

	return &Response{
		From: from,
		To:   to,
		Days: groupByDate(bookings, uc.loc),
	}, nil
}

// groupByDate раскладывает активные бронирования по датам начала (в зоне loc)
// и сортирует дни и бронирования внутри дня хронологически
func groupByDate(bookings []domain.Booking, loc *time.Location) []Day {
	byDate := make(map[string][]domain.Booking)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		date := b.StartTime.In(loc).Format(domain.DateFormat)
		byDate[date] = append(byDate[date], b)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]Day, len(dates))
	for i, date := range dates {
		items := byDate[date]
		sort.Slice(items, func(a, b int) bool { return items[a].StartTime.Before(items[b].StartTime) })
		days[i] = Day{Date: date, Bookings: items}
	}
	return days
}
