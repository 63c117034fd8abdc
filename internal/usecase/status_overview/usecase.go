package status_overview

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
	"github.com/eternauta1337/skill-deskbird/pkg/ptr"
)

// UseCase use case сводки по столам на сегодня и завтра
type UseCase struct {
	directory    DirectoryService
	client       BookingClient
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// loc — зона, в которой считаются границы дней
func NewUseCase(directory DirectoryService, client BookingClient, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		directory:    directory,
		client:       client,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит сводку по столам типа flexDesk: ресурсы офиса и бронирования
// сегодняшнего и завтрашнего дня запрашиваются параллельно, затем по каждому
// столу и дню вычисляется свободен/занят
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Резолвим офис
	office, err := uc.directory.ResolveOffice(ctx, req.OfficeID)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.loc)
	today := now.Format(domain.DateFormat)
	tomorrow := now.AddDate(0, 0, 1).Format(domain.DateFormat)
	dates := []string{today, tomorrow}

	// 2. Три независимых чтения: ресурсы плюс бронирования каждого дня
	var (
		resources   []domain.Resource
		dayBookings = make([][]domain.Booking, len(dates))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resources, err = uc.directory.OfficeResources(gctx, office.ID)
		return err
	})
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			var err error
			dayBookings[i], err = uc.client.ListBookings(gctx, domain.BookingsFilter{
				StartDate: date,
				EndDate:   date,
				OfficeID:  office.ID,
			}, deskbird.Page{})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	desks := domain.FilterByType(resources, ptr.Ptr(domain.TypeFlexDesk))

	uc.logger.Info("StatusOverview: office=%s desks=%d bookings=%d/%d",
		office.ID, len(desks), len(dayBookings[0]), len(dayBookings[1]))

	days := make([]DayStatus, len(dates))
	for i, date := range dates {
		dayStart, err := time.ParseInLocation(domain.DateFormat, date, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse canonical date: %v", ErrInternal, err)
		}
		days[i] = DayStatus{
			Date:  date,
			Desks: deskStatuses(desks, dayBookings[i], dayStart, dayStart.AddDate(0, 0, 1)),
		}
	}

	return &Response{Office: *office, Days: days}, nil
}

// deskStatuses прикрепляет к каждому столу пересекающиеся с днём активные
// бронирования; интервал дня полуоткрытый [dayStart, dayEnd)
func deskStatuses(desks []domain.Resource, bookings []domain.Booking, dayStart, dayEnd time.Time) []DeskStatus {
	byResource := make(map[string][]Occupation)
	for _, b := range bookings {
		if !b.IsActive() || !b.Overlaps(dayStart, dayEnd) {
			continue
		}
		byResource[b.ResourceID] = append(byResource[b.ResourceID], Occupation{
			Start:    b.StartTime,
			End:      b.EndTime,
			Occupant: b.OccupantName(),
		})
	}

	statuses := make([]DeskStatus, len(desks))
	for i, d := range desks {
		statuses[i] = DeskStatus{Resource: d, Occupations: byResource[d.ID]}
	}
	return statuses
}
