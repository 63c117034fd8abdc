package list_availability

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
	"github.com/eternauta1337/skill-deskbird/pkg/dateparse"
)

// groupOrder фиксированный порядок групп в выдаче
var groupOrder = []domain.ResourceType{
	domain.TypeFlexDesk,
	domain.TypeMeetingRoom,
	domain.TypeParking,
	domain.TypeOther,
}

// UseCase use case расписания офиса на день
type UseCase struct {
	directory    DirectoryService
	client       BookingClient
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// loc — зона, в которой считаются границы дня
func NewUseCase(directory DirectoryService, client BookingClient, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		directory:    directory,
		client:       client,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит расписание: ресурсы офиса и бронирования дня запрашиваются
// параллельно, затем ресурсы группируются по типу с занятыми интервалами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализуем дату до любых сетевых вызовов
	date, err := dateparse.NormalizeDate(req.Date, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("ListAvailability: invalid date %q: %v", req.Date, err)
		return nil, err
	}

	// 2. Резолвим офис
	office, err := uc.directory.ResolveOffice(ctx, req.OfficeID)
	if err != nil {
		return nil, err
	}

	// 3. Ресурсы и бронирования дня — независимые чтения, выполняем параллельно
	var (
		resources []domain.Resource
		bookings  []domain.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resources, err = uc.directory.OfficeResources(gctx, office.ID)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = uc.client.ListBookings(gctx, domain.BookingsFilter{
			StartDate: date,
			EndDate:   date,
			OfficeID:  office.ID,
		}, deskbird.Page{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resources = domain.FilterByType(resources, req.Type)

	// 4. Границы дня в настроенной зоне, интервал полуоткрытый [dayStart, dayEnd)
	dayStart, err := time.ParseInLocation(domain.DateFormat, date, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse canonical date: %v", ErrInternal, err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	uc.logger.Info("ListAvailability: office=%s date=%s resources=%d bookings=%d",
		office.ID, date, len(resources), len(bookings))

	return &Response{
		Date:   date,
		Office: *office,
		Groups: groupByType(resources, bookings, dayStart, dayEnd),
	}, nil
}

// groupByType группирует ресурсы по типу, прикрепляя к каждому пересекающиеся
// с днём активные бронирования в хронологическом порядке ответа сервиса
func groupByType(resources []domain.Resource, bookings []domain.Booking, dayStart, dayEnd time.Time) []Group {
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

	byType := make(map[domain.ResourceType][]ResourceAvailability)
	var extraTypes []domain.ResourceType // неизвестные типы в порядке появления
	for _, r := range resources {
		if _, ok := byType[r.Type]; !ok && !isKnownType(r.Type) {
			extraTypes = append(extraTypes, r.Type)
		}
		byType[r.Type] = append(byType[r.Type], ResourceAvailability{
			Resource:    r,
			Occupations: byResource[r.ID],
		})
	}

	groups := make([]Group, 0, len(byType))
	for _, t := range append(groupOrder, extraTypes...) {
		if items, ok := byType[t]; ok {
			groups = append(groups, Group{Type: t, Resources: items})
		}
	}
	return groups
}

func isKnownType(t domain.ResourceType) bool {
	for _, known := range groupOrder {
		if t == known {
			return true
		}
	}
	return false
}
