package check_in

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
	"github.com/eternauta1337/skill-deskbird/internal/resolver"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeDirectory struct{ resolveCalls int }

func (f *fakeDirectory) ResolveOffice(ctx context.Context, officeID string) (*domain.Office, error) {
	return &domain.Office{ID: "o1", Name: "HQ"}, nil
}

func (f *fakeDirectory) ResolveResource(ctx context.Context, officeID, token string) (*domain.Resource, error) {
	f.resolveCalls++
	return resolver.Resolve(token, []domain.Resource{
		{ID: "a1", Name: "Desk 1", Type: domain.TypeFlexDesk, OfficeID: "o1"},
	})
}

type fakeClient struct {
	bookings     []domain.Booking
	gotFilter    domain.BookingsFilter
	checkInCalls int
}

func (f *fakeClient) ListBookings(ctx context.Context, filter domain.BookingsFilter, page deskbird.Page) ([]domain.Booking, error) {
	f.gotFilter = filter
	return f.bookings, nil
}

func (f *fakeClient) CheckIn(ctx context.Context, id string) (*domain.Booking, error) {
	f.checkInCalls++
	return &domain.Booking{ID: id, Status: domain.StatusAccepted, CheckInStatus: domain.CheckInCheckedIn}, nil
}

func newUseCase(dir *fakeDirectory, client *fakeClient) *UseCase {
	uc := NewUseCase(dir, client, nopLogger{})
	uc.timeProvider = fixedTime{time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)}
	return uc
}

func TestExecute_ChecksInFirstPendingBooking(t *testing.T) {
	client := &fakeClient{bookings: []domain.Booking{
		{ID: "b1", Status: domain.StatusAccepted, CheckInStatus: domain.CheckInCheckedIn},
		{ID: "b2", Status: domain.StatusAccepted, CheckInStatus: domain.CheckInPending},
	}}
	dir := &fakeDirectory{}
	uc := newUseCase(dir, client)

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u1"})
	require.NoError(t, err)

	// b1 уже отмечен — check-in уходит на b2
	assert.Equal(t, "b2", resp.Booking.ID)
	assert.Equal(t, domain.CheckInCheckedIn, resp.Booking.CheckInStatus)
	assert.Equal(t, "2024-03-14", resp.Date)

	// Без токена ресурса резолюция не выполняется
	assert.Equal(t, 0, dir.resolveCalls)
	assert.Empty(t, client.gotFilter.ResourceID)
}

func TestExecute_ResourceTokenNarrowsFilter(t *testing.T) {
	client := &fakeClient{bookings: []domain.Booking{
		{ID: "b1", Status: domain.StatusAccepted, CheckInStatus: domain.CheckInPending},
	}}
	dir := &fakeDirectory{}
	uc := newUseCase(dir, client)

	_, err := uc.Execute(context.Background(), &Request{UserID: "u1", Resource: "desk 1"})
	require.NoError(t, err)

	assert.Equal(t, 1, dir.resolveCalls)
	assert.Equal(t, "a1", client.gotFilter.ResourceID)
}

func TestExecute_NoBookings(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(&fakeDirectory{}, client)

	_, err := uc.Execute(context.Background(), &Request{UserID: "u1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, 0, client.checkInCalls)
}

func TestExecute_UnknownResourceToken(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(&fakeDirectory{}, client)

	_, err := uc.Execute(context.Background(), &Request{UserID: "u1", Resource: "zzz"})
	assert.ErrorIs(t, err, resolver.ErrResourceNotFound)
	assert.Equal(t, 0, client.checkInCalls)
}
