package book_resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
	"github.com/eternauta1337/skill-deskbird/internal/resolver"
	"github.com/eternauta1337/skill-deskbird/pkg/dateparse"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeDirectory struct {
	resources []domain.Resource
}

func (f *fakeDirectory) ResolveOffice(ctx context.Context, officeID string) (*domain.Office, error) {
	if officeID == "" {
		officeID = "o1"
	}
	return &domain.Office{ID: officeID, Name: "HQ"}, nil
}

func (f *fakeDirectory) ResolveResource(ctx context.Context, officeID, token string) (*domain.Resource, error) {
	return resolver.Resolve(token, f.resources)
}

type fakeClient struct {
	createCalls int
	gotRequest  deskbird.CreateBookingRequest
	err         error
}

func (f *fakeClient) CreateBooking(ctx context.Context, req deskbird.CreateBookingRequest) (*domain.Booking, error) {
	f.createCalls++
	f.gotRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{
		ID: "b1", UserID: req.UserID, ResourceID: req.ResourceID, OfficeID: req.OfficeID,
		StartTime: req.StartTime, EndTime: req.EndTime,
		Status: domain.StatusAccepted, CheckInStatus: domain.CheckInPending,
	}, nil
}

func newUseCase(client *fakeClient) *UseCase {
	uc := NewUseCase(&fakeDirectory{resources: []domain.Resource{
		{ID: "a1", Name: "Desk 1", Type: domain.TypeFlexDesk, OfficeID: "o1"},
		{ID: "a2", Name: "Desk 12", Type: domain.TypeFlexDesk, OfficeID: "o1"},
	}}, client, nopLogger{})
	uc.timeProvider = fixedTime{time.Date(2024, 3, 14, 16, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_DefaultsAndUTCInstants(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   "u1",
		Resource: "desk 1",
		Date:     "tomorrow",
	})
	require.NoError(t, err)

	// Дефолтные времена 09:00-18:00, моменты в UTC
	assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), client.gotRequest.StartTime)
	assert.Equal(t, time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC), client.gotRequest.EndTime)
	assert.Equal(t, "a1", client.gotRequest.ResourceID)
	assert.Equal(t, "u1", client.gotRequest.UserID)
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, "b1", resp.Booking.ID)
}

func TestExecute_ExplicitTimes(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:   "u1",
		Resource: "a2",
		Date:     "15/3",
		Start:    "19hs",
		End:      "21:30",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC), client.gotRequest.StartTime)
	assert.Equal(t, time.Date(2024, 3, 15, 21, 30, 0, 0, time.UTC), client.gotRequest.EndTime)
}

func TestExecute_InvalidDateBeforeAnyCall(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "u1", Resource: "a1", Date: "not-a-date",
	})
	assert.ErrorIs(t, err, dateparse.ErrInvalidDate)
	assert.Equal(t, 0, client.createCalls)
}

func TestExecute_InvalidTime(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "u1", Resource: "a1", Start: "25:00",
	})
	assert.ErrorIs(t, err, dateparse.ErrInvalidTime)
	assert.Equal(t, 0, client.createCalls)
}

func TestExecute_StartMustPrecedeEnd(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "u1", Resource: "a1", Start: "18", End: "9",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.Equal(t, 0, client.createCalls)
}

func TestExecute_ResourceNotFound(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "u1", Resource: "zzz",
	})
	assert.ErrorIs(t, err, resolver.ErrResourceNotFound)
	assert.Equal(t, 0, client.createCalls)
}

func TestExecute_RemoteRejectionSurfaces(t *testing.T) {
	client := &fakeClient{err: &deskbird.RequestError{Status: 409, Body: "already booked"}}
	uc := newUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "u1", Resource: "a1",
	})

	var reqErr *deskbird.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 409, reqErr.Status)
	// Ровно одна попытка создания — никакого тихого ретрая
	assert.Equal(t, 1, client.createCalls)
}
