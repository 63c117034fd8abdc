package directory

import (
	"context"
	"testing"

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

type fakeClient struct {
	officeCalls   int
	resourceCalls int
	offices       []domain.Office
	resources     map[string][]domain.Resource
}

func (f *fakeClient) ListOffices(ctx context.Context) ([]domain.Office, error) {
	f.officeCalls++
	return f.offices, nil
}

func (f *fakeClient) ListResources(ctx context.Context, filter deskbird.ResourceFilter) ([]domain.Resource, error) {
	f.resourceCalls++
	return f.resources[filter.OfficeID], nil
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		offices: []domain.Office{{ID: "o1", Name: "HQ"}},
		resources: map[string][]domain.Resource{
			"o1": {
				{ID: "a1", Name: "Desk 1", Type: domain.TypeFlexDesk, OfficeID: "o1"},
				{ID: "a2", Name: "Desk 12", Type: domain.TypeFlexDesk, OfficeID: "o1"},
			},
		},
	}
}

func TestOffices_CachedAfterFirstCall(t *testing.T) {
	client := newFakeClient()
	svc := NewService(client, nopLogger{})

	ctx := context.Background()
	first, err := svc.Offices(ctx)
	require.NoError(t, err)
	second, err := svc.Offices(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.officeCalls)
}

func TestOfficeResources_CachedPerOffice(t *testing.T) {
	client := newFakeClient()
	client.resources["o2"] = []domain.Resource{{ID: "z1", Name: "Spot 1", OfficeID: "o2"}}
	svc := NewService(client, nopLogger{})

	ctx := context.Background()
	_, err := svc.OfficeResources(ctx, "o1")
	require.NoError(t, err)
	_, err = svc.OfficeResources(ctx, "o1")
	require.NoError(t, err)
	_, err = svc.OfficeResources(ctx, "o2")
	require.NoError(t, err)

	assert.Equal(t, 2, client.resourceCalls)
}

func TestResolveOffice(t *testing.T) {
	client := newFakeClient()
	svc := NewService(client, nopLogger{})
	ctx := context.Background()

	// Пустой ID при единственном офисе — подразумевается он
	office, err := svc.ResolveOffice(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "o1", office.ID)

	office, err = svc.ResolveOffice(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "HQ", office.Name)

	_, err = svc.ResolveOffice(ctx, "nope")
	assert.ErrorIs(t, err, ErrOfficeNotFound)
}

func TestResolveOffice_AmbiguousWithoutID(t *testing.T) {
	client := newFakeClient()
	client.offices = append(client.offices, domain.Office{ID: "o2", Name: "Satellite"})
	svc := NewService(client, nopLogger{})

	_, err := svc.ResolveOffice(context.Background(), "")
	assert.ErrorIs(t, err, ErrOfficeNotFound)
}

func TestResolveResource(t *testing.T) {
	client := newFakeClient()
	svc := NewService(client, nopLogger{})
	ctx := context.Background()

	got, err := svc.ResolveResource(ctx, "o1", "desk 12")
	require.NoError(t, err)
	assert.Equal(t, "a2", got.ID)

	_, err = svc.ResolveResource(ctx, "o1", "zzz")
	assert.ErrorIs(t, err, resolver.ErrResourceNotFound)

	// Повторная резолюция не ходит в API
	assert.Equal(t, 1, client.resourceCalls)
}
