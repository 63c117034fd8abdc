package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternauta1337/skill-deskbird/internal/domain"
)

func testCandidates() []domain.Resource {
	return []domain.Resource{
		{ID: "a1", Name: "Desk 1", Type: domain.TypeFlexDesk, OfficeID: "o1"},
		{ID: "a2", Name: "Desk 12", Type: domain.TypeFlexDesk, OfficeID: "o1"},
		{ID: "b1", Name: "Tokyo Room", Type: domain.TypeMeetingRoom, OfficeID: "o1"},
	}
}

func TestResolve_ByID(t *testing.T) {
	got, err := Resolve("a1", testCandidates())
	require.NoError(t, err)
	assert.Equal(t, "Desk 1", got.Name)
}

func TestResolve_ByExactNameCaseInsensitive(t *testing.T) {
	got, err := Resolve("desk 1", testCandidates())
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
}

func TestResolve_BySubstring(t *testing.T) {
	got, err := Resolve("tokyo", testCandidates())
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)
}

func TestResolve_AmbiguousSubstringPicksFirstInInputOrder(t *testing.T) {
	// "desk" совпадает с "Desk 1" и "Desk 12" — выбирается первый во входном списке
	got, err := Resolve("desk", testCandidates())
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
}

func TestResolve_ExactNameWinsOverSubstring(t *testing.T) {
	// "desk 12" — точное имя Desk 12, подстрочное совпадение с Desk 1 не рассматривается
	got, err := Resolve("DESK 12", testCandidates())
	require.NoError(t, err)
	assert.Equal(t, "a2", got.ID)
}

func TestResolve_NotFound(t *testing.T) {
	_, err := Resolve("zzz", testCandidates())
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestResolve_EmptyCandidates(t *testing.T) {
	_, err := Resolve("a1", nil)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}
