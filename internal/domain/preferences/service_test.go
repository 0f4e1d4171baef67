package preferences_test

import (
	"context"
	"errors"
	"testing"

	mem "pet-exercise-tracker/internal/adapters/storage/memory"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/domain/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*preferences.Service, *pets.Service) {
	t.Helper()
	petsSvc := pets.NewService(mem.NewPetRepo())
	return preferences.NewService(mem.NewPreferencesRepo(), petsSvc), petsSvc
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestGet_DefaultsWhenMissing(t *testing.T) {
	svc, _ := setup(t)

	p, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, preferences.Defaults("u1"), p)

	_, err = svc.Get(context.Background(), " ")
	assert.ErrorIs(t, err, preferences.ErrInvalidInput)
}

func TestUpdate_ActivePetOwnership(t *testing.T) {
	svc, petsSvc := setup(t)
	ctx := context.Background()

	mine, err := petsSvc.Create(ctx, "u1", pets.CreateInput{Name: "Kira"})
	require.NoError(t, err)
	theirs, err := petsSvc.Create(ctx, "u2", pets.CreateInput{Name: "Rex"})
	require.NoError(t, err)

	p, err := svc.Update(ctx, "u1", preferences.UpdateInput{ActivePetID: strPtr(mine.ID), DarkMode: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, mine.ID, p.ActivePetID)
	assert.True(t, p.DarkMode)

	_, err = svc.Update(ctx, "u1", preferences.UpdateInput{ActivePetID: strPtr(theirs.ID)})
	assert.ErrorIs(t, err, preferences.ErrForbidden)

	_, err = svc.Update(ctx, "u1", preferences.UpdateInput{ActivePetID: strPtr("missing")})
	assert.ErrorIs(t, err, preferences.ErrInvalidInput)

	// Solo dark_mode: la mascota activa queda.
	p, err = svc.Update(ctx, "u1", preferences.UpdateInput{DarkMode: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, mine.ID, p.ActivePetID)
	assert.False(t, p.DarkMode)

	p, err = svc.Update(ctx, "u1", preferences.UpdateInput{ActivePetID: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, p.ActivePetID)
}

func TestClearActivePet_OnlyMatchingUsers(t *testing.T) {
	svc, petsSvc := setup(t)
	ctx := context.Background()

	a, err := petsSvc.Create(ctx, "u1", pets.CreateInput{Name: "Kira"})
	require.NoError(t, err)
	b, err := petsSvc.Create(ctx, "u2", pets.CreateInput{Name: "Rex"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "u1", preferences.UpdateInput{ActivePetID: strPtr(a.ID), DarkMode: boolPtr(true)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "u2", preferences.UpdateInput{ActivePetID: strPtr(b.ID)})
	require.NoError(t, err)

	require.NoError(t, svc.ClearActivePet(ctx, a.ID))

	p1, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, p1.ActivePetID)
	assert.True(t, p1.DarkMode)

	p2, err := svc.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, b.ID, p2.ActivePetID)

	assert.NoError(t, svc.ClearActivePet(ctx, ""))
}

type brokenOwners struct{ err error }

func (b brokenOwners) OwnerOf(context.Context, string) (string, error) { return "", b.err }

func TestUpdate_OwnerLookupFailureIsNotInvalidInput(t *testing.T) {
	down := errors.New("storage down")
	svc := preferences.NewService(mem.NewPreferencesRepo(), brokenOwners{err: down})

	_, err := svc.Update(context.Background(), "u1", preferences.UpdateInput{ActivePetID: strPtr("p1")})
	assert.ErrorIs(t, err, down)
	assert.NotErrorIs(t, err, preferences.ErrInvalidInput)
}
