package pets_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	mem "pet-exercise-tracker/internal/adapters/storage/memory"
	"pet-exercise-tracker/internal/domain/pets"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *pets.Service {
	return pets.NewService(mem.NewPetRepo())
}

func TestCreate_DefaultsAndTrims(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	name := randomdata.SillyName()
	p, err := svc.Create(ctx, "u1", pets.CreateInput{Name: "  " + name + " ", Age: 2, Weight: 10})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, name, p.Name)
	assert.Equal(t, pets.HealthGood, p.HealthStatus)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestCreate_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cases := map[string]pets.CreateInput{
		"sin nombre":       {Name: "  "},
		"nombre largo":     {Name: strings.Repeat("x", pets.MaxNameLen+1)},
		"edad negativa":    {Name: "Rex", Age: -1},
		"peso absurdo":     {Name: "Rex", Weight: pets.MaxWeightKg + 1},
		"edad NaN":         {Name: "Rex", Age: math.NaN()},
		"peso infinito":    {Name: "Rex", Weight: math.Inf(1)},
		"salud inventada":  {Name: "Rex", HealthStatus: "immortal"},
		"imagen no imagen": {Name: "Rex", Image: "data:text/plain;base64,aGk="},
		"imagen ftp":       {Name: "Rex", Image: "ftp://example.com/rex.png"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, "u1", in)
			assert.ErrorIs(t, err, pets.ErrInvalidInput)
		})
	}

	_, err := svc.Create(ctx, "", pets.CreateInput{Name: "Rex"})
	assert.ErrorIs(t, err, pets.ErrInvalidInput, "owner requerido")
}

func TestValidateImage_Accepts(t *testing.T) {
	for _, img := range []string{
		"",
		"https://example.com/rex.jpg",
		"http://example.com/rex.png",
		"data:image/png;base64,iVBORw0KGgo=",
	} {
		assert.NoError(t, pets.ValidateImage(img), img)
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", pets.CreateInput{Name: "Rex", Characteristics: "calm", Age: 4})
	require.NoError(t, err)

	weight := 12.5
	status := pets.HealthExcellent
	updated, err := svc.Update(ctx, p.ID, pets.UpdateInput{Weight: &weight, HealthStatus: &status})
	require.NoError(t, err)

	assert.Equal(t, "Rex", updated.Name)
	assert.Equal(t, "calm", updated.Characteristics)
	assert.Equal(t, 4.0, updated.Age)
	assert.Equal(t, 12.5, updated.Weight)
	assert.Equal(t, pets.HealthExcellent, updated.HealthStatus)

	empty := ""
	_, err = svc.Update(ctx, p.ID, pets.UpdateInput{Name: &empty})
	assert.ErrorIs(t, err, pets.ErrInvalidInput)

	nan := math.NaN()
	_, err = svc.Update(ctx, p.ID, pets.UpdateInput{Age: &nan})
	assert.ErrorIs(t, err, pets.ErrInvalidInput)

	_, err = svc.Update(ctx, "missing", pets.UpdateInput{})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestAuthorize(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner", pets.CreateInput{Name: "Rex"})
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, p.ID, "owner")
	assert.NoError(t, err)

	_, err = svc.Authorize(ctx, p.ID, "other")
	assert.ErrorIs(t, err, pets.ErrForbidden)

	_, err = svc.Authorize(ctx, "missing", "owner")
	assert.ErrorIs(t, err, pets.ErrNotFound)

	_, err = svc.Authorize(ctx, p.ID, "")
	assert.ErrorIs(t, err, pets.ErrForbidden)

	owner, err := svc.OwnerOf(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", owner)
}

func TestListByOwner_OnlyOwn(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, "u1", pets.CreateInput{Name: randomdata.SillyName()})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "u2", pets.CreateInput{Name: randomdata.SillyName()})
	require.NoError(t, err)

	list, err := svc.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestDelete_RunsCascadeHooks(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", pets.CreateInput{Name: "Rex"})
	require.NoError(t, err)

	var called []string
	svc.OnDelete(
		func(_ context.Context, petID string) error { called = append(called, "exercises:"+petID); return nil },
		nil,
		func(_ context.Context, petID string) error { called = append(called, "moods:"+petID); return nil },
	)

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.Equal(t, []string{"exercises:" + p.ID, "moods:" + p.ID}, called)

	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestDelete_FailedHookKeepsPet(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", pets.CreateInput{Name: "Rex"})
	require.NoError(t, err)

	boom := errors.New("boom")
	svc.OnDelete(func(context.Context, string) error { return boom })

	err = svc.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetByID(ctx, p.ID)
	assert.NoError(t, err, "la mascota sigue para poder reintentar")
}
