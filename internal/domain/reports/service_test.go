package reports

import (
	"context"
	"testing"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/insights"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPets map[string]pets.Pet

func (s stubPets) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	p, ok := s[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

type stubExercises []exercises.Entry

func (s stubExercises) ListByPet(ctx context.Context, petID string, f exercises.ListFilter) ([]exercises.Entry, error) {
	out := make([]exercises.Entry, 0)
	for _, e := range s {
		if e.PetID == petID && f.Match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubMoods []moods.Entry

func (s stubMoods) ListByPet(ctx context.Context, petID string, from, to *time.Time) ([]moods.Entry, error) {
	out := make([]moods.Entry, 0)
	for _, m := range s {
		if m.PetID == petID && moods.InRange(m.Date, from, to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestService_Build_DefaultRangeAndGrouping(t *testing.T) {
	today := time.Date(2025, 4, 30, 15, 0, 0, 0, time.UTC)
	d := func(s string) time.Time { t, _ := time.Parse("2006-01-02", s); return t }

	svc := NewService(
		stubPets{"pet-1": {ID: "pet-1", Name: "Luna"}},
		stubExercises{
			{PetID: "pet-1", Date: d("2025-03-31"), DurationMinutes: 10, Type: exercises.TypeWalk},
			{PetID: "pet-1", Date: d("2025-04-01"), DurationMinutes: 20, Type: exercises.TypeWalk},
			{PetID: "pet-2", Date: d("2025-04-02"), DurationMinutes: 99, Type: exercises.TypeWalk},
		},
		stubMoods{{PetID: "pet-1", Date: d("2025-04-15"), Mood: moods.MoodCalm}},
	)
	svc.now = func() time.Time { return today }

	rep, err := svc.Build(context.Background(), "pet-1", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, d("2025-04-01"), rep.From)
	assert.Equal(t, d("2025-04-30"), rep.To)
	require.Len(t, rep.Exercises, 1)
	assert.Equal(t, 20, rep.Stats.Totals.Minutes)
	assert.Len(t, rep.Moods, 1)
	assert.Equal(t, insights.GroupDay, rep.Stats.Group)
	assert.Equal(t, today, rep.GeneratedAt)

	rep, err = svc.Build(context.Background(), "pet-1", d("2025-01-01"), d("2025-04-30"))
	require.NoError(t, err)
	assert.Equal(t, insights.GroupWeek, rep.Stats.Group)
}

func TestService_Build_Errors(t *testing.T) {
	svc := NewService(stubPets{}, stubExercises{}, stubMoods{})

	_, err := svc.Build(context.Background(), "missing", time.Time{}, time.Time{})
	assert.ErrorIs(t, err, pets.ErrNotFound)

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Build(context.Background(), "missing", from, from.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
