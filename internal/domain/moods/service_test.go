package moods_test

import (
	"context"
	"strings"
	"testing"
	"time"

	mem "pet-exercise-tracker/internal/adapters/storage/memory"
	"pet-exercise-tracker/internal/domain/moods"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLog_OnePerDay(t *testing.T) {
	svc := moods.NewService(mem.NewMoodRepo())
	ctx := context.Background()

	_, err := svc.Log(ctx, "p1", day("2024-02-01"), moods.MoodSad, "")
	require.NoError(t, err)
	e, err := svc.Log(ctx, "p1", day("2024-02-01").Add(15*time.Hour), " Happy ", " played ")
	require.NoError(t, err)
	assert.Equal(t, moods.MoodHappy, e.Mood)
	assert.Equal(t, "played", e.Note)
	assert.Equal(t, day("2024-02-01"), e.Date, "se normaliza al día")

	list, err := svc.ListByPet(ctx, "p1", nil, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, moods.MoodHappy, list[0].Mood)
}

func TestLog_Validation(t *testing.T) {
	svc := moods.NewService(mem.NewMoodRepo())
	ctx := context.Background()

	_, err := svc.Log(ctx, "p1", time.Time{}, moods.MoodCalm, "")
	assert.ErrorIs(t, err, moods.ErrInvalidInput)

	_, err = svc.Log(ctx, "p1", time.Now().UTC().AddDate(0, 0, 2), moods.MoodCalm, "")
	assert.ErrorIs(t, err, moods.ErrInvalidInput)

	_, err = svc.Log(ctx, "p1", day("2024-02-01"), "grumpy", "")
	assert.ErrorIs(t, err, moods.ErrInvalidInput)

	_, err = svc.Log(ctx, "p1", day("2024-02-01"), moods.MoodCalm, strings.Repeat("x", moods.MaxNoteLen+1))
	assert.ErrorIs(t, err, moods.ErrInvalidInput)

	_, err = svc.Log(ctx, "", day("2024-02-01"), moods.MoodCalm, "")
	assert.ErrorIs(t, err, moods.ErrInvalidInput)
}

func TestListByPet_RangeAndDelete(t *testing.T) {
	svc := moods.NewService(mem.NewMoodRepo())
	ctx := context.Background()

	for i, m := range moods.AllMoods {
		_, err := svc.Log(ctx, "p1", day("2024-02-01").AddDate(0, 0, i), m, "")
		require.NoError(t, err)
	}

	from, to := day("2024-02-02"), day("2024-02-03")
	got, err := svc.ListByPet(ctx, "p1", &from, &to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, moods.MoodCalm, got[0].Mood)
	assert.Equal(t, moods.MoodEnergetic, got[1].Mood)

	_, err = svc.ListByPet(ctx, "p1", &to, &from)
	assert.ErrorIs(t, err, moods.ErrInvalidInput)

	require.NoError(t, svc.Delete(ctx, "p1", day("2024-02-01")))
	assert.ErrorIs(t, svc.Delete(ctx, "p1", day("2024-02-01")), moods.ErrNotFound)

	require.NoError(t, svc.DeleteByPet(ctx, "p1"))
	got, err = svc.ListByPet(ctx, "p1", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
