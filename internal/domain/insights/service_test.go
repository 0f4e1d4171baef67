package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/moods"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExercises struct {
	got   exercises.ListFilter
	items []exercises.Entry
}

func (f *fakeExercises) ListByPet(ctx context.Context, petID string, filter exercises.ListFilter) ([]exercises.Entry, error) {
	f.got = filter
	return f.items, nil
}

type fakeMoods struct{ err error }

func (f fakeMoods) ListByPet(ctx context.Context, petID string, from, to *time.Time) ([]moods.Entry, error) {
	return nil, f.err
}

func TestService_Stats_DefaultsToLast30Days(t *testing.T) {
	ex := &fakeExercises{}
	svc := NewService(ex, fakeMoods{})
	svc.now = func() time.Time { return time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC) }

	st, err := svc.Stats(context.Background(), "pet-1", StatsQuery{})
	require.NoError(t, err)

	assert.Equal(t, day("2025-06-01"), st.From)
	assert.Equal(t, day("2025-06-30"), st.To)
	assert.Equal(t, GroupDay, st.Group)
	assert.Len(t, st.Buckets, 30)

	require.NotNil(t, ex.got.From)
	assert.Equal(t, day("2025-06-01"), *ex.got.From)
	assert.Zero(t, ex.got.Limit)
}

func TestService_Stats_RangeLimits(t *testing.T) {
	svc := NewService(&fakeExercises{}, fakeMoods{})

	_, err := svc.Stats(context.Background(), "pet-1", StatsQuery{From: day("2025-02-01"), To: day("2025-01-01")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Stats(context.Background(), "pet-1", StatsQuery{From: day("2024-01-01"), To: day("2025-01-01")})
	assert.ErrorIs(t, err, ErrInvalidInput, "367 días con group=day")

	_, err = svc.Stats(context.Background(), "pet-1", StatsQuery{From: day("2024-01-01"), To: day("2025-01-01"), Group: GroupWeek})
	assert.NoError(t, err)

	_, err = svc.Stats(context.Background(), "pet-1", StatsQuery{Group: "year"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Calendar_WrapsListErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&fakeExercises{}, fakeMoods{err: boom})

	_, err := svc.Calendar(context.Background(), "pet-1", day("2025-02-01"))
	assert.ErrorIs(t, err, boom)
}
