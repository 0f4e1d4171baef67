package local

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/domain/preferences"
	"pet-exercise-tracker/internal/domain/shares"
	"pet-exercise-tracker/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var t0 = time.Date(2025, 5, 1, 12, 30, 0, 0, time.UTC)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func openTestStore(t *testing.T) (string, Repos) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pets.bolt")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return path, NewRepos(s)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.bolt")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	p := pets.Pet{ID: "pet-1", OwnerUserID: "u1", Name: "Luna", HealthStatus: pets.HealthGood, CreatedAt: t0, UpdatedAt: t0}
	require.NoError(t, NewPetsRepo(s).Create(ctx, p))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := NewPetsRepo(s).GetByID(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPetsRepo(t *testing.T) {
	_, repos := openTestStore(t)
	ctx := context.Background()

	a := pets.Pet{ID: "b", OwnerUserID: "u1", Name: "Luna", CreatedAt: t0}
	b := pets.Pet{ID: "a", OwnerUserID: "u1", Name: "Max", CreatedAt: t0.Add(time.Minute)}
	c := pets.Pet{ID: "c", OwnerUserID: "u2", Name: "Otro", CreatedAt: t0}
	for _, p := range []pets.Pet{a, b, c} {
		require.NoError(t, repos.Pets.Create(ctx, p))
	}

	list, err := repos.Pets.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Luna", list[0].Name, "orden por CreatedAt, no por clave")

	assert.ErrorIs(t, repos.Pets.Update(ctx, pets.Pet{ID: "zzz"}), pets.ErrNotFound)
	require.NoError(t, repos.Pets.Delete(ctx, "a"))
	assert.ErrorIs(t, repos.Pets.Delete(ctx, "a"), pets.ErrNotFound)
	_, err = repos.Pets.GetByID(ctx, "a")
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestExercisesRepo(t *testing.T) {
	_, repos := openTestStore(t)
	ctx := context.Background()

	seed := []exercises.Entry{
		{ID: "e1", PetID: "p1", Date: day("2025-04-03"), DurationMinutes: 30, Type: exercises.TypeWalk, Intensity: exercises.IntensityLow, Location: "Beach", CreatedAt: t0},
		{ID: "e2", PetID: "p1", Date: day("2025-04-01"), DurationMinutes: 15, Type: exercises.TypeRun, Intensity: exercises.IntensityHigh, CreatedAt: t0},
		{ID: "e3", PetID: "p2", Date: day("2025-04-02"), DurationMinutes: 10, Type: exercises.TypeWalk, Intensity: exercises.IntensityLow, CreatedAt: t0},
	}
	for _, e := range seed {
		require.NoError(t, repos.Exercises.Create(ctx, e))
	}

	got, err := repos.Exercises.ListByPet(ctx, "p1", exercises.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e2", got[0].ID)
	assert.Equal(t, seed[0], got[1])

	got, err = repos.Exercises.ListByPet(ctx, "p1", exercises.ListFilter{Query: "beach", Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)

	upd := seed[1]
	upd.DurationMinutes = 45
	require.NoError(t, repos.Exercises.Update(ctx, upd))
	e, err := repos.Exercises.GetByID(ctx, "e2")
	require.NoError(t, err)
	assert.Equal(t, 45, e.DurationMinutes)

	require.NoError(t, repos.Exercises.DeleteByPet(ctx, "p1"))
	got, err = repos.Exercises.ListByPet(ctx, "p1", exercises.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = repos.Exercises.GetByID(ctx, "e3")
	assert.NoError(t, err)
	assert.ErrorIs(t, repos.Exercises.Delete(ctx, "e1"), exercises.ErrNotFound)
}

func TestMoodsRepo_KeyedByPetAndDay(t *testing.T) {
	_, repos := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, repos.Moods.Upsert(ctx, moods.Entry{PetID: "p1", Date: day("2025-04-02"), Mood: moods.MoodSad, RecordedAt: t0}))
	require.NoError(t, repos.Moods.Upsert(ctx, moods.Entry{PetID: "p1", Date: day("2025-04-02"), Mood: moods.MoodHappy, RecordedAt: t0}))
	require.NoError(t, repos.Moods.Upsert(ctx, moods.Entry{PetID: "p1", Date: day("2025-03-30"), Mood: moods.MoodCalm, RecordedAt: t0}))
	// prefijo parecido, otra mascota
	require.NoError(t, repos.Moods.Upsert(ctx, moods.Entry{PetID: "p10", Date: day("2025-04-01"), Mood: moods.MoodTired, RecordedAt: t0}))

	got, err := repos.Moods.ListByPet(ctx, "p1", nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, moods.MoodCalm, got[0].Mood)
	assert.Equal(t, moods.MoodHappy, got[1].Mood)

	to := day("2025-04-01")
	got, err = repos.Moods.ListByPet(ctx, "p1", nil, &to)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, repos.Moods.DeleteByPet(ctx, "p1"))
	got, err = repos.Moods.ListByPet(ctx, "p10", nil, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.ErrorIs(t, repos.Moods.Delete(ctx, "p1", day("2025-04-02")), moods.ErrNotFound)
}

func TestUsersAndSessions(t *testing.T) {
	_, repos := openTestStore(t)
	ctx := context.Background()

	u := users.User{ID: "u1", Email: "ana@example.com", PasswordHash: "h", CreatedAt: t0}
	require.NoError(t, repos.Users.Create(ctx, u))
	assert.ErrorIs(t, repos.Users.Create(ctx, users.User{ID: "u2", Email: "ana@example.com"}), users.ErrEmailTaken)

	got, err := repos.Users.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	require.NoError(t, repos.Sessions.CreateSession(ctx, users.Session{Token: "old", UserID: "u1", ExpiresAt: t0}))
	require.NoError(t, repos.Sessions.CreateSession(ctx, users.Session{Token: "new", UserID: "u1", ExpiresAt: t0.Add(time.Hour)}))

	n, err := repos.Sessions.PurgeExpired(ctx, t0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repos.Sessions.GetSession(ctx, "old")
	assert.ErrorIs(t, err, users.ErrNotFound)
	require.NoError(t, repos.Sessions.DeleteSession(ctx, "new"))
	assert.ErrorIs(t, repos.Sessions.DeleteSession(ctx, "new"), users.ErrNotFound)
}

func TestPreferencesAndShares(t *testing.T) {
	_, repos := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, repos.Preferences.Put(ctx, preferences.Preferences{UserID: "u1", ActivePetID: "p1", DarkMode: true, UpdatedAt: t0}))
	require.NoError(t, repos.Preferences.ClearActivePet(ctx, "p1"))
	p, err := repos.Preferences.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, p.ActivePetID)
	assert.True(t, p.DarkMode)

	_, err = repos.Preferences.Get(ctx, "nadie")
	assert.ErrorIs(t, err, preferences.ErrNotFound)

	s := shares.Share{ID: "s1", PetID: "p1", Token: "tok", Scopes: []shares.Scope{shares.ScopeReportRead}, Status: shares.StatusActive, CreatedAt: t0}
	require.NoError(t, repos.Shares.Create(ctx, s))
	got, err := repos.Shares.GetByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	_, err = repos.Shares.GetByToken(ctx, "nope")
	assert.ErrorIs(t, err, shares.ErrNotFound)

	list, err := repos.Shares.ListByPet(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
