package sqlstore

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
)

func openTestDB(t *testing.T) Repos {
	t.Helper()

	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "pets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db))
	// idempotente
	require.NoError(t, Migrate(ctx, db))
	return NewRepos(db)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

var t0 = time.Date(2025, 5, 1, 12, 30, 0, 123456789, time.UTC)

func TestPetsRepo_RoundTrip(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	p := pets.Pet{
		ID:              "pet-1",
		OwnerUserID:     "u1",
		Name:            "Luna",
		Image:           "https://example.com/luna.png",
		Characteristics: "shy",
		Age:             2.5,
		Weight:          12.3,
		HealthStatus:    pets.HealthExcellent,
		CreatedAt:       t0,
		UpdatedAt:       t0,
	}
	require.NoError(t, repos.Pets.Create(ctx, p))

	got, err := repos.Pets.GetByID(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	p.Name = "Luna II"
	p.UpdatedAt = t0.Add(time.Hour)
	require.NoError(t, repos.Pets.Update(ctx, p))

	second := p
	second.ID, second.Name, second.CreatedAt = "pet-2", "Max", t0.Add(time.Minute)
	require.NoError(t, repos.Pets.Create(ctx, second))

	list, err := repos.Pets.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Luna II", list[0].Name)
	assert.Equal(t, "Max", list[1].Name)

	require.NoError(t, repos.Pets.Delete(ctx, "pet-1"))
	_, err = repos.Pets.GetByID(ctx, "pet-1")
	assert.ErrorIs(t, err, pets.ErrNotFound)
	assert.ErrorIs(t, repos.Pets.Delete(ctx, "pet-1"), pets.ErrNotFound)
	assert.ErrorIs(t, repos.Pets.Update(ctx, p), pets.ErrNotFound)
}

func TestExercisesRepo_ListFilter(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	seed := []exercises.Entry{
		{ID: "e1", PetID: "pet-1", Date: date("2025-04-03"), DurationMinutes: 30, Calories: 150, Type: exercises.TypeWalk, Intensity: exercises.IntensityModerate, Location: "Riverside Park", CreatedAt: t0, UpdatedAt: t0},
		{ID: "e2", PetID: "pet-1", Date: date("2025-04-01"), DurationMinutes: 10, Calories: 80, Type: exercises.TypeRun, Intensity: exercises.IntensityHigh, Notes: "100% effort_", CreatedAt: t0, UpdatedAt: t0},
		{ID: "e3", PetID: "pet-1", Date: date("2025-04-03"), DurationMinutes: 20, Calories: 60, Type: exercises.TypePlay, Intensity: exercises.IntensityLow, CreatedAt: t0.Add(-time.Hour), UpdatedAt: t0},
		{ID: "e4", PetID: "pet-2", Date: date("2025-04-02"), DurationMinutes: 5, Calories: 15, Type: exercises.TypeWalk, Intensity: exercises.IntensityLow, CreatedAt: t0, UpdatedAt: t0},
	}
	for _, e := range seed {
		require.NoError(t, repos.Exercises.Create(ctx, e))
	}

	ids := func(items []exercises.Entry) []string {
		out := make([]string, 0, len(items))
		for _, e := range items {
			out = append(out, e.ID)
		}
		return out
	}

	all, err := repos.Exercises.ListByPet(ctx, "pet-1", exercises.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"e2", "e3", "e1"}, ids(all))
	assert.Equal(t, seed[1], all[0])

	from := date("2025-04-02")
	got, err := repos.Exercises.ListByPet(ctx, "pet-1", exercises.ListFilter{From: &from})
	require.NoError(t, err)
	assert.Equal(t, []string{"e3", "e1"}, ids(got))

	got, err = repos.Exercises.ListByPet(ctx, "pet-1", exercises.ListFilter{Types: []exercises.Type{exercises.TypeWalk, exercises.TypeRun}})
	require.NoError(t, err)
	assert.Equal(t, []string{"e2", "e1"}, ids(got))

	got, err = repos.Exercises.ListByPet(ctx, "pet-1", exercises.ListFilter{Query: "RIVERSIDE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, ids(got))

	// % y _ son literales
	got, err = repos.Exercises.ListByPet(ctx, "pet-1", exercises.ListFilter{Query: "0% effort_"})
	require.NoError(t, err)
	assert.Equal(t, []string{"e2"}, ids(got))
	got, err = repos.Exercises.ListByPet(ctx, "pet-1", exercises.ListFilter{Query: "_"})
	require.NoError(t, err)
	assert.Equal(t, []string{"e2"}, ids(got))

	got, err = repos.Exercises.ListByPet(ctx, "pet-1", exercises.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"e2", "e3"}, ids(got))

	require.NoError(t, repos.Exercises.DeleteByPet(ctx, "pet-1"))
	got, err = repos.Exercises.ListByPet(ctx, "pet-1", exercises.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = repos.Exercises.GetByID(ctx, "e4")
	assert.NoError(t, err)
}

func TestMoodsRepo_UpsertOnePerDay(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, repos.Moods.Upsert(ctx, moods.Entry{PetID: "pet-1", Date: date("2025-04-01"), Mood: moods.MoodSad, RecordedAt: t0}))
	require.NoError(t, repos.Moods.Upsert(ctx, moods.Entry{PetID: "pet-1", Date: date("2025-04-01"), Mood: moods.MoodHappy, Note: "better", RecordedAt: t0.Add(time.Hour)}))
	require.NoError(t, repos.Moods.Upsert(ctx, moods.Entry{PetID: "pet-1", Date: date("2025-03-30"), Mood: moods.MoodCalm, RecordedAt: t0}))

	got, err := repos.Moods.ListByPet(ctx, "pet-1", nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, moods.MoodCalm, got[0].Mood)
	assert.Equal(t, moods.Entry{PetID: "pet-1", Date: date("2025-04-01"), Mood: moods.MoodHappy, Note: "better", RecordedAt: t0.Add(time.Hour)}, got[1])

	from := date("2025-04-01")
	got, err = repos.Moods.ListByPet(ctx, "pet-1", &from, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, repos.Moods.Delete(ctx, "pet-1", date("2025-04-01")))
	assert.ErrorIs(t, repos.Moods.Delete(ctx, "pet-1", date("2025-04-01")), moods.ErrNotFound)
}

func TestUsersAndSessions(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	u := users.User{ID: "u1", Email: "ana@example.com", DisplayName: "Ana", PasswordHash: "hash", CreatedAt: t0}
	require.NoError(t, repos.Users.Create(ctx, u))
	assert.ErrorIs(t, repos.Users.Create(ctx, users.User{ID: "u2", Email: "ana@example.com", CreatedAt: t0}), users.ErrEmailTaken)

	got, err := repos.Users.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u, got)
	_, err = repos.Users.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, users.ErrNotFound)

	live := users.Session{Token: "t-live", UserID: "u1", CreatedAt: t0, ExpiresAt: t0.Add(time.Hour)}
	dead := users.Session{Token: "t-dead", UserID: "u1", CreatedAt: t0, ExpiresAt: t0.Add(-time.Minute)}
	require.NoError(t, repos.Sessions.CreateSession(ctx, live))
	require.NoError(t, repos.Sessions.CreateSession(ctx, dead))

	n, err := repos.Sessions.PurgeExpired(ctx, t0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	s, err := repos.Sessions.GetSession(ctx, "t-live")
	require.NoError(t, err)
	assert.Equal(t, live, s)
	_, err = repos.Sessions.GetSession(ctx, "t-dead")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestPreferencesRepo(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	_, err := repos.Preferences.Get(ctx, "u1")
	assert.ErrorIs(t, err, preferences.ErrNotFound)

	require.NoError(t, repos.Preferences.Put(ctx, preferences.Preferences{UserID: "u1", ActivePetID: "pet-1", UpdatedAt: t0}))
	require.NoError(t, repos.Preferences.Put(ctx, preferences.Preferences{UserID: "u1", ActivePetID: "pet-1", DarkMode: true, UpdatedAt: t0}))
	require.NoError(t, repos.Preferences.Put(ctx, preferences.Preferences{UserID: "u2", ActivePetID: "pet-9", UpdatedAt: t0}))

	require.NoError(t, repos.Preferences.ClearActivePet(ctx, "pet-1"))

	p, err := repos.Preferences.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, preferences.Preferences{UserID: "u1", DarkMode: true, UpdatedAt: t0}, p)

	p, err = repos.Preferences.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "pet-9", p.ActivePetID)
}

func TestSharesRepo(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	exp := t0.Add(24 * time.Hour)
	s := shares.Share{
		ID:          "s1",
		PetID:       "pet-1",
		OwnerUserID: "u1",
		Token:       "tok-1",
		Scopes:      []shares.Scope{shares.ScopeReportRead, shares.ScopeCalendarRead},
		Status:      shares.StatusActive,
		CreatedAt:   t0,
		UpdatedAt:   t0,
		ExpiresAt:   &exp,
	}
	require.NoError(t, repos.Shares.Create(ctx, s))

	got, err := repos.Shares.GetByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	rev := t0.Add(time.Hour)
	s.Status, s.RevokedAt, s.UpdatedAt = shares.StatusRevoked, &rev, rev
	require.NoError(t, repos.Shares.Update(ctx, s))

	list, err := repos.Shares.ListByPet(ctx, "pet-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, shares.StatusRevoked, list[0].Status)
	require.NotNil(t, list[0].RevokedAt)
	assert.True(t, list[0].RevokedAt.Equal(rev))

	_, err = repos.Shares.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, shares.ErrNotFound)
}
