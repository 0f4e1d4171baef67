package backup_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	mem "pet-exercise-tracker/internal/adapters/storage/memory"
	"pet-exercise-tracker/internal/domain/backup"
	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/platform/civil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	pets      *pets.Service
	exercises *exercises.Service
	moods     *moods.Service
	backup    *backup.Service
}

func newFixture() fixture {
	f := fixture{
		pets:      pets.NewService(mem.NewPetRepo()),
		exercises: exercises.NewService(mem.NewExerciseRepo()),
		moods:     moods.NewService(mem.NewMoodRepo()),
	}
	f.backup = backup.NewService(f.pets, f.exercises, f.moods)
	return f
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestExportImport_RoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.pets.Create(ctx, "alice", pets.CreateInput{Name: "Kira", Characteristics: "border collie", Age: 3, Weight: 18.5, HealthStatus: pets.HealthExcellent})
	require.NoError(t, err)

	cal := 120.0
	_, err = f.exercises.Log(ctx, p.ID, exercises.LogInput{Date: mustDate(t, "2024-01-10"), DurationMinutes: 30, Calories: &cal, Type: exercises.TypeRun, Intensity: exercises.IntensityHigh, Location: "park"})
	require.NoError(t, err)
	_, err = f.exercises.Log(ctx, p.ID, exercises.LogInput{Date: mustDate(t, "2024-01-11"), DurationMinutes: 20, Type: exercises.TypeWalk, Intensity: exercises.IntensityLow})
	require.NoError(t, err)
	_, err = f.moods.Log(ctx, p.ID, mustDate(t, "2024-01-10"), moods.MoodEnergetic, "zoomies")
	require.NoError(t, err)

	exported, err := f.backup.Export(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, exported, 1)
	require.Len(t, exported[0].Exercises, 2)

	payload, err := json.Marshal(exported)
	require.NoError(t, err)

	res, err := f.backup.Import(ctx, "bob", payload)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pets)
	assert.Equal(t, 2, res.Exercises)
	assert.Equal(t, 1, res.Moods)
	assert.Zero(t, res.Skipped)

	again, err := f.backup.Export(ctx, "bob")
	require.NoError(t, err)

	if diff := cmp.Diff(exported, again, cmpopts.IgnoreFields(backup.Record{}, "ID")); diff != "" {
		t.Fatalf("export after import differs (-alice +bob):\n%s", diff)
	}
	assert.NotEqual(t, exported[0].ID, again[0].ID, "el import crea ids nuevos")
}

func TestImport_LegacyShapes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	payload := `{
		"petData": "[{\"name\":\"Rex\",\"age\":\"4\",\"weight\":\"22.5\",\"healthStatus\":\"FAIR\",\"exercises\":[{\"date\":\"2024-02-01T10:00:00.000Z\",\"duration\":\"45\",\"type\":\"Hike\"},{\"date\":\"not-a-date\",\"duration\":10}],\"moods\":[{\"date\":\"2024-02-01\",\"mood\":2},{\"date\":\"2024-02-02\",\"mood\":\"furious\"}]},{\"name\":\"\"}]"
	}`

	res, err := f.backup.Import(ctx, "alice", []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pets)
	assert.Equal(t, 1, res.Exercises)
	assert.Equal(t, 1, res.Moods)
	assert.Equal(t, 3, res.Skipped, "fecha inválida, ánimo desconocido y mascota sin nombre")
	assert.Len(t, res.Errors, 3)

	list, err := f.pets.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4.0, list[0].Age)
	assert.Equal(t, 22.5, list[0].Weight)
	assert.Equal(t, pets.HealthFair, list[0].HealthStatus)

	entries, err := f.exercises.ListByPet(ctx, list[0].ID, exercises.ListFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, exercises.TypeHike, entries[0].Type)
	assert.Equal(t, exercises.EstimateCalories(45, exercises.IntensityModerate), entries[0].Calories)

	ms, err := f.moods.ListByPet(ctx, list[0].ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, moods.MoodCalm, ms[0].Mood)
}

func TestImport_SkipsNonFiniteNumbers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	payload := `[
		{"name": "Rex", "age": "NaN", "weight": "NaN"},
		{"name": "Kira", "weight": "12", "exercises": [
			{"date": "2024-01-01", "duration": 30, "calories": "Inf", "type": "walk"},
			{"date": "2024-01-02", "duration": "-Infinity", "type": "walk"},
			{"date": "2024-01-03", "duration": 20, "calories": 50, "type": "run"}
		]}
	]`

	res, err := f.backup.Import(ctx, "alice", []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pets)
	assert.Equal(t, 1, res.Exercises)
	assert.Equal(t, 3, res.Skipped)

	exported, err := f.backup.Export(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, exported, 1)
	assert.Equal(t, "Kira", exported[0].Name)
	require.Len(t, exported[0].Exercises, 1)
	assert.Equal(t, 50.0, exported[0].Exercises[0].Calories)

	_, err = json.Marshal(exported)
	assert.NoError(t, err, "el export tiene que poder serializarse")
}

func TestImport_YAML(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	doc := []backup.Record{{
		Name:         "Luna",
		HealthStatus: "good",
		Exercises:    []backup.Exercise{{Date: "2024-03-01", Duration: 15, Calories: 40, Type: "swim"}},
		Moods:        []backup.Mood{{Date: "2024-03-01", Mood: "happy"}},
	}}
	payload, err := yaml.Marshal(map[string]any{"pets": doc})
	require.NoError(t, err)

	res, err := f.backup.Import(ctx, "alice", payload)
	require.NoError(t, err)
	assert.Equal(t, backup.Result{Pets: 1, Exercises: 1, Moods: 1, PetIDs: res.PetIDs}, res)
}

func TestImport_RejectsGarbage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for name, payload := range map[string]string{
		"vacío":          "   ",
		"objeto sin key": `{"dogs": []}`,
		"escalar":        `42`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.backup.Import(ctx, "alice", []byte(payload))
			assert.ErrorIs(t, err, backup.ErrInvalidInput)
		})
	}

	_, err := f.backup.Import(ctx, "", []byte(`[]`))
	assert.ErrorIs(t, err, backup.ErrInvalidInput)
}
