package main

import (
	"strings"
	"testing"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/insights"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/domain/reports"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestRenderText_IncludesSections(t *testing.T) {
	rep := reports.Report{
		Pet:  pets.Pet{Name: "Milo"},
		From: day("2025-03-01"),
		To:   day("2025-03-07"),
		Exercises: []exercises.Entry{
			{Date: day("2025-03-02"), Type: exercises.TypeHike, Intensity: exercises.IntensityHigh, DurationMinutes: 90, Calories: 720, Location: "Cerro"},
		},
		Moods: []moods.Entry{{Date: day("2025-03-02"), Mood: moods.MoodTired, Note: "durmió toda la tarde"}},
		Stats: insights.Stats{
			Totals:        insights.Totals{Exercises: 1, Minutes: 90, Calories: 720, ActiveDays: 1},
			LongestStreak: 1,
		},
	}

	out := renderText(rep)
	for _, want := range []string{"Milo", "2025-03-01", "Resumen", "hike", "Cerro", "720", "tired", "durmió toda la tarde"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Sin ejercicios")
}

func TestRenderText_Empty(t *testing.T) {
	out := renderText(reports.Report{Pet: pets.Pet{Name: "Luna"}, From: day("2025-03-01"), To: day("2025-03-01")})
	assert.Contains(t, out, "Sin ejercicios en el rango.")
	assert.Contains(t, out, "Sin registros de ánimo.")
	assert.True(t, strings.HasPrefix(stripANSI(out), "Luna"))
}

// stripANSI quita secuencias de color por si el entorno de test las emite.
func stripANSI(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			in = true
		case in && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestOptionalDate(t *testing.T) {
	d, err := optionalDate("--from", "")
	assert.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = optionalDate("--from", "03/01/2025")
	assert.EqualError(t, err, "--from must be YYYY-MM-DD")
}
