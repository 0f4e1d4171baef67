package reports

import (
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/insights"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
)

// Report es la vista imprimible/compartible de una mascota en un rango.
type Report struct {
	Pet pets.Pet

	From time.Time
	To   time.Time

	Exercises []exercises.Entry // orden cronológico
	Moods     []moods.Entry

	Stats insights.Stats

	GeneratedAt time.Time
}
