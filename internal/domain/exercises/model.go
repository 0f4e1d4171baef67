package exercises

import "time"

const (
	MaxDurationMinutes = 24 * 60
	MaxNotesLen        = 1000
	MaxLocationLen     = 200
)

// Entry es una actividad registrada para una mascota en un día.
type Entry struct {
	ID    string
	PetID string

	Date time.Time // día de calendario, medianoche UTC

	DurationMinutes int
	Calories        float64

	Type      Type
	Intensity Intensity

	Notes    string
	Location string

	CreatedAt time.Time
	UpdatedAt time.Time
}
