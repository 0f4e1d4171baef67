package reports

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/platform/civil"
)

var csvHeader = []string{
	"date", "type", "intensity", "duration_minutes", "calories", "location", "notes", "mood",
}

// RenderCSV escribe una fila por ejercicio. La columna mood es el ánimo de ese día.
func RenderCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	moodByDay := moodIndex(rep.Moods)
	for _, e := range rep.Exercises {
		rec := []string{
			civil.Format(e.Date),
			string(e.Type),
			string(e.Intensity),
			strconv.Itoa(e.DurationMinutes),
			formatCalories(e.Calories),
			e.Location,
			e.Notes,
			string(moodByDay[e.Date]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func moodIndex(items []moods.Entry) map[time.Time]moods.Mood {
	out := make(map[time.Time]moods.Mood, len(items))
	for _, m := range items {
		out[civil.Day(m.Date)] = m.Mood
	}
	return out
}

func formatCalories(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
