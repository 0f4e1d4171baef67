package reports

import (
	"fmt"
	"io"

	"pet-exercise-tracker/internal/platform/civil"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Summary"
	SheetExercises = "Exercises"
	SheetMoods     = "Moods"
)

// RenderXLSX arma un libro con resumen, ejercicios y ánimos.
func RenderXLSX(w io.Writer, rep Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	if err := writeSummarySheet(f, rep); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}

	exRows := make([][]interface{}, 0, len(rep.Exercises))
	for _, e := range rep.Exercises {
		exRows = append(exRows, []interface{}{
			civil.Format(e.Date), string(e.Type), string(e.Intensity),
			e.DurationMinutes, e.Calories, e.Location, e.Notes,
		})
	}
	if err := writeTableSheet(f, SheetExercises,
		[]interface{}{"date", "type", "intensity", "duration_minutes", "calories", "location", "notes"},
		exRows); err != nil {
		return fmt.Errorf("exercises sheet: %w", err)
	}

	moodRows := make([][]interface{}, 0, len(rep.Moods))
	for _, m := range rep.Moods {
		moodRows = append(moodRows, []interface{}{civil.Format(m.Date), string(m.Mood), m.Note})
	}
	if err := writeTableSheet(f, SheetMoods, []interface{}{"date", "mood", "note"}, moodRows); err != nil {
		return fmt.Errorf("moods sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func writeSummarySheet(f *excelize.File, rep Report) error {
	st := rep.Stats
	rows := [][]interface{}{
		{"pet", rep.Pet.Name},
		{"health_status", string(rep.Pet.HealthStatus)},
		{"age", rep.Pet.Age},
		{"weight", rep.Pet.Weight},
		{"from", civil.Format(rep.From)},
		{"to", civil.Format(rep.To)},
		{"exercises", st.Totals.Exercises},
		{"minutes", st.Totals.Minutes},
		{"calories", st.Totals.Calories},
		{"active_days", st.Totals.ActiveDays},
		{"current_streak", st.CurrentStreak},
		{"longest_streak", st.LongestStreak},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeTableSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	// StreamWriter: los reportes de rangos largos pueden tener miles de filas.
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range rows {
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err := sw.SetRow(cellAddr, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}
