package main

import (
	"fmt"
	"strconv"
	"strings"

	"pet-exercise-tracker/internal/domain/reports"
	"pet-exercise-tracker/internal/platform/civil"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(18)

	cellStyle = lipgloss.NewStyle().PaddingRight(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// renderText arma el reporte para terminal. Sin color si stdout no es TTY
// (lipgloss detecta el perfil solo).
func renderText(rep reports.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(rep.Pet.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(civil.Format(rep.From) + " → " + civil.Format(rep.To)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Resumen"))
	b.WriteString("\n")
	st := rep.Stats
	rows := [][2]string{
		{"Ejercicios", strconv.Itoa(st.Totals.Exercises)},
		{"Minutos", strconv.Itoa(st.Totals.Minutes)},
		{"Calorías", fmt.Sprintf("%.0f", st.Totals.Calories)},
		{"Días activos", strconv.Itoa(st.Totals.ActiveDays)},
		{"Racha actual", strconv.Itoa(st.CurrentStreak)},
		{"Racha más larga", strconv.Itoa(st.LongestStreak)},
		{"Min/día activo", fmt.Sprintf("%.1f", st.AvgMinutesPerActiveDay)},
	}
	for _, r := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), r[1]))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Ejercicios"))
	b.WriteString("\n")
	if len(rep.Exercises) == 0 {
		b.WriteString(mutedStyle.Render("Sin ejercicios en el rango."))
		b.WriteString("\n")
	} else {
		table := [][]string{{"Fecha", "Tipo", "Intensidad", "Min", "kcal", "Lugar"}}
		for _, e := range rep.Exercises {
			table = append(table, []string{
				civil.Format(e.Date),
				string(e.Type),
				string(e.Intensity),
				strconv.Itoa(e.DurationMinutes),
				fmt.Sprintf("%.0f", e.Calories),
				e.Location,
			})
		}
		b.WriteString(renderColumns(table))
	}

	b.WriteString(sectionStyle.Render("Ánimo"))
	b.WriteString("\n")
	if len(rep.Moods) == 0 {
		b.WriteString(mutedStyle.Render("Sin registros de ánimo."))
		b.WriteString("\n")
	} else {
		table := [][]string{{"Fecha", "Ánimo", "Nota"}}
		for _, m := range rep.Moods {
			table = append(table, []string{civil.Format(m.Date), string(m.Mood), m.Note})
		}
		b.WriteString(renderColumns(table))
	}

	return b.String()
}

// renderColumns alinea por columna: cada columna es un bloque de lipgloss
// con el ancho de su celda más larga.
func renderColumns(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	cols := make([]string, len(rows[0]))
	for c := range rows[0] {
		cells := make([]string, len(rows))
		for r := range rows {
			cell := ""
			if c < len(rows[r]) {
				cell = rows[r][c]
			}
			if r == 0 {
				cell = lipgloss.NewStyle().Bold(true).Render(cell)
			}
			cells[r] = cell
		}
		cols[c] = cellStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cells...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n"
}
