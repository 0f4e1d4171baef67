package reports

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/insights"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/platform/civil"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat: vacío = json.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatHTML, FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: format must be json, html, csv or xlsx", ErrInvalidInput)
}

func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Attachment indica si el navegador debe descargarlo en vez de mostrarlo.
func (f Format) Attachment() bool {
	return f == FormatCSV || f == FormatXLSX
}

// Filename sugerido: <mascota>-<from>_<to>.<ext>
func Filename(rep Report, f Format) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, rep.Pet.Name)
	name = strings.Trim(name, "-")
	if name == "" {
		name = "pet"
	}
	return fmt.Sprintf("%s-%s_%s.%s", name, civil.Format(rep.From), civil.Format(rep.To), f)
}

func Render(w io.Writer, rep Report, f Format) error {
	switch f {
	case FormatHTML:
		return RenderHTML(w, rep)
	case FormatCSV:
		return RenderCSV(w, rep)
	case FormatXLSX:
		return RenderXLSX(w, rep)
	case FormatJSON, "":
		return RenderJSON(w, rep)
	}
	return fmt.Errorf("%w: unknown format %q", ErrInvalidInput, f)
}

// Document es la forma JSON del reporte.
type Document struct {
	Pet         pets.Response          `json:"pet"`
	From        string                 `json:"from"`
	To          string                 `json:"to"`
	Exercises   []exercises.Response   `json:"exercises"`
	Moods       []moods.Response       `json:"moods"`
	Stats       insights.StatsResponse `json:"stats"`
	GeneratedAt string                 `json:"generated_at"`
}

func ToDocument(rep Report) Document {
	doc := Document{
		Pet:         pets.ToResponse(rep.Pet),
		From:        civil.Format(rep.From),
		To:          civil.Format(rep.To),
		Exercises:   make([]exercises.Response, 0, len(rep.Exercises)),
		Moods:       make([]moods.Response, 0, len(rep.Moods)),
		Stats:       insights.ToStatsResponse(rep.Stats),
		GeneratedAt: rep.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, e := range rep.Exercises {
		doc.Exercises = append(doc.Exercises, exercises.ToResponse(e))
	}
	for _, m := range rep.Moods {
		doc.Moods = append(doc.Moods, moods.ToResponse(m))
	}
	return doc
}

func RenderJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToDocument(rep))
}
