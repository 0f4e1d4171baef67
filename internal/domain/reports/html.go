package reports

import (
	"embed"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"pet-exercise-tracker/internal/platform/civil"
)

//go:embed templates/report.html.tmpl
var templatesFS embed.FS

var reportTmpl = template.Must(template.New("report.html.tmpl").Funcs(template.FuncMap{
	"date":  func(t time.Time) string { return civil.Format(t) },
	"kcal":  func(c float64) string { return strconv.FormatFloat(c, 'f', 0, 64) },
	"one":   func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },
	"mood":  func(rep Report, d time.Time) string { return string(moodIndex(rep.Moods)[civil.Day(d)]) },
	"image": func(s string) template.URL { return safeImageURL(s) },
}).ParseFS(templatesFS, "templates/report.html.tmpl"))

// RenderHTML escribe la versión imprimible del reporte.
func RenderHTML(w io.Writer, rep Report) error {
	return reportTmpl.Execute(w, rep)
}

// safeImageURL deja pasar data URIs de imagen, que html/template bloquearía
// por defecto. La imagen ya fue validada al guardar la mascota.
func safeImageURL(s string) template.URL {
	switch {
	case strings.HasPrefix(s, "data:image/"),
		strings.HasPrefix(s, "https://"),
		strings.HasPrefix(s, "http://"):
		return template.URL(s)
	}
	return ""
}
