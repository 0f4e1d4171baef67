package reports

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/insights"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/domain/shares"
	"pet-exercise-tracker/internal/middleware"
	"pet-exercise-tracker/internal/platform/civil"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, sharesSvc *shares.Service, insightsSvc *insights.Service) {
	r.Get("/pets/{petID}/report", petReportHandler(svc, petsSvc))

	// Públicas: el token del share es la credencial.
	r.Route("/shared/{token}", func(sr chi.Router) {
		sr.Get("/report", sharedReportHandler(svc, sharesSvc))
		sr.Get("/calendar", sharedCalendarHandler(insightsSvc, sharesSvc))
	})
}

// petReportHandler godoc
// @Summary Reporte de la mascota
// @Description Perfil, totales, ejercicios, ánimos y estadísticas en [from, to] (por defecto últimos 30 días). `format=html` devuelve la versión imprimible; csv y xlsx se descargan como adjunto.
// @Tags reports
// @Produce json,html,text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param Authorization header string false "Bearer token de sesión"
// @Param petID path string true "ID de la mascota"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param format query string false "json | html | csv | xlsx"
// @Success 200 {object} Document
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/report [get]
func petReportHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.Authorize(r.Context(), petID, userID); err != nil {
			pets.WriteLookupError(w, err)
			return
		}

		serveReport(w, r, svc, petID)
	}
}

// sharedReportHandler godoc
// @Summary Reporte compartido (público)
// @Description Igual que el reporte del dueño, accedido por token de share con scope `report:read`. Token inexistente, revocado o vencido responde 404.
// @Tags reports
// @Produce json,html,text/csv
// @Param token path string true "Token del link compartido"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param format query string false "json | html | csv | xlsx"
// @Success 200 {object} Document
// @Failure 403 {string} string "scope not granted"
// @Failure 404 {string} string "not found"
// @Router /shared/{token}/report [get]
func sharedReportHandler(svc *Service, sharesSvc *shares.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sh, ok := resolveShare(w, r, sharesSvc, shares.ScopeReportRead)
		if !ok {
			return
		}
		serveReport(w, r, svc, sh.PetID)
	}
}

// sharedCalendarHandler godoc
// @Summary Calendario compartido (público)
// @Description Calendario mensual de la mascota, accedido por token de share con scope `calendar:read`. Token inexistente, revocado o vencido responde 404.
// @Tags reports
// @Produce json
// @Param token path string true "Token del link compartido"
// @Param month query string false "Mes YYYY-MM (por defecto el actual)"
// @Success 200 {object} insights.CalendarResponse
// @Failure 400 {string} string "month must be YYYY-MM"
// @Failure 403 {string} string "scope not granted"
// @Failure 404 {string} string "not found"
// @Router /shared/{token}/calendar [get]
func sharedCalendarHandler(insightsSvc *insights.Service, sharesSvc *shares.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sh, ok := resolveShare(w, r, sharesSvc, shares.ScopeCalendarRead)
		if !ok {
			return
		}
		insights.ServeCalendar(w, r, insightsSvc, sh.PetID)
	}
}

func resolveShare(w http.ResponseWriter, r *http.Request, sharesSvc *shares.Service, scope shares.Scope) (shares.Share, bool) {
	sh, err := sharesSvc.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, shares.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return shares.Share{}, false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return shares.Share{}, false
	}
	if !shares.HasScope(sh, scope) {
		http.Error(w, "scope not granted", http.StatusForbidden)
		return shares.Share{}, false
	}
	return sh, true
}

func serveReport(w http.ResponseWriter, r *http.Request, svc *Service, petID string) {
	q := r.URL.Query()

	format, err := ParseFormat(q.Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	from, err := parseOptionalDate(q.Get("from"))
	if err != nil {
		http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	to, err := parseOptionalDate(q.Get("to"))
	if err != nil {
		http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	rep, err := svc.Build(r.Context(), petID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, pets.ErrNotFound):
			http.Error(w, "pet not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	// Render a buffer: si falla a mitad no queremos un 200 con body roto.
	var buf bytes.Buffer
	if err := Render(&buf, rep, format); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if format.Attachment() {
		w.Header().Set("Content-Disposition", `attachment; filename="`+Filename(rep, format)+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func parseOptionalDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	return civil.ParseDate(v)
}
