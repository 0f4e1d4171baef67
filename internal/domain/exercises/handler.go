package exercises

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/middleware"
	"pet-exercise-tracker/internal/platform/civil"

	"github.com/go-chi/chi/v5"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/exercises", func(er chi.Router) {
		er.Post("/", logExerciseHandler(svc, petsSvc))
		er.Get("/", listExercisesHandler(svc, petsSvc))

		er.Get("/{entryID}", getExerciseHandler(svc, petsSvc))
		er.Patch("/{entryID}", updateExerciseHandler(svc, petsSvc))
		er.Delete("/{entryID}", deleteExerciseHandler(svc, petsSvc))
	})
}

// logExerciseRequest es el cuerpo para registrar una actividad.
type logExerciseRequest struct {
	Date            string    `json:"date"` // YYYY-MM-DD
	DurationMinutes int       `json:"duration_minutes"`
	Calories        *float64  `json:"calories"` // opcional, se estima si falta
	Type            Type      `json:"type" enums:"walk,run,play,fetch,swim,hike,training,other"`
	Intensity       Intensity `json:"intensity" enums:"low,moderate,high"`
	Notes           string    `json:"notes"`
	Location        string    `json:"location"`
}

type updateExerciseRequest struct {
	Date            *string    `json:"date"`
	DurationMinutes *int       `json:"duration_minutes"`
	Calories        *float64   `json:"calories"`
	Type            *Type      `json:"type"`
	Intensity       *Intensity `json:"intensity"`
	Notes           *string    `json:"notes"`
	Location        *string    `json:"location"`
}

// Response representa una actividad devuelta por la API.
type Response struct {
	ID              string    `json:"id"`
	PetID           string    `json:"pet_id"`
	Date            string    `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	Calories        float64   `json:"calories"`
	Type            Type      `json:"type"`
	Intensity       Intensity `json:"intensity"`
	Notes           string    `json:"notes"`
	Location        string    `json:"location"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// logExerciseHandler godoc
// @Summary Registrar ejercicio
// @Description Registra una actividad para la mascota. Solo el dueño. Si `calories` no viene se estima por duración e intensidad. La fecha no puede ser futura.
// @Tags exercises
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Param petID path string true "ID de la mascota"
// @Param payload body logExerciseRequest true "Actividad; date en formato YYYY-MM-DD"
// @Success 201 {object} Response
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/exercises [post]
func logExerciseHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		var req logExerciseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := civil.ParseDate(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e, err := svc.Log(r.Context(), petID, LogInput{
			Date:            date,
			DurationMinutes: req.DurationMinutes,
			Calories:        req.Calories,
			Type:            req.Type,
			Intensity:       req.Intensity,
			Notes:           req.Notes,
			Location:        req.Location,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(e))
	}
}

// listExercisesHandler godoc
// @Summary Listar ejercicios de una mascota
// @Description Lista actividades en orden cronológico. Permite filtrar por tipos, rango de fechas y texto en notas/lugar.
// @Tags exercises
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Param petID path string true "ID de la mascota"
// @Param limit query int false "Máximo a devolver (1-500). Por defecto 100"
// @Param types query string false "CSV de tipos (ej: walk,run)"
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Param q query string false "Texto libre en notas/lugar"
// @Success 200 {array} Response
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/exercises [get]
func listExercisesHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		filter, err := ParseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), petID, filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, e := range items {
			out = append(out, ToResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getExerciseHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		e, err := svc.GetForPet(r.Context(), petID, chi.URLParam(r, "entryID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(e))
	}
}

func updateExerciseHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateExerciseRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			DurationMinutes: req.DurationMinutes,
			Calories:        req.Calories,
			Type:            req.Type,
			Intensity:       req.Intensity,
			Notes:           req.Notes,
			Location:        req.Location,
		}
		if req.Date != nil {
			d, err := civil.ParseDate(*req.Date)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.Date = &d
		}

		e, err := svc.Update(r.Context(), petID, chi.URLParam(r, "entryID"), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(e))
	}
}

func deleteExerciseHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), petID, chi.URLParam(r, "entryID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ParseListFilter lee limit/types/from/to/q de la query string.
func ParseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()

	limit := defaultListLimit
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxListLimit {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// types=walk,run
	if v := strings.TrimSpace(q.Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			t := Type(strings.ToLower(strings.TrimSpace(p)))
			if t == "" {
				continue
			}
			if !t.Valid() {
				return ListFilter{}, errors.New("unknown type " + string(t))
			}
			filter.Types = append(filter.Types, t)
		}
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := civil.ParseDate(v)
		if err != nil {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := civil.ParseDate(v)
		if err != nil {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.To = &t
	}

	filter.Query = strings.TrimSpace(q.Get("q"))
	return filter, nil
}

func ToResponse(e Entry) Response {
	return Response{
		ID:              e.ID,
		PetID:           e.PetID,
		Date:            civil.Format(e.Date),
		DurationMinutes: e.DurationMinutes,
		Calories:        e.Calories,
		Type:            e.Type,
		Intensity:       e.Intensity,
		Notes:           e.Notes,
		Location:        e.Location,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "exercise entry not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
