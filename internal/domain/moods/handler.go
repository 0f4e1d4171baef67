package moods

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/middleware"
	"pet-exercise-tracker/internal/platform/civil"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/moods", func(mr chi.Router) {
		mr.Post("/", logMoodHandler(svc, petsSvc))
		mr.Get("/", listMoodsHandler(svc, petsSvc))

		// Un ánimo por día: la fecha es el identificador.
		mr.Put("/{date}", putMoodHandler(svc, petsSvc))
		mr.Delete("/{date}", deleteMoodHandler(svc, petsSvc))
	})
}

type logMoodRequest struct {
	Date string `json:"date"`
	Mood Mood   `json:"mood" enums:"happy,calm,energetic,anxious,tired,sad"`
	Note string `json:"note"`
}

type putMoodRequest struct {
	Mood Mood   `json:"mood"`
	Note string `json:"note"`
}

type Response struct {
	PetID      string    `json:"pet_id"`
	Date       string    `json:"date"`
	Mood       Mood      `json:"mood"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// logMoodHandler godoc
// @Summary Registrar ánimo del día
// @Description Registra el ánimo de la mascota para una fecha. Si ya existía uno ese día, se reemplaza.
// @Tags moods
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Param petID path string true "ID de la mascota"
// @Param payload body logMoodRequest true "Ánimo; date en formato YYYY-MM-DD"
// @Success 200 {object} Response
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/moods [post]
func logMoodHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		var req logMoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		date, err := civil.ParseDate(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e, err := svc.Log(r.Context(), petID, date, req.Mood, req.Note)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(e))
	}
}

func putMoodHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		date, err := civil.ParseDate(chi.URLParam(r, "date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var req putMoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Log(r.Context(), petID, date, req.Mood, req.Note)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(e))
	}
}

func listMoodsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		from, to, err := parseRange(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), petID, from, to)
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

func deleteMoodHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		date, err := civil.ParseDate(chi.URLParam(r, "date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), petID, date); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseRange(r *http.Request) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := civil.ParseDate(v)
		if err != nil {
			return nil, nil, errors.New("from must be YYYY-MM-DD")
		}
		from = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := civil.ParseDate(v)
		if err != nil {
			return nil, nil, errors.New("to must be YYYY-MM-DD")
		}
		to = &t
	}
	return from, to, nil
}

func ToResponse(e Entry) Response {
	return Response{
		PetID:      e.PetID,
		Date:       civil.Format(e.Date),
		Mood:       e.Mood,
		Note:       e.Note,
		RecordedAt: e.RecordedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "mood entry not found", http.StatusNotFound)
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
