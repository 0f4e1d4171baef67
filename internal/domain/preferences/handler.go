package preferences

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-exercise-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/preferences", func(pr chi.Router) {
		pr.Get("/", getPreferencesHandler(svc))
		pr.Put("/", updatePreferencesHandler(svc))
	})
}

type updatePreferencesRequest struct {
	ActivePetID *string `json:"active_pet_id"`
	DarkMode    *bool   `json:"dark_mode"`
}

type preferencesResponse struct {
	ActivePetID string     `json:"active_pet_id,omitempty"`
	DarkMode    bool       `json:"dark_mode"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func getPreferencesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		p, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

// updatePreferencesHandler godoc
// @Summary Actualizar preferencias
// @Description Cambia la mascota activa y/o el modo oscuro. `active_pet_id: ""` deja al usuario sin mascota activa.
// @Tags preferences
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Param payload body updatePreferencesRequest true "Campos a cambiar"
// @Success 200 {object} preferencesResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /me/preferences [put]
func updatePreferencesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updatePreferencesRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), userID, UpdateInput{
			ActivePetID: req.ActivePetID,
			DarkMode:    req.DarkMode,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

func toResponse(p Preferences) preferencesResponse {
	out := preferencesResponse{
		ActivePetID: p.ActivePetID,
		DarkMode:    p.DarkMode,
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
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
