package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-exercise-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name            string       `json:"name"`
	Image           string       `json:"image"`
	Characteristics string       `json:"characteristics"`
	Age             float64      `json:"age"`
	Weight          float64      `json:"weight"`
	HealthStatus    HealthStatus `json:"health_status" enums:"excellent,good,fair,poor"`
}

// updatePetRequest: punteros para PATCH, nil = no tocar.
type updatePetRequest struct {
	Name            *string       `json:"name"`
	Image           *string       `json:"image"`
	Characteristics *string       `json:"characteristics"`
	Age             *float64      `json:"age"`
	Weight          *float64      `json:"weight"`
	HealthStatus    *HealthStatus `json:"health_status"`
}

type Response struct {
	ID              string       `json:"id"`
	OwnerUserID     string       `json:"owner_user_id"`
	Name            string       `json:"name"`
	Image           string       `json:"image,omitempty"`
	Characteristics string       `json:"characteristics"`
	Age             float64      `json:"age"`
	Weight          float64      `json:"weight"`
	HealthStatus    HealthStatus `json:"health_status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea el perfil de una mascota del usuario autenticado. `image` acepta data URI (base64) o URL http(s).
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Param payload body createPetRequest true "Perfil de la mascota"
// @Success 201 {object} Response
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), userID, CreateInput{
			Name:            req.Name,
			Image:           req.Image,
			Characteristics: req.Characteristics,
			Age:             req.Age,
			Weight:          req.Weight,
			HealthStatus:    req.HealthStatus,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {array} Response
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]Response, 0, len(items))
		for _, p := range items {
			out = append(out, ToResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		p, err := svc.Authorize(r.Context(), chi.URLParam(r, "petID"), userID)
		if err != nil {
			WriteLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := svc.Authorize(r.Context(), petID, userID); err != nil {
			WriteLookupError(w, err)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updatePetRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), petID, UpdateInput{
			Name:            req.Name,
			Image:           req.Image,
			Characteristics: req.Characteristics,
			Age:             req.Age,
			Weight:          req.Weight,
			HealthStatus:    req.HealthStatus,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(updated))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra el perfil y en cascada sus ejercicios, estados de ánimo y links compartidos. Si era la mascota activa del usuario, se limpia de sus preferencias.
// @Tags pets
// @Param Authorization header string false "Bearer token de sesión"
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := svc.Authorize(r.Context(), petID, userID); err != nil {
			WriteLookupError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), petID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// WriteLookupError traduce errores de Authorize/GetByID a status HTTP.
// Lo usan también los módulos que cuelgan de /pets/{petID}.
func WriteLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		WriteLookupError(w, err)
	}
}

// ToResponse es público para que reports/backup reutilicen la misma forma JSON.
func ToResponse(p Pet) Response {
	return Response{
		ID:              p.ID,
		OwnerUserID:     p.OwnerUserID,
		Name:            p.Name,
		Image:           p.Image,
		Characteristics: p.Characteristics,
		Age:             p.Age,
		Weight:          p.Weight,
		HealthStatus:    p.HealthStatus,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
