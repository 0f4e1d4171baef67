package shares

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// PetOwnerLookup es la parte de pets.Service que usan los handlers.
type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petOwners PetOwnerLookup) {
	// Owner actions scoped by pet
	r.Route("/pets/{petID}/shares", func(sr chi.Router) {
		sr.Post("/", createShareHandler(svc, petOwners))
		sr.Get("/", listSharesByPetHandler(svc, petOwners))
	})

	r.Post("/shares/{shareID}/revoke", revokeShareHandler(svc))
}

type createShareRequest struct {
	Scopes   []Scope `json:"scopes" enums:"report:read,calendar:read"`
	TTLHours int     `json:"ttl_hours"` // 0 = no vence
}

type shareResponse struct {
	ID          string     `json:"id"`
	PetID       string     `json:"pet_id"`
	OwnerUserID string     `json:"owner_user_id"`
	Token       string     `json:"token"`
	Scopes      []Scope    `json:"scopes"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
}

// createShareHandler godoc
// @Summary Crear link compartido
// @Description Crea un token público de solo lectura para el reporte y/o calendario de la mascota. Sin scopes se asume `report:read`.
// @Tags shares
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Param petID path string true "ID de la mascota"
// @Param payload body createShareRequest false "Scopes y vigencia"
// @Success 201 {object} shareResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/shares [post]
func createShareHandler(svc *Service, petOwners PetOwnerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		if !requireOwner(w, r, petOwners, petID, claims.UserID) {
			return
		}

		// Body opcional: sin body se crea con scopes por defecto.
		var req createShareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.TTLHours < 0 {
			http.Error(w, "ttl_hours must be >= 0", http.StatusBadRequest)
			return
		}

		sh, err := svc.Create(r.Context(), CreateInput{
			PetID:       petID,
			OwnerUserID: claims.UserID,
			Scopes:      req.Scopes,
			TTL:         time.Duration(req.TTLHours) * time.Hour,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toShareResponse(sh))
	}
}

func listSharesByPetHandler(svc *Service, petOwners PetOwnerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		if !requireOwner(w, r, petOwners, petID, claims.UserID) {
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]shareResponse, 0, len(items))
		for _, sh := range items {
			out = append(out, toShareResponse(sh))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func revokeShareHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sh, err := svc.Revoke(r.Context(), chi.URLParam(r, "shareID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toShareResponse(sh))
	}
}

func requireOwner(w http.ResponseWriter, r *http.Request, petOwners PetOwnerLookup, petID, userID string) bool {
	ownerID, err := petOwners.OwnerOf(r.Context(), petID)
	if err != nil && !errors.Is(err, pets.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return false
	}
	if err != nil || strings.TrimSpace(ownerID) == "" {
		http.Error(w, "pet not found", http.StatusNotFound)
		return false
	}
	if ownerID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func toShareResponse(sh Share) shareResponse {
	return shareResponse{
		ID:          sh.ID,
		PetID:       sh.PetID,
		OwnerUserID: sh.OwnerUserID,
		Token:       sh.Token,
		Scopes:      sh.Scopes,
		Status:      sh.Status,
		CreatedAt:   sh.CreatedAt,
		UpdatedAt:   sh.UpdatedAt,
		ExpiresAt:   sh.ExpiresAt,
		RevokedAt:   sh.RevokedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
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
