package backup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"pet-exercise-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/export", exportHandler(svc))
	r.Post("/me/import", importHandler(svc))
}

// exportHandler godoc
// @Summary Exportar respaldo
// @Description Descarga todas las mascotas del usuario con sus ejercicios y ánimos en formato anidado (compatible con import).
// @Tags backup
// @Produce json,application/yaml
// @Param Authorization header string false "Bearer token de sesión"
// @Param format query string false "json (default) | yaml"
// @Success 200 {array} Record
// @Failure 400 {string} string "format must be json or yaml"
// @Failure 401 {string} string "unauthorized"
// @Router /me/export [get]
func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
		if format == "" {
			format = "json"
		}
		if format != "json" && format != "yaml" {
			http.Error(w, "format must be json or yaml", http.StatusBadRequest)
			return
		}

		records, err := svc.Export(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var body []byte
		if format == "yaml" {
			body, err = yaml.Marshal(records)
			w.Header().Set("Content-Type", "application/yaml")
		} else {
			body, err = json.MarshalIndent(records, "", "  ")
			w.Header().Set("Content-Type", "application/json")
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Disposition", `attachment; filename="pets-backup.`+format+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

// importHandler godoc
// @Summary Importar respaldo
// @Description Acepta JSON o YAML: una lista de mascotas o un objeto con `pets`, `petProfiles` o `petData`. Cada mascota recibe un id nuevo; las entradas inválidas se saltean y se informan.
// @Tags backup
// @Accept json,application/yaml
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {object} Result
// @Failure 400 {string} string "payload inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 413 {string} string "payload too large"
// @Router /me/import [post]
func importHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUserID(w, r)
		if !ok {
			return
		}

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxImportBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}

		res, err := svc.Import(r.Context(), userID, payload)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
