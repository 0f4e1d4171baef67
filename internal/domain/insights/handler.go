package insights

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/middleware"
	"pet-exercise-tracker/internal/platform/civil"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Get("/pets/{petID}/calendar", calendarHandler(svc, petsSvc))
	r.Get("/pets/{petID}/stats", statsHandler(svc, petsSvc))
}

type CalendarDayResponse struct {
	Date      string           `json:"date"`
	Exercises int              `json:"exercises"`
	Minutes   int              `json:"minutes"`
	Calories  float64          `json:"calories"`
	Types     []exercises.Type `json:"types,omitempty"`
	Mood      moods.Mood       `json:"mood,omitempty"`
}

type TotalsResponse struct {
	Exercises  int     `json:"exercises"`
	Minutes    int     `json:"minutes"`
	Calories   float64 `json:"calories"`
	ActiveDays int     `json:"active_days"`
}

type CalendarResponse struct {
	PetID  string                `json:"pet_id"`
	Month  string                `json:"month"`
	Days   []CalendarDayResponse `json:"days"`
	Totals TotalsResponse        `json:"totals"`
}

type BucketResponse struct {
	Start     string  `json:"start"`
	Label     string  `json:"label"`
	Exercises int     `json:"exercises"`
	Minutes   int     `json:"minutes"`
	Calories  float64 `json:"calories"`
}

type TypeBreakdownResponse struct {
	Type      exercises.Type `json:"type"`
	Exercises int            `json:"exercises"`
	Minutes   int            `json:"minutes"`
	Calories  float64        `json:"calories"`
}

type StatsResponse struct {
	PetID                  string                  `json:"pet_id"`
	From                   string                  `json:"from"`
	To                     string                  `json:"to"`
	Group                  Group                   `json:"group"`
	Buckets                []BucketResponse        `json:"buckets"`
	Totals                 TotalsResponse          `json:"totals"`
	ByType                 []TypeBreakdownResponse `json:"by_type"`
	Moods                  map[moods.Mood]int      `json:"moods"`
	CurrentStreak          int                     `json:"current_streak"`
	LongestStreak          int                     `json:"longest_streak"`
	AvgMinutesPerActiveDay float64                 `json:"avg_minutes_per_active_day"`
}

// calendarHandler godoc
// @Summary Calendario mensual
// @Description Una celda por día del mes con cantidad de ejercicios, minutos, calorías y el ánimo del día.
// @Tags insights
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Param petID path string true "ID de la mascota"
// @Param month query string false "Mes YYYY-MM (por defecto el actual)"
// @Success 200 {object} CalendarResponse
// @Failure 400 {string} string "month must be YYYY-MM"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/calendar [get]
func calendarHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		ServeCalendar(w, r, svc, petID)
	}
}

// ServeCalendar lo reutiliza la vista pública de links compartidos.
func ServeCalendar(w http.ResponseWriter, r *http.Request, svc *Service, petID string) {
	month, err := ParseMonthParam(r, svc.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cal, err := svc.Calendar(r.Context(), petID, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ToCalendarResponse(cal))
}

// statsHandler godoc
// @Summary Estadísticas para gráficos
// @Description Agrupa ejercicios por día, semana (inicia lunes) o mes en [from, to]; incluye buckets vacíos, totales, desglose por tipo, distribución de ánimo y rachas. Por defecto últimos 30 días.
// @Tags insights
// @Produce json
// @Param Authorization header string false "Bearer token de sesión"
// @Param petID path string true "ID de la mascota"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param group query string false "day | week | month"
// @Success 200 {object} StatsResponse
// @Failure 400 {string} string "rango o agrupación inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/stats [get]
func statsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		q, err := ParseStatsQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		st, err := svc.Stats(r.Context(), petID, q)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToStatsResponse(st))
	}
}

// ParseMonthParam lee ?month=YYYY-MM; vacío = mes de now.
func ParseMonthParam(r *http.Request, now time.Time) (time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get("month"))
	if v == "" {
		return civil.MonthStart(now), nil
	}
	m, err := civil.ParseMonth(v)
	if err != nil {
		return time.Time{}, errors.New("month must be YYYY-MM")
	}
	return m, nil
}

// ParseStatsQuery lee from/to/group. Los defaults los aplica el servicio.
func ParseStatsQuery(r *http.Request) (StatsQuery, error) {
	q := r.URL.Query()
	var out StatsQuery

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := civil.ParseDate(v)
		if err != nil {
			return StatsQuery{}, errors.New("from must be YYYY-MM-DD")
		}
		out.From = t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := civil.ParseDate(v)
		if err != nil {
			return StatsQuery{}, errors.New("to must be YYYY-MM-DD")
		}
		out.To = t
	}
	out.Group = Group(strings.ToLower(strings.TrimSpace(q.Get("group"))))
	return out, nil
}

func ToCalendarResponse(c Calendar) CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(c.Days))
	for _, d := range c.Days {
		days = append(days, CalendarDayResponse{
			Date:      civil.Format(d.Date),
			Exercises: d.Exercises,
			Minutes:   d.Minutes,
			Calories:  d.Calories,
			Types:     d.Types,
			Mood:      d.Mood,
		})
	}
	return CalendarResponse{
		PetID:  c.PetID,
		Month:  c.Month.Format(civil.MonthLayout),
		Days:   days,
		Totals: toTotalsResponse(c.Totals),
	}
}

func ToStatsResponse(st Stats) StatsResponse {
	out := StatsResponse{
		PetID:                  st.PetID,
		From:                   civil.Format(st.From),
		To:                     civil.Format(st.To),
		Group:                  st.Group,
		Buckets:                make([]BucketResponse, 0, len(st.Buckets)),
		Totals:                 toTotalsResponse(st.Totals),
		ByType:                 make([]TypeBreakdownResponse, 0, len(st.ByType)),
		Moods:                  make(map[moods.Mood]int, len(st.Moods)),
		CurrentStreak:          st.CurrentStreak,
		LongestStreak:          st.LongestStreak,
		AvgMinutesPerActiveDay: st.AvgMinutesPerActiveDay,
	}
	for _, b := range st.Buckets {
		out.Buckets = append(out.Buckets, BucketResponse{
			Start:     civil.Format(b.Start),
			Label:     b.Label,
			Exercises: b.Exercises,
			Minutes:   b.Minutes,
			Calories:  b.Calories,
		})
	}
	for _, tb := range st.ByType {
		out.ByType = append(out.ByType, TypeBreakdownResponse(tb))
	}
	for _, mc := range st.Moods {
		out.Moods[mc.Mood] = mc.Count
	}
	return out
}

func toTotalsResponse(t Totals) TotalsResponse {
	return TotalsResponse(t)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
