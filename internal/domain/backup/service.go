package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/platform/civil"

	"gopkg.in/yaml.v3"
)

var ErrInvalidInput = errors.New("invalid input")

// MaxImportBytes acota el payload de import (las imágenes van embebidas).
const MaxImportBytes = 32 << 20

type PetStore interface {
	Create(ctx context.Context, ownerUserID string, in pets.CreateInput) (pets.Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error)
}

type ExerciseStore interface {
	Log(ctx context.Context, petID string, in exercises.LogInput) (exercises.Entry, error)
	ListByPet(ctx context.Context, petID string, filter exercises.ListFilter) ([]exercises.Entry, error)
}

type MoodStore interface {
	Log(ctx context.Context, petID string, date time.Time, mood moods.Mood, note string) (moods.Entry, error)
	ListByPet(ctx context.Context, petID string, from, to *time.Time) ([]moods.Entry, error)
}

type Service struct {
	pets      PetStore
	exercises ExerciseStore
	moods     MoodStore
}

func NewService(p PetStore, ex ExerciseStore, md MoodStore) *Service {
	return &Service{pets: p, exercises: ex, moods: md}
}

// Result resume un import. Skipped cuenta mascotas y entradas descartadas.
type Result struct {
	Pets      int      `json:"pets"`
	Exercises int      `json:"exercises"`
	Moods     int      `json:"moods"`
	Skipped   int      `json:"skipped"`
	PetIDs    []string `json:"pet_ids"`
	Errors    []string `json:"errors,omitempty"`
}

// maxReportedErrors limita Result.Errors en imports muy sucios.
const maxReportedErrors = 50

func (r *Result) skip(format string, args ...any) {
	r.Skipped++
	if len(r.Errors) < maxReportedErrors {
		r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	}
}

// Export devuelve todas las mascotas del usuario en formato anidado.
func (s *Service) Export(ctx context.Context, ownerUserID string) ([]Record, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, ErrInvalidInput
	}

	items, err := s.pets.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	out := make([]Record, 0, len(items))
	for _, p := range items {
		entries, err := s.exercises.ListByPet(ctx, p.ID, exercises.ListFilter{})
		if err != nil {
			return nil, fmt.Errorf("list exercises of %s: %w", p.ID, err)
		}
		moodEntries, err := s.moods.ListByPet(ctx, p.ID, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("list moods of %s: %w", p.ID, err)
		}
		out = append(out, toRecord(p, entries, moodEntries))
	}
	return out, nil
}

func toRecord(p pets.Pet, entries []exercises.Entry, moodEntries []moods.Entry) Record {
	rec := Record{
		ID:              p.ID,
		Name:            p.Name,
		Image:           p.Image,
		Characteristics: p.Characteristics,
		Age:             p.Age,
		Weight:          p.Weight,
		HealthStatus:    string(p.HealthStatus),
		Exercises:       make([]Exercise, 0, len(entries)),
		Moods:           make([]Mood, 0, len(moodEntries)),
	}
	for _, e := range entries {
		rec.Exercises = append(rec.Exercises, Exercise{
			Date:      civil.Format(e.Date),
			Duration:  e.DurationMinutes,
			Calories:  e.Calories,
			Type:      string(e.Type),
			Intensity: string(e.Intensity),
			Notes:     e.Notes,
			Location:  e.Location,
		})
	}
	for _, m := range moodEntries {
		rec.Moods = append(rec.Moods, Mood{
			Date: civil.Format(m.Date),
			Mood: string(m.Mood),
			Note: m.Note,
		})
	}
	return rec
}

// Import crea mascotas nuevas (ids nuevos) para ownerUserID a partir de un
// respaldo JSON o YAML. Lo inválido se saltea y se cuenta; solo falla si el
// payload entero no se puede leer o si el storage devuelve error.
func (s *Service) Import(ctx context.Context, ownerUserID string, payload []byte) (Result, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Result{}, ErrInvalidInput
	}

	items, err := decodePayload(payload)
	if err != nil {
		return Result{}, err
	}

	res := Result{PetIDs: make([]string, 0, len(items))}
	for i, raw := range items {
		var rec rawRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			res.skip("pet %d: %v", i, err)
			continue
		}

		p, err := s.pets.Create(ctx, ownerUserID, pets.CreateInput{
			Name:            rec.Name,
			Image:           rec.Image,
			Characteristics: rec.Characteristics,
			Age:             rec.Age.value(),
			Weight:          rec.Weight.value(),
			HealthStatus:    healthStatus(rec.HealthStatus),
		})
		if err != nil {
			if errors.Is(err, pets.ErrInvalidInput) {
				res.skip("pet %d: %v", i, err)
				continue
			}
			return res, err
		}
		res.Pets++
		res.PetIDs = append(res.PetIDs, p.ID)

		if err := s.importExercises(ctx, p.ID, i, rec.Exercises, &res); err != nil {
			return res, err
		}
		if err := s.importMoods(ctx, p.ID, i, rec.Moods, &res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (s *Service) importExercises(ctx context.Context, petID string, petIdx int, items []json.RawMessage, res *Result) error {
	for j, raw := range items {
		var ex rawExercise
		if err := json.Unmarshal(raw, &ex); err != nil {
			res.skip("pet %d exercise %d: %v", petIdx, j, err)
			continue
		}
		date, err := legacyDate(ex.Date)
		if err != nil {
			res.skip("pet %d exercise %d: %v", petIdx, j, err)
			continue
		}

		in := exercises.LogInput{
			Date:            date,
			DurationMinutes: int(ex.Duration.value()),
			Type:            exerciseType(ex.Type),
			Intensity:       intensity(ex.Intensity),
			Notes:           ex.Notes,
			Location:        ex.Location,
		}
		// 0 o ausente = el formulario viejo no lo pedía; se estima.
		if c := ex.Calories.value(); c > 0 {
			in.Calories = &c
		}

		if _, err := s.exercises.Log(ctx, petID, in); err != nil {
			if errors.Is(err, exercises.ErrInvalidInput) {
				res.skip("pet %d exercise %d: %v", petIdx, j, err)
				continue
			}
			return err
		}
		res.Exercises++
	}
	return nil
}

func (s *Service) importMoods(ctx context.Context, petID string, petIdx int, items []json.RawMessage, res *Result) error {
	for j, raw := range items {
		var m rawMood
		if err := json.Unmarshal(raw, &m); err != nil {
			res.skip("pet %d mood %d: %v", petIdx, j, err)
			continue
		}
		date, err := legacyDate(m.Date)
		if err != nil {
			res.skip("pet %d mood %d: %v", petIdx, j, err)
			continue
		}

		if _, err := s.moods.Log(ctx, petID, date, moodFromCode(m.Mood), m.Note); err != nil {
			if errors.Is(err, moods.ErrInvalidInput) {
				res.skip("pet %d mood %d: %v", petIdx, j, err)
				continue
			}
			return err
		}
		res.Moods++
	}
	return nil
}

// decodePayload acepta JSON o YAML: una lista de mascotas o un objeto con
// alguna de LegacyKeys. YAML se normaliza a JSON para tener una sola ruta de parseo.
func decodePayload(payload []byte) ([]json.RawMessage, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidInput)
	}

	if !json.Valid(payload) {
		var doc any
		if err := yaml.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("%w: payload is neither json nor yaml: %v", ErrInvalidInput, err)
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml payload: %v", ErrInvalidInput, err)
		}
		payload = b
	}

	var list []json.RawMessage
	if err := json.Unmarshal(payload, &list); err == nil {
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err != nil {
		return nil, fmt.Errorf("%w: expected a list of pets or an object", ErrInvalidInput)
	}
	for _, k := range LegacyKeys {
		v, ok := obj[k]
		if !ok {
			continue
		}
		// Algunas versiones guardaban la lista como string JSON dentro del valor.
		var nested string
		if err := json.Unmarshal(v, &nested); err == nil {
			v = json.RawMessage(nested)
		}
		if err := json.Unmarshal(v, &list); err != nil {
			return nil, fmt.Errorf("%w: %s is not a list", ErrInvalidInput, k)
		}
		return list, nil
	}
	return nil, fmt.Errorf("%w: no pets found (expected one of %s)", ErrInvalidInput, strings.Join(LegacyKeys, ", "))
}

// legacyDate acepta YYYY-MM-DD o un timestamp RFC3339 (se toma el día).
func legacyDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(civil.DateLayout) {
		s = s[:len(civil.DateLayout)]
	}
	return civil.ParseDate(s)
}

func healthStatus(s string) pets.HealthStatus {
	h := pets.HealthStatus(strings.ToLower(strings.TrimSpace(s)))
	if !h.Valid() {
		return ""
	}
	return h
}

func exerciseType(s string) exercises.Type {
	t := exercises.Type(strings.ToLower(strings.TrimSpace(s)))
	if t == "" || !t.Valid() {
		return exercises.TypeOther
	}
	return t
}

func intensity(s string) exercises.Intensity {
	i := exercises.Intensity(strings.ToLower(strings.TrimSpace(s)))
	if !i.Valid() {
		return ""
	}
	return i
}

func moodFromCode(c code) moods.Mood {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(moods.AllMoods) {
		return moods.AllMoods[n-1]
	}
	return moods.Mood(s)
}
