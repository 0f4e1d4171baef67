package exercises

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"pet-exercise-tracker/internal/platform/civil"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("exercise entry not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type LogInput struct {
	Date            time.Time
	DurationMinutes int
	Calories        *float64 // nil = estimar por intensidad
	Type            Type
	Intensity       Intensity
	Notes           string
	Location        string
}

func (s *Service) Log(ctx context.Context, petID string, in LogInput) (Entry, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Entry{}, fmt.Errorf("%w: pet id required", ErrInvalidInput)
	}

	intensity := in.Intensity
	if intensity == "" {
		intensity = IntensityModerate
	}
	typ := in.Type
	if typ == "" {
		typ = TypeWalk
	}

	now := s.now()
	e := Entry{
		ID:              uuid.NewString(),
		PetID:           petID,
		Date:            civil.Day(in.Date),
		DurationMinutes: in.DurationMinutes,
		Type:            typ,
		Intensity:       intensity,
		Notes:           strings.TrimSpace(in.Notes),
		Location:        strings.TrimSpace(in.Location),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Calories != nil {
		e.Calories = *in.Calories
	} else {
		e.Calories = EstimateCalories(e.DurationMinutes, e.Intensity)
	}

	if err := s.validate(e, in.Date.IsZero()); err != nil {
		return Entry{}, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Entry{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetForPet devuelve la entrada solo si pertenece a petID (evita filtrar ids ajenos).
func (s *Service) GetForPet(ctx context.Context, petID, id string) (Entry, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	if e.PetID != petID {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: from after to", ErrInvalidInput)
	}
	return s.repo.ListByPet(ctx, strings.TrimSpace(petID), filter)
}

type UpdateInput struct {
	Date            *time.Time
	DurationMinutes *int
	Calories        *float64
	Type            *Type
	Intensity       *Intensity
	Notes           *string
	Location        *string
}

func (s *Service) Update(ctx context.Context, petID, id string, in UpdateInput) (Entry, error) {
	e, err := s.GetForPet(ctx, petID, id)
	if err != nil {
		return Entry{}, err
	}

	if in.Date != nil {
		e.Date = civil.Day(*in.Date)
	}
	if in.DurationMinutes != nil {
		e.DurationMinutes = *in.DurationMinutes
	}
	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Intensity != nil {
		e.Intensity = *in.Intensity
	}
	if in.Notes != nil {
		e.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Location != nil {
		e.Location = strings.TrimSpace(*in.Location)
	}
	// La estimación de calorías se fija en Log; acá solo cambia si viene explícita.
	if in.Calories != nil {
		e.Calories = *in.Calories
	}

	if err := s.validate(e, false); err != nil {
		return Entry{}, err
	}

	e.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, petID, id string) error {
	e, err := s.GetForPet(ctx, petID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, e.ID)
}

// DeleteByPet es el hook de cascada de pets.
func (s *Service) DeleteByPet(ctx context.Context, petID string) error {
	return s.repo.DeleteByPet(ctx, petID)
}

func (s *Service) validate(e Entry, missingDate bool) error {
	if missingDate {
		return fmt.Errorf("%w: date required", ErrInvalidInput)
	}
	if e.Date.After(civil.Day(s.now())) {
		return fmt.Errorf("%w: date cannot be in the future", ErrInvalidInput)
	}
	if e.DurationMinutes <= 0 || e.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("%w: duration_minutes must be between 1 and %d", ErrInvalidInput, MaxDurationMinutes)
	}
	if math.IsNaN(e.Calories) || math.IsInf(e.Calories, 0) || e.Calories < 0 {
		return fmt.Errorf("%w: calories must be a finite number >= 0", ErrInvalidInput)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, e.Type)
	}
	if !e.Intensity.Valid() {
		return fmt.Errorf("%w: unknown intensity %q", ErrInvalidInput, e.Intensity)
	}
	if utf8.RuneCountInString(e.Notes) > MaxNotesLen {
		return fmt.Errorf("%w: notes longer than %d chars", ErrInvalidInput, MaxNotesLen)
	}
	if utf8.RuneCountInString(e.Location) > MaxLocationLen {
		return fmt.Errorf("%w: location longer than %d chars", ErrInvalidInput, MaxLocationLen)
	}
	return nil
}
