package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/insights"
	"pet-exercise-tracker/internal/domain/pets"
	"pet-exercise-tracker/internal/platform/civil"
)

var ErrInvalidInput = errors.New("invalid input")

// DefaultRangeDays es el rango cuando no se indica from.
const DefaultRangeDays = 30

type PetGetter interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	pets      PetGetter
	exercises insights.ExerciseLister
	moods     insights.MoodLister
	now       func() time.Time
}

func NewService(p PetGetter, ex insights.ExerciseLister, md insights.MoodLister) *Service {
	return &Service{
		pets:      p,
		exercises: ex,
		moods:     md,
		now:       time.Now,
	}
}

// Build arma el reporte de petID en [from, to]. Fechas cero = últimos 30 días.
func (s *Service) Build(ctx context.Context, petID string, from, to time.Time) (Report, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Report{}, fmt.Errorf("%w: pet id required", ErrInvalidInput)
	}

	now := s.now()
	if to.IsZero() {
		to = now
	}
	to = civil.Day(to)
	if from.IsZero() {
		from = civil.AddDays(to, -(DefaultRangeDays - 1))
	}
	from = civil.Day(from)

	if from.After(to) {
		return Report{}, fmt.Errorf("%w: from after to", ErrInvalidInput)
	}
	if civil.DaysBetween(from, to)+1 > insights.MaxRange {
		return Report{}, fmt.Errorf("%w: range longer than %d days", ErrInvalidInput, insights.MaxRange)
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return Report{}, err
	}

	entries, err := s.exercises.ListByPet(ctx, petID, exercises.ListFilter{From: &from, To: &to})
	if err != nil {
		return Report{}, fmt.Errorf("list exercises: %w", err)
	}
	moodEntries, err := s.moods.ListByPet(ctx, petID, &from, &to)
	if err != nil {
		return Report{}, fmt.Errorf("list moods: %w", err)
	}

	return Report{
		Pet:         p,
		From:        from,
		To:          to,
		Exercises:   entries,
		Moods:       moodEntries,
		Stats:       insights.BuildStats(petID, from, to, groupFor(from, to), entries, moodEntries),
		GeneratedAt: now,
	}, nil
}

// groupFor elige la agrupación de los gráficos según el largo del rango.
func groupFor(from, to time.Time) insights.Group {
	days := civil.DaysBetween(from, to) + 1
	switch {
	case days <= 62:
		return insights.GroupDay
	case days <= insights.MaxDayRange:
		return insights.GroupWeek
	default:
		return insights.GroupMonth
	}
}
