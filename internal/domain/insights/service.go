package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/platform/civil"
)

var ErrInvalidInput = errors.New("invalid input")

// ExerciseLister y MoodLister los cumplen exercises.Service y moods.Service.
type ExerciseLister interface {
	ListByPet(ctx context.Context, petID string, filter exercises.ListFilter) ([]exercises.Entry, error)
}

type MoodLister interface {
	ListByPet(ctx context.Context, petID string, from, to *time.Time) ([]moods.Entry, error)
}

type Service struct {
	exercises ExerciseLister
	moods     MoodLister
	now       func() time.Time
}

func NewService(ex ExerciseLister, md MoodLister) *Service {
	return &Service{
		exercises: ex,
		moods:     md,
		now:       time.Now,
	}
}

func (s *Service) Calendar(ctx context.Context, petID string, month time.Time) (Calendar, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Calendar{}, fmt.Errorf("%w: pet id required", ErrInvalidInput)
	}

	start := civil.MonthStart(month)
	end := civil.AddDays(start, civil.DaysInMonth(start)-1)

	entries, moodEntries, err := s.load(ctx, petID, start, end)
	if err != nil {
		return Calendar{}, err
	}
	return BuildCalendar(petID, start, entries, moodEntries), nil
}

// StatsQuery: From/To cero = últimos 30 días hasta hoy. Group vacío = day.
type StatsQuery struct {
	From  time.Time
	To    time.Time
	Group Group
}

func (s *Service) Stats(ctx context.Context, petID string, q StatsQuery) (Stats, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Stats{}, fmt.Errorf("%w: pet id required", ErrInvalidInput)
	}

	q, err := s.normalize(q)
	if err != nil {
		return Stats{}, err
	}

	entries, moodEntries, err := s.load(ctx, petID, q.From, q.To)
	if err != nil {
		return Stats{}, err
	}
	return BuildStats(petID, q.From, q.To, q.Group, entries, moodEntries), nil
}

func (s *Service) normalize(q StatsQuery) (StatsQuery, error) {
	if q.Group == "" {
		q.Group = GroupDay
	}
	if !q.Group.Valid() {
		return StatsQuery{}, fmt.Errorf("%w: group must be day, week or month", ErrInvalidInput)
	}

	if q.To.IsZero() {
		q.To = s.now()
	}
	q.To = civil.Day(q.To)
	if q.From.IsZero() {
		q.From = civil.AddDays(q.To, -29)
	}
	q.From = civil.Day(q.From)

	if q.From.After(q.To) {
		return StatsQuery{}, fmt.Errorf("%w: from after to", ErrInvalidInput)
	}

	days := civil.DaysBetween(q.From, q.To) + 1
	if q.Group == GroupDay && days > MaxDayRange {
		return StatsQuery{}, fmt.Errorf("%w: day grouping allows at most %d days", ErrInvalidInput, MaxDayRange)
	}
	if days > MaxRange {
		return StatsQuery{}, fmt.Errorf("%w: range longer than %d days", ErrInvalidInput, MaxRange)
	}
	return q, nil
}

func (s *Service) load(ctx context.Context, petID string, from, to time.Time) ([]exercises.Entry, []moods.Entry, error) {
	entries, err := s.exercises.ListByPet(ctx, petID, exercises.ListFilter{From: &from, To: &to})
	if err != nil {
		return nil, nil, fmt.Errorf("list exercises: %w", err)
	}
	moodEntries, err := s.moods.ListByPet(ctx, petID, &from, &to)
	if err != nil {
		return nil, nil, fmt.Errorf("list moods: %w", err)
	}
	return entries, moodEntries, nil
}
