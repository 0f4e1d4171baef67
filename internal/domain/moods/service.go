package moods

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"pet-exercise-tracker/internal/platform/civil"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("mood entry not found")
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

// Log registra el ánimo del día. Si ya había uno para esa fecha, lo reemplaza.
func (s *Service) Log(ctx context.Context, petID string, date time.Time, mood Mood, note string) (Entry, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Entry{}, fmt.Errorf("%w: pet id required", ErrInvalidInput)
	}
	if date.IsZero() {
		return Entry{}, fmt.Errorf("%w: date required", ErrInvalidInput)
	}

	now := s.now()
	e := Entry{
		PetID:      petID,
		Date:       civil.Day(date),
		Mood:       Mood(strings.ToLower(strings.TrimSpace(string(mood)))),
		Note:       strings.TrimSpace(note),
		RecordedAt: now,
	}

	if e.Date.After(civil.Day(now)) {
		return Entry{}, fmt.Errorf("%w: date cannot be in the future", ErrInvalidInput)
	}
	if !e.Mood.Valid() {
		return Entry{}, fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, e.Mood)
	}
	if utf8.RuneCountInString(e.Note) > MaxNoteLen {
		return Entry{}, fmt.Errorf("%w: note longer than %d chars", ErrInvalidInput, MaxNoteLen)
	}

	if err := s.repo.Upsert(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string, from, to *time.Time) ([]Entry, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from after to", ErrInvalidInput)
	}
	return s.repo.ListByPet(ctx, strings.TrimSpace(petID), from, to)
}

func (s *Service) Delete(ctx context.Context, petID string, date time.Time) error {
	return s.repo.Delete(ctx, strings.TrimSpace(petID), civil.Day(date))
}

// DeleteByPet es el hook de cascada de pets.
func (s *Service) DeleteByPet(ctx context.Context, petID string) error {
	return s.repo.DeleteByPet(ctx, petID)
}
