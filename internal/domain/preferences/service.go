package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/pets"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("preferences not found")
	ErrForbidden    = errors.New("forbidden")
)

// PetOwnerLookup es la parte de pets.Service que usa este paquete.
// Una mascota inexistente se informa con pets.ErrNotFound.
type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

type Service struct {
	repo   Repository
	owners PetOwnerLookup
	now    func() time.Time
}

func NewService(repo Repository, owners PetOwnerLookup) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

func (s *Service) Get(ctx context.Context, userID string) (Preferences, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Preferences{}, ErrInvalidInput
	}

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Defaults(userID), nil
		}
		return Preferences{}, err
	}
	return p, nil
}

// UpdateInput: nil = no tocar. ActivePetID = "" limpia la mascota activa.
type UpdateInput struct {
	ActivePetID *string
	DarkMode    *bool
}

func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (Preferences, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Preferences{}, err
	}

	if in.ActivePetID != nil {
		petID := strings.TrimSpace(*in.ActivePetID)
		if petID != "" {
			owner, err := s.owners.OwnerOf(ctx, petID)
			if errors.Is(err, pets.ErrNotFound) {
				return Preferences{}, fmt.Errorf("%w: active pet not found", ErrInvalidInput)
			}
			if err != nil {
				return Preferences{}, fmt.Errorf("active pet lookup: %w", err)
			}
			if owner != p.UserID {
				return Preferences{}, ErrForbidden
			}
		}
		p.ActivePetID = petID
	}
	if in.DarkMode != nil {
		p.DarkMode = *in.DarkMode
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Put(ctx, p); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

// ClearActivePet es el hook de cascada de pets.
func (s *Service) ClearActivePet(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil
	}
	return s.repo.ClearActivePet(ctx, petID)
}
