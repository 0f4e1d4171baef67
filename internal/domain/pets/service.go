package pets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("forbidden")
)

// DeleteHook limpia lo que depende de una mascota (entradas, shares, preferencias).
// Corre antes de borrar el perfil: si falla, la mascota sigue existiendo y se puede reintentar.
type DeleteHook func(ctx context.Context, petID string) error

type Service struct {
	repo Repository
	now  func() time.Time

	onDelete []DeleteHook
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// OnDelete registra hooks de cascada. Se llama al armar el router.
func (s *Service) OnDelete(hooks ...DeleteHook) {
	for _, h := range hooks {
		if h != nil {
			s.onDelete = append(s.onDelete, h)
		}
	}
}

type CreateInput struct {
	Name            string
	Image           string
	Characteristics string
	Age             float64
	Weight          float64
	HealthStatus    HealthStatus
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Pet{}, fmt.Errorf("%w: owner required", ErrInvalidInput)
	}

	status := in.HealthStatus
	if status == "" {
		status = HealthGood
	}

	now := s.now()
	p := Pet{
		ID:              uuid.NewString(),
		OwnerUserID:     ownerUserID,
		Name:            strings.TrimSpace(in.Name),
		Image:           strings.TrimSpace(in.Image),
		Characteristics: strings.TrimSpace(in.Characteristics),
		Age:             in.Age,
		Weight:          in.Weight,
		HealthStatus:    status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := validate(p); err != nil {
		return Pet{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, strings.TrimSpace(ownerUserID))
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Name            *string
	Image           *string
	Characteristics *string
	Age             *float64
	Weight          *float64
	HealthStatus    *HealthStatus
}

func (s *Service) Update(ctx context.Context, petID string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Image != nil {
		p.Image = strings.TrimSpace(*in.Image)
	}
	if in.Characteristics != nil {
		p.Characteristics = strings.TrimSpace(*in.Characteristics)
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.HealthStatus != nil {
		p.HealthStatus = *in.HealthStatus
	}

	if err := validate(p); err != nil {
		return Pet{}, err
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete corre la cascada y luego borra el perfil.
func (s *Service) Delete(ctx context.Context, petID string) error {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return err
	}

	var errs []error
	for _, h := range s.onDelete {
		if err := h(ctx, p.ID); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("delete pet %s: cascade: %w", p.ID, errors.Join(errs...))
	}

	return s.repo.Delete(ctx, p.ID)
}

func validate(p Pet) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(p.Name) > MaxNameLen {
		return fmt.Errorf("%w: name longer than %d chars", ErrInvalidInput, MaxNameLen)
	}
	if utf8.RuneCountInString(p.Characteristics) > MaxCharacteristicsLen {
		return fmt.Errorf("%w: characteristics longer than %d chars", ErrInvalidInput, MaxCharacteristicsLen)
	}
	if !finite(p.Age) || p.Age < 0 || p.Age > MaxAgeYears {
		return fmt.Errorf("%w: age must be between 0 and %d", ErrInvalidInput, MaxAgeYears)
	}
	if !finite(p.Weight) || p.Weight < 0 || p.Weight > MaxWeightKg {
		return fmt.Errorf("%w: weight must be between 0 and %d", ErrInvalidInput, MaxWeightKg)
	}
	if !p.HealthStatus.Valid() {
		return fmt.Errorf("%w: unknown health_status %q", ErrInvalidInput, p.HealthStatus)
	}
	if err := ValidateImage(p.Image); err != nil {
		return err
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateImage acepta vacío, data URI de imagen en base64 o URL http(s).
func ValidateImage(img string) error {
	if img == "" {
		return nil
	}

	if strings.HasPrefix(img, "data:") {
		if !strings.HasPrefix(img, "data:image/") || !strings.Contains(img, ";base64,") {
			return fmt.Errorf("%w: image data uri must be data:image/*;base64", ErrInvalidInput)
		}
		if len(img) > MaxImageBytes {
			return fmt.Errorf("%w: image larger than %d bytes", ErrInvalidInput, MaxImageBytes)
		}
		return nil
	}

	u, err := url.ParseRequestURI(img)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: image must be an http(s) url or a data uri", ErrInvalidInput)
	}
	return nil
}
