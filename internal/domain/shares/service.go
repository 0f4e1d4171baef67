package shares

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("share not found")
)

// MaxTTL acota la vida de un link compartido.
const MaxTTL = 365 * 24 * time.Hour

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

type CreateInput struct {
	PetID       string
	OwnerUserID string
	Scopes      []Scope
	TTL         time.Duration // 0 = no vence
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Share, error) {
	petID := strings.TrimSpace(in.PetID)
	ownerID := strings.TrimSpace(in.OwnerUserID)
	if petID == "" || ownerID == "" {
		return Share{}, ErrInvalidInput
	}
	if in.TTL < 0 || in.TTL > MaxTTL {
		return Share{}, fmt.Errorf("%w: ttl out of range", ErrInvalidInput)
	}

	// Scopes: vacío = solo reporte. Si vienen, se validan estrictamente.
	var scopes []Scope
	if len(in.Scopes) == 0 {
		scopes = []Scope{ScopeReportRead}
	} else {
		var err error
		scopes, err = normalizeScopesStrict(in.Scopes)
		if err != nil {
			return Share{}, err
		}
		if len(scopes) == 0 {
			return Share{}, ErrInvalidInput
		}
	}

	now := s.now()
	sh := Share{
		ID:          uuid.NewString(),
		PetID:       petID,
		OwnerUserID: ownerID,
		Token:       uuid.NewString(),
		Scopes:      scopes,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.TTL > 0 {
		exp := now.Add(in.TTL)
		sh.ExpiresAt = &exp
	}

	if err := s.repo.Create(ctx, sh); err != nil {
		return Share{}, err
	}
	return sh, nil
}

func (s *Service) Revoke(ctx context.Context, shareID, ownerUserID string) (Share, error) {
	shareID = strings.TrimSpace(shareID)
	ownerUserID = strings.TrimSpace(ownerUserID)
	if shareID == "" || ownerUserID == "" {
		return Share{}, ErrInvalidInput
	}

	sh, err := s.repo.GetByID(ctx, shareID)
	if err != nil {
		return Share{}, err
	}
	if sh.OwnerUserID != ownerUserID {
		return Share{}, ErrForbidden
	}

	// Idempotente
	if sh.Status == StatusRevoked {
		return sh, nil
	}
	return s.revoke(ctx, sh)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Share, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}

// Resolve devuelve el share de un token si está activo y vigente.
// Cualquier otro caso es ErrNotFound para no filtrar qué tokens existieron.
func (s *Service) Resolve(ctx context.Context, token string) (Share, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Share{}, ErrNotFound
	}
	sh, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return Share{}, err
	}
	if !sh.Usable(s.now()) {
		return Share{}, ErrNotFound
	}
	return sh, nil
}

// RevokeByPet es el hook de cascada de pets.
func (s *Service) RevokeByPet(ctx context.Context, petID string) error {
	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return err
	}
	for _, sh := range items {
		if sh.Status == StatusRevoked {
			continue
		}
		if _, err := s.revoke(ctx, sh); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) revoke(ctx context.Context, sh Share) (Share, error) {
	now := s.now()
	sh.Status = StatusRevoked
	sh.UpdatedAt = now
	sh.RevokedAt = &now

	if err := s.repo.Update(ctx, sh); err != nil {
		return Share{}, err
	}
	return sh, nil
}

// HasScope valida si el share incluye un scope.
func HasScope(sh Share, scope Scope) bool {
	for _, s := range sh.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

func normalizeScopesStrict(in []Scope) ([]Scope, error) {
	allowed := map[Scope]struct{}{
		ScopeReportRead:   {},
		ScopeCalendarRead: {},
	}

	seen := map[Scope]struct{}{}
	out := make([]Scope, 0, len(in))

	for _, raw := range in {
		s := Scope(strings.TrimSpace(string(raw)))
		if s == "" {
			continue
		}
		if _, ok := allowed[s]; !ok {
			return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, s)
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out, nil
}
