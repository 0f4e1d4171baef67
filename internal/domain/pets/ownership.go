package pets

import (
	"context"
	"strings"
)

// OwnerOf expone el ownerUserID de una mascota.
// Se usa para evitar ciclos de imports (preferences, shares -> pets).
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}

// Authorize devuelve la mascota si userID es el dueño.
// ErrNotFound si no existe, ErrForbidden si es de otro usuario.
func (s *Service) Authorize(ctx context.Context, petID, userID string) (Pet, error) {
	if strings.TrimSpace(userID) == "" {
		return Pet{}, ErrForbidden
	}
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != userID {
		return Pet{}, ErrForbidden
	}
	return p, nil
}
