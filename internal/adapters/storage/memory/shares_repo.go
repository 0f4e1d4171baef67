package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-exercise-tracker/internal/domain/shares"
)

type shareRepo struct {
	mu      sync.RWMutex
	byID    map[string]shares.Share
	byToken map[string]string
}

func NewShareRepo() shares.Repository {
	return &shareRepo{
		byID:    make(map[string]shares.Share),
		byToken: make(map[string]string),
	}
}

func (r *shareRepo) Create(ctx context.Context, s shares.Share) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" || s.Token == "" {
		return errors.New("share id and token required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("share already exists")
	}
	r.byID[s.ID] = s
	r.byToken[s.Token] = s.ID
	return nil
}

func (r *shareRepo) Update(ctx context.Context, s shares.Share) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return shares.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *shareRepo) GetByID(ctx context.Context, id string) (shares.Share, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return shares.Share{}, shares.ErrNotFound
	}
	return s, nil
}

func (r *shareRepo) GetByToken(ctx context.Context, token string) (shares.Share, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byToken[token]
	if !ok {
		return shares.Share{}, shares.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *shareRepo) ListByPet(ctx context.Context, petID string) ([]shares.Share, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shares.Share, 0)
	for _, s := range r.byID {
		if s.PetID == petID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
