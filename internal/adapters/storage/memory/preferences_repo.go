package memory

import (
	"context"
	"sync"

	"pet-exercise-tracker/internal/domain/preferences"
)

type preferencesRepo struct {
	mu       sync.RWMutex
	byUserID map[string]preferences.Preferences
}

func NewPreferencesRepo() preferences.Repository {
	return &preferencesRepo{
		byUserID: make(map[string]preferences.Preferences),
	}
}

func (r *preferencesRepo) Get(ctx context.Context, userID string) (preferences.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUserID[userID]
	if !ok {
		return preferences.Preferences{}, preferences.ErrNotFound
	}
	return p, nil
}

func (r *preferencesRepo) Put(ctx context.Context, p preferences.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUserID[p.UserID] = p
	return nil
}

func (r *preferencesRepo) ClearActivePet(ctx context.Context, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.byUserID {
		if p.ActivePetID == petID {
			p.ActivePetID = ""
			r.byUserID[id] = p
		}
	}
	return nil
}
