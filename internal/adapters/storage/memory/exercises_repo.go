package memory

import (
	"context"
	"errors"
	"sync"

	"pet-exercise-tracker/internal/domain/exercises"
)

type exerciseRepo struct {
	mu   sync.RWMutex
	byID map[string]exercises.Entry
}

func NewExerciseRepo() exercises.Repository {
	return &exerciseRepo{
		byID: make(map[string]exercises.Entry),
	}
}

func (r *exerciseRepo) Create(ctx context.Context, e exercises.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("exercise id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("exercise already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *exerciseRepo) Update(ctx context.Context, e exercises.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[e.ID]; !exists {
		return exercises.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *exerciseRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return exercises.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *exerciseRepo) GetByID(ctx context.Context, id string) (exercises.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return exercises.Entry{}, exercises.ErrNotFound
	}
	return e, nil
}

func (r *exerciseRepo) ListByPet(ctx context.Context, petID string, filter exercises.ListFilter) ([]exercises.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]exercises.Entry, 0)
	for _, e := range r.byID {
		if e.PetID != petID || !filter.Match(e) {
			continue
		}
		out = append(out, e)
	}

	exercises.SortEntries(out)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *exerciseRepo) DeleteByPet(ctx context.Context, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.byID {
		if e.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}
