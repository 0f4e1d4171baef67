package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/platform/civil"
)

type moodKey struct {
	petID string
	date  string
}

type moodRepo struct {
	mu    sync.RWMutex
	byKey map[moodKey]moods.Entry
}

func NewMoodRepo() moods.Repository {
	return &moodRepo{
		byKey: make(map[moodKey]moods.Entry),
	}
}

func keyOf(petID string, date time.Time) moodKey {
	return moodKey{petID: petID, date: civil.Format(date)}
}

func (r *moodRepo) Upsert(ctx context.Context, e moods.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey[keyOf(e.PetID, e.Date)] = e
	return nil
}

func (r *moodRepo) Delete(ctx context.Context, petID string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := keyOf(petID, date)
	if _, ok := r.byKey[k]; !ok {
		return moods.ErrNotFound
	}
	delete(r.byKey, k)
	return nil
}

func (r *moodRepo) ListByPet(ctx context.Context, petID string, from, to *time.Time) ([]moods.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]moods.Entry, 0)
	for k, e := range r.byKey {
		if k.petID != petID || !moods.InRange(e.Date, from, to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *moodRepo) DeleteByPet(ctx context.Context, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.byKey {
		if k.petID == petID {
			delete(r.byKey, k)
		}
	}
	return nil
}
