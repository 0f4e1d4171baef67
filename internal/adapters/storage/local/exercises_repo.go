package local

import (
	"context"

	"pet-exercise-tracker/internal/domain/exercises"

	"github.com/boltdb/bolt"
)

// ExercisesRepo guarda por id. ListByPet recorre el bucket y filtra en memoria
// con ListFilter.Match.
type ExercisesRepo struct {
	store *Store
}

func NewExercisesRepo(s *Store) *ExercisesRepo {
	return &ExercisesRepo{store: s}
}

func (r *ExercisesRepo) Create(ctx context.Context, e exercises.Entry) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(bucketExercises), e.ID, e)
	})
}

func (r *ExercisesRepo) Update(ctx context.Context, e exercises.Entry) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketExercises)
		if b.Get([]byte(e.ID)) == nil {
			return exercises.ErrNotFound
		}
		return putJSON(b, e.ID, e)
	})
}

func (r *ExercisesRepo) Delete(ctx context.Context, id string) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketExercises)
		if b.Get([]byte(id)) == nil {
			return exercises.ErrNotFound
		}
		return b.Delete([]byte(id))
	})
}

func (r *ExercisesRepo) GetByID(ctx context.Context, id string) (exercises.Entry, error) {
	var out exercises.Entry
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		e, ok, err := getJSON[exercises.Entry](tx.Bucket(bucketExercises), id)
		if err != nil {
			return err
		}
		if !ok {
			return exercises.ErrNotFound
		}
		out = e
		return nil
	})
	return out, err
}

func (r *ExercisesRepo) ListByPet(ctx context.Context, petID string, filter exercises.ListFilter) ([]exercises.Entry, error) {
	out := make([]exercises.Entry, 0)
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		return scanPrefix(tx.Bucket(bucketExercises), "", func(_ []byte, e exercises.Entry) error {
			if e.PetID == petID && filter.Match(e) {
				out = append(out, e)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	exercises.SortEntries(out)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *ExercisesRepo) DeleteByPet(ctx context.Context, petID string) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketExercises)

		var keys [][]byte
		err := scanPrefix(b, "", func(k []byte, e exercises.Entry) error {
			if e.PetID == petID {
				keys = append(keys, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		// No se borra durante el recorrido del cursor.
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
