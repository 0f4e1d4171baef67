package local

import (
	"context"
	"time"

	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/platform/civil"

	"github.com/boltdb/bolt"
)

// MoodsRepo usa claves "petID/YYYY-MM-DD": el orden de bolt ya es cronológico
// y el upsert por día sale solo.
type MoodsRepo struct {
	store *Store
}

func NewMoodsRepo(s *Store) *MoodsRepo {
	return &MoodsRepo{store: s}
}

func moodKey(petID string, date time.Time) string {
	return compositeKey(petID, civil.Format(date))
}

func (r *MoodsRepo) Upsert(ctx context.Context, e moods.Entry) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(bucketMoods), moodKey(e.PetID, e.Date), e)
	})
}

func (r *MoodsRepo) Delete(ctx context.Context, petID string, date time.Time) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMoods)
		key := []byte(moodKey(petID, date))
		if b.Get(key) == nil {
			return moods.ErrNotFound
		}
		return b.Delete(key)
	})
}

func (r *MoodsRepo) ListByPet(ctx context.Context, petID string, from, to *time.Time) ([]moods.Entry, error) {
	out := make([]moods.Entry, 0)
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		return scanPrefix(tx.Bucket(bucketMoods), petID+"/", func(_ []byte, e moods.Entry) error {
			if moods.InRange(e.Date, from, to) {
				out = append(out, e)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MoodsRepo) DeleteByPet(ctx context.Context, petID string) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMoods)

		var keys [][]byte
		err := scanPrefix(b, petID+"/", func(k []byte, _ moods.Entry) error {
			keys = append(keys, append([]byte(nil), k...))
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
