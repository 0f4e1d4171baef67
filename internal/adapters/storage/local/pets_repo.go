package local

import (
	"context"
	"sort"

	"pet-exercise-tracker/internal/domain/pets"

	"github.com/boltdb/bolt"
)

type PetsRepo struct {
	store *Store
}

func NewPetsRepo(s *Store) *PetsRepo {
	return &PetsRepo{store: s}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(bucketPets), p.ID, p)
	})
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPets)
		if b.Get([]byte(p.ID)) == nil {
			return pets.ErrNotFound
		}
		return putJSON(b, p.ID, p)
	})
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPets)
		if b.Get([]byte(id)) == nil {
			return pets.ErrNotFound
		}
		return b.Delete([]byte(id))
	})
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var out pets.Pet
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		p, ok, err := getJSON[pets.Pet](tx.Bucket(bucketPets), id)
		if err != nil {
			return err
		}
		if !ok {
			return pets.ErrNotFound
		}
		out = p
		return nil
	})
	return out, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		return scanPrefix(tx.Bucket(bucketPets), "", func(_ []byte, p pets.Pet) error {
			if p.OwnerUserID == ownerUserID {
				out = append(out, p)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
