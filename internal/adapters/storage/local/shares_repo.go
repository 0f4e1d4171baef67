package local

import (
	"context"
	"sort"

	"pet-exercise-tracker/internal/domain/shares"

	"github.com/boltdb/bolt"
)

type SharesRepo struct {
	store *Store
}

func NewSharesRepo(s *Store) *SharesRepo {
	return &SharesRepo{store: s}
}

func (r *SharesRepo) Create(ctx context.Context, s shares.Share) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketShareTokens).Put([]byte(s.Token), []byte(s.ID)); err != nil {
			return err
		}
		return putJSON(tx.Bucket(bucketShares), s.ID, s)
	})
}

// Update no toca el índice de tokens: el token de un share no cambia.
func (r *SharesRepo) Update(ctx context.Context, s shares.Share) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketShares)
		if b.Get([]byte(s.ID)) == nil {
			return shares.ErrNotFound
		}
		return putJSON(b, s.ID, s)
	})
}

func (r *SharesRepo) GetByID(ctx context.Context, id string) (shares.Share, error) {
	var out shares.Share
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		var err error
		out, err = getShare(tx, id)
		return err
	})
	return out, err
}

func (r *SharesRepo) GetByToken(ctx context.Context, token string) (shares.Share, error) {
	var out shares.Share
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketShareTokens).Get([]byte(token))
		if id == nil {
			return shares.ErrNotFound
		}
		var err error
		out, err = getShare(tx, string(id))
		return err
	})
	return out, err
}

func (r *SharesRepo) ListByPet(ctx context.Context, petID string) ([]shares.Share, error) {
	out := make([]shares.Share, 0)
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		return scanPrefix(tx.Bucket(bucketShares), "", func(_ []byte, s shares.Share) error {
			if s.PetID == petID {
				out = append(out, s)
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

func getShare(tx *bolt.Tx, id string) (shares.Share, error) {
	s, ok, err := getJSON[shares.Share](tx.Bucket(bucketShares), id)
	if err != nil {
		return shares.Share{}, err
	}
	if !ok {
		return shares.Share{}, shares.ErrNotFound
	}
	return s, nil
}
