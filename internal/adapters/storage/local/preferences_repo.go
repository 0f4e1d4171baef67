package local

import (
	"context"

	"pet-exercise-tracker/internal/domain/preferences"

	"github.com/boltdb/bolt"
)

type PreferencesRepo struct {
	store *Store
}

func NewPreferencesRepo(s *Store) *PreferencesRepo {
	return &PreferencesRepo{store: s}
}

func (r *PreferencesRepo) Get(ctx context.Context, userID string) (preferences.Preferences, error) {
	var out preferences.Preferences
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		p, ok, err := getJSON[preferences.Preferences](tx.Bucket(bucketPreferences), userID)
		if err != nil {
			return err
		}
		if !ok {
			return preferences.ErrNotFound
		}
		out = p
		return nil
	})
	return out, err
}

func (r *PreferencesRepo) Put(ctx context.Context, p preferences.Preferences) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(bucketPreferences), p.UserID, p)
	})
}

func (r *PreferencesRepo) ClearActivePet(ctx context.Context, petID string) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPreferences)

		var changed []preferences.Preferences
		err := scanPrefix(b, "", func(_ []byte, p preferences.Preferences) error {
			if p.ActivePetID == petID {
				p.ActivePetID = ""
				changed = append(changed, p)
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, p := range changed {
			if err := putJSON(b, p.UserID, p); err != nil {
				return err
			}
		}
		return nil
	})
}
