package local

import (
	"context"
	"time"

	"pet-exercise-tracker/internal/domain/users"

	"github.com/boltdb/bolt"
)

type UsersRepo struct {
	store *Store
}

func NewUsersRepo(s *Store) *UsersRepo {
	return &UsersRepo{store: s}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		emails := tx.Bucket(bucketUserEmails)
		if emails.Get([]byte(u.Email)) != nil {
			return users.ErrEmailTaken
		}
		if err := emails.Put([]byte(u.Email), []byte(u.ID)); err != nil {
			return err
		}
		return putJSON(tx.Bucket(bucketUsers), u.ID, u)
	})
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	var out users.User
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		var err error
		out, err = getUser(tx, id)
		return err
	})
	return out, err
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	var out users.User
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketUserEmails).Get([]byte(email))
		if id == nil {
			return users.ErrNotFound
		}
		var err error
		out, err = getUser(tx, string(id))
		return err
	})
	return out, err
}

func getUser(tx *bolt.Tx, id string) (users.User, error) {
	u, ok, err := getJSON[users.User](tx.Bucket(bucketUsers), id)
	if err != nil {
		return users.User{}, err
	}
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

type SessionsRepo struct {
	store *Store
}

func NewSessionsRepo(s *Store) *SessionsRepo {
	return &SessionsRepo{store: s}
}

func (r *SessionsRepo) CreateSession(ctx context.Context, s users.Session) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(bucketSessions), s.Token, s)
	})
}

func (r *SessionsRepo) GetSession(ctx context.Context, token string) (users.Session, error) {
	var out users.Session
	err := r.store.DB.View(func(tx *bolt.Tx) error {
		s, ok, err := getJSON[users.Session](tx.Bucket(bucketSessions), token)
		if err != nil {
			return err
		}
		if !ok {
			return users.ErrNotFound
		}
		out = s
		return nil
	})
	return out, err
}

func (r *SessionsRepo) DeleteSession(ctx context.Context, token string) error {
	return r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSessions)
		if b.Get([]byte(token)) == nil {
			return users.ErrNotFound
		}
		return b.Delete([]byte(token))
	})
}

func (r *SessionsRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.store.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSessions)

		var keys [][]byte
		err := scanPrefix(b, "", func(k []byte, s users.Session) error {
			if s.Expired(now) {
				keys = append(keys, append([]byte(nil), k...))
			}
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
		n = int64(len(keys))
		return nil
	})
	return n, err
}
