// Package local guarda todo en un archivo bolt. Un bucket por colección,
// valores JSON. Pensado para correr la API o el CLI sin servidor de base de datos.
package local

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/boltdb/bolt"
)

var (
	bucketUsers       = []byte("users")
	bucketUserEmails  = []byte("user_emails")
	bucketSessions    = []byte("sessions")
	bucketPets        = []byte("pets")
	bucketExercises   = []byte("exercises")
	bucketMoods       = []byte("moods")
	bucketPreferences = []byte("preferences")
	bucketShares      = []byte("shares")
	bucketShareTokens = []byte("share_tokens")

	allBuckets = [][]byte{
		bucketUsers, bucketUserEmails, bucketSessions,
		bucketPets, bucketExercises, bucketMoods,
		bucketPreferences, bucketShares, bucketShareTokens,
	}
)

type Store struct {
	DB *bolt.DB
}

// Open abre (o crea) el archivo y asegura los buckets.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("local store path required")
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Close libera el lock del archivo.
func (s *Store) Close() error {
	return s.DB.Close()
}

func putJSON(b *bolt.Bucket, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), value)
}

func getJSON[T any](b *bolt.Bucket, key string) (T, bool, error) {
	var out T
	raw := b.Get([]byte(key))
	if raw == nil {
		return out, false, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decode %q: %w", key, err)
	}
	return out, true, nil
}

// scanPrefix recorre las claves que empiezan con prefix ("" = todas).
func scanPrefix[T any](b *bolt.Bucket, prefix string, fn func(key []byte, v T) error) error {
	c := b.Cursor()
	p := []byte(prefix)
	for k, raw := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, raw = c.Next() {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode %q: %w", k, err)
		}
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}

// compositeKey arma claves "a/b" para poder recorrer por prefijo con Seek.
func compositeKey(parts ...string) string {
	return strings.Join(parts, "/")
}
