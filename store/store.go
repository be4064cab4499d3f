// ABOUTME: Local persistent key-value store backed by BadgerDB
// ABOUTME: Provides the typed repository interface the sync layer reads collections from
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/dgraph-io/badger/v3"
)

// AppName is the application name used for on-disk paths.
const AppName = "salespulse"

// Collection names. Values stored under these keys are JSON-encoded arrays.
const (
	CollectionTeams       = "teams"
	CollectionSalespeople = "salespeople"
	CollectionHabits      = "habits"
	CollectionTeamHabits  = "team-habits"
	CollectionGoals       = "goals"
)

// keyPrefix namespaces every key this application writes.
const keyPrefix = "salespulse:"

// Repository is the local persistent key-value contract. Absent keys read as
// (nil, nil), never as an error.
type Repository interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// DefaultPath returns the XDG-compliant location of the Badger store.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "local")
}

// Store is a Badger-backed Repository.
type Store struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens (creating if needed) a Badger store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	return &Store{db: db}, nil
}

// Get retrieves a value by key. Returns (nil, nil) when the key is absent.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storeKey(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	return value, err
}

// Set stores a value, overwriting any previous value.
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storeKey(key), value)
	})
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(storeKey(key))
	})
}

// Keys returns every key in the application namespace, prefix stripped.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			k := it.Item().KeyCopy(nil)
			keys = append(keys, string(k[len(prefix):]))
		}
		return nil
	})
	return keys, err
}

// Close closes the underlying Badger database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func storeKey(key string) []byte {
	return []byte(keyPrefix + key)
}

// GetCollection reads a JSON-encoded collection from the repository. An
// absent key, a read failure, or malformed JSON all yield an empty slice:
// local data being missing is a normal state, never a fatal one.
func GetCollection[T any](r Repository, collection string) []T {
	data, err := r.Get(collection)
	if err != nil || len(data) == 0 {
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// PutCollection writes a collection as a JSON-encoded array.
func PutCollection[T any](r Repository, collection string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s collection: %w", collection, err)
	}
	if err := r.Set(collection, data); err != nil {
		return fmt.Errorf("failed to store %s collection: %w", collection, err)
	}
	return nil
}
