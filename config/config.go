// ABOUTME: Configuration store for the remote backend connection
// ABOUTME: Memory-cached URL/key settings persisted through the local repository
package config

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/harperreed/salespulse/store"
)

// Repository keys for persisted configuration values.
const (
	keyURL          = "config:supabase-url"
	keyAccessKey    = "config:supabase-key"
	keyAuxiliaryKey = "config:auxiliary-key"
	keyInstallID    = "config:install-id"
)

// Store holds the remote backend connection settings. Values are cached in
// memory and persisted through the local repository; a cold cache falls back
// to one repository read, so a value written by another process is picked up.
//
// Construct one per process and inject it; there is no package-level instance.
type Store struct {
	repo store.Repository

	mu           sync.RWMutex
	url          string
	accessKey    string
	auxiliaryKey string
	installID    string
}

// NewStore creates a configuration store backed by the given repository.
func NewStore(repo store.Repository) *Store {
	return &Store{repo: repo}
}

// SetURL stores the remote backend URL.
func (s *Store) SetURL(url string) error {
	return s.set(&s.url, keyURL, url)
}

// SetAccessKey stores the remote backend access key.
func (s *Store) SetAccessKey(key string) error {
	return s.set(&s.accessKey, keyAccessKey, key)
}

// SetAuxiliaryKey stores the language-generation API key.
func (s *Store) SetAuxiliaryKey(key string) error {
	return s.set(&s.auxiliaryKey, keyAuxiliaryKey, key)
}

// URL returns the remote backend URL, or "" when unset.
func (s *Store) URL() string {
	return s.get(&s.url, keyURL)
}

// AccessKey returns the remote backend access key, or "" when unset.
func (s *Store) AccessKey() string {
	return s.get(&s.accessKey, keyAccessKey)
}

// AuxiliaryKey returns the language-generation API key, or "" when unset.
func (s *Store) AuxiliaryKey() string {
	return s.get(&s.auxiliaryKey, keyAuxiliaryKey)
}

// IsConfigured reports whether both the URL and the access key are present.
// An unconfigured store is a normal state, not a failure.
func (s *Store) IsConfigured() bool {
	return s.URL() != "" && s.AccessKey() != ""
}

// Override replaces cached values without persisting them. Used for
// environment variable overrides; empty arguments leave the value alone.
func (s *Store) Override(url, accessKey, auxiliaryKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if url != "" {
		s.url = url
	}
	if accessKey != "" {
		s.accessKey = accessKey
	}
	if auxiliaryKey != "" {
		s.auxiliaryKey = auxiliaryKey
	}
}

// InstallID returns this installation's identifier, generating and persisting
// a ULID on first use.
func (s *Store) InstallID() string {
	if id := s.get(&s.installID, keyInstallID); id != "" {
		return id
	}

	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	if err := s.set(&s.installID, keyInstallID, id); err != nil {
		// Persisting failed; the cached value still identifies this run.
		s.mu.Lock()
		s.installID = id
		s.mu.Unlock()
	}
	return id
}

func (s *Store) set(cache *string, key, value string) error {
	s.mu.Lock()
	*cache = value
	s.mu.Unlock()
	return s.repo.Set(key, []byte(value))
}

func (s *Store) get(cache *string, key string) string {
	s.mu.RLock()
	cached := *cache
	s.mu.RUnlock()
	if cached != "" {
		return cached
	}

	// Cold cache: another process may have written the value.
	data, err := s.repo.Get(key)
	if err != nil || len(data) == 0 {
		return ""
	}

	s.mu.Lock()
	*cache = string(data)
	s.mu.Unlock()
	return string(data)
}
