package dashboard

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Storage keys. The store holds one text value per key.
const (
	// KeyActiveUser holds the raw username of the signed-in user.
	KeyActiveUser = "loggedInUser"

	ledgerKeyPrefix = "transactions_"
)

// LedgerKey returns the storage key holding a user's transactions blob.
func LedgerKey(user string) string {
	return ledgerKeyPrefix + user
}

// Store is a directory-backed key/value store. Each key is a single file
// holding the raw text value; writes are full overwrites.
type Store struct {
	dir string
}

// OpenStore opens (and creates if needed) a store rooted at dir.
func OpenStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("cannot open store with an empty directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store persists into.
func (s *Store) Dir() string { return s.dir }

// Get reads the value for a key. The boolean is false when the key does not
// exist.
func (s *Store) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the value for a key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes a key. Removing a missing key is not an error.
func (s *Store) Remove(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove key %q: %w", key, err)
	}
	return nil
}

// Keys lists the keys present in the store, in no particular order.
func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("could not list store directory %q: %w", s.dir, err)
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		key, err := url.PathUnescape(e.Name())
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// path maps a key to its backing file. Keys are escaped so that usernames
// containing path separators cannot escape the store directory.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key))
}

// Users lists the usernames that have a persisted ledger in the store.
func (s *Store) Users() ([]string, error) {
	keys, err := s.Keys()
	if err != nil {
		return nil, err
	}
	var users []string
	for _, key := range keys {
		if name, ok := strings.CutPrefix(key, ledgerKeyPrefix); ok {
			users = append(users, name)
		}
	}
	return users, nil
}
