// Package session keeps the admin token between runs of the console.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.yaml.in/yaml/v4"
)

// TokenKey is the storage key of the admin token.
const TokenKey = "admin_token"

// Store is a small persistent key/value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Session exposes the stored token. It satisfies client.TokenSource.
type Session struct {
	store Store
}

func New(store Store) *Session { return &Session{store: store} }

// Token returns the stored token or "" when none is present or the store
// cannot be read.
func (s *Session) Token() string {
	tok, err := s.store.Get(TokenKey)
	if err != nil {
		return ""
	}
	return tok
}

func (s *Session) Authenticated() bool { return s.Token() != "" }

func (s *Session) Save(token string) error { return s.store.Set(TokenKey, token) }

func (s *Session) Clear() error { return s.store.Delete(TokenKey) }

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{values: map[string]string{}} }

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// FileStore keeps values in a YAML document on disk. The file is read and
// rewritten on every call so several processes see the same session.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (f *FileStore) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(values)
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.save(values)
}

func (f *FileStore) load() (map[string]string, error) {
	values := map[string]string{}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", f.path, err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

func (f *FileStore) save(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("prepare session dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return os.Rename(tmp, f.path)
}
