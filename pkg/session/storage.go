package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// TokenStorage is the durable key-value collaborator holding the auth token.
// The store only needs persist/erase semantics; choosing a longer-lived or a
// session-scoped tier ("remember me") means choosing which implementation to
// construct.
type TokenStorage interface {
	// Load returns the persisted token, "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryStorage keeps the token in process memory only. It backs the
// session-scoped tier and tests.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStorage) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// credentialsFile is the on-disk shape of the persisted session entry.
type credentialsFile struct {
	Token string `yaml:"token"`
}

// FileStorage persists the token in a YAML credentials file, the longer-lived
// tier. The file is written with owner-only permissions.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage builds a FileStorage writing to path.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		return nil, errors.New("session: storage path is required")
	}
	return &FileStorage{path: path}, nil
}

// DefaultCredentialsPath places the credentials file under the user config
// directory, namespaced per application.
func DefaultCredentialsPath(appName string) (string, error) {
	if appName == "" {
		return "", errors.New("session: app name is required")
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: resolve config dir: %w", err)
	}
	return filepath.Join(base, appName, "credentials.yml"), nil
}

func (f *FileStorage) Load() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("session: read credentials: %w", err)
	}

	var creds credentialsFile
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return "", fmt.Errorf("session: decode credentials: %w", err)
	}
	return creds.Token, nil
}

func (f *FileStorage) Save(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := yaml.Marshal(credentialsFile{Token: token})
	if err != nil {
		return fmt.Errorf("session: encode credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("session: create storage dir: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write credentials: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: remove credentials: %w", err)
	}
	return nil
}
