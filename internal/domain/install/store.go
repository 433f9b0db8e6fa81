package install

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DismissedKey is the fixed key under which the dismissal record is
// stored. The value is the literal "true"; absence means never dismissed.
const DismissedKey = "pwa-banner-dismissed"

const dismissedValue = "true"

// Store persists the dismissal record for one client across visits.
type Store interface {
	// Dismissed reports whether a dismissal record exists.
	Dismissed() bool

	// SetDismissed writes the record. Best-effort: callers must apply
	// their in-memory effect regardless of the returned error.
	SetDismissed() error
}

// FileStore keeps the dismissal record in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Dismissed reports whether the record file holds the dismissed literal.
func (s *FileStore) Dismissed() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == dismissedValue
}

// SetDismissed writes the record file, creating parent directories as
// needed.
func (s *FileStore) SetDismissed() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(dismissedValue), 0o644)
}

// DirStore hands out per-client stores rooted in one directory.
type DirStore struct {
	root string
}

// NewDirStore creates a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{root: dir}
}

// Client returns the store for a client ID. The ID must already be
// validated as path-safe.
func (s *DirStore) Client(clientID string) *FileStore {
	return NewFileStore(filepath.Join(s.root, clientID, DismissedKey))
}

// MemStore is an in-memory store for tests and sessions without a
// client identity.
type MemStore struct {
	mu        sync.Mutex
	dismissed bool

	// Err, when set, is returned by SetDismissed after recording the
	// write. Exercises the storage-unavailable degradation path.
	Err error
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Dismissed reports the in-memory flag.
func (s *MemStore) Dismissed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dismissed
}

// SetDismissed sets the in-memory flag.
func (s *MemStore) SetDismissed() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.dismissed = true
	return nil
}
