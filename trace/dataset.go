package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrDatasetNotFound is returned when no dataset with the given name
	// exists in the underlying store.
	ErrDatasetNotFound = fmt.Errorf("dataset not found")
)

// DatasetStore persists named datasets of recorded spans as opaque blobs.
// Loading a dataset reproduces an equivalent ordered span sequence for
// offline review and annotation.
type DatasetStore interface {
	Save(name string, spans []Span) error
	Load(name string) ([]Span, error)
	List() ([]string, error)
	Delete(name string) error
}

// InMemoryDatasetStore is a volatile DatasetStore keeping encoded datasets in
// a process local map. It is safe for concurrent access and best suited for
// tests or ephemeral demo setups. Data is copied on save / load to avoid
// accidental external mutation of internal buffers.
type InMemoryDatasetStore struct {
	mu       sync.RWMutex
	datasets map[string][]byte // name -> encoded blob
}

// NewInMemoryDatasetStore returns an empty in-memory dataset store.
func NewInMemoryDatasetStore() *InMemoryDatasetStore {
	return &InMemoryDatasetStore{datasets: make(map[string][]byte)}
}

// Save stores (or overwrites) the dataset under name.
func (s *InMemoryDatasetStore) Save(name string, spans []Span) error {
	blob, err := encodeDataset(spans)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[name] = blob
	return nil
}

// Load returns the ordered span sequence stored under name or ErrDatasetNotFound.
func (s *InMemoryDatasetStore) Load(name string) ([]Span, error) {
	s.mu.RLock()
	blob, ok := s.datasets[name]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrDatasetNotFound
	}
	return decodeDataset(blob)
}

// List returns the stored dataset names in lexical order.
func (s *InMemoryDatasetStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the dataset if present or returns ErrDatasetNotFound.
func (s *InMemoryDatasetStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.datasets[name]; !ok {
		return ErrDatasetNotFound
	}
	delete(s.datasets, name)
	return nil
}

// FileDatasetStore persists each dataset as a JSON file named <name>.json in
// a base directory. Suitable for durable local review workflows; for shared
// storage, implement DatasetStore against an object store instead.
type FileDatasetStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileDatasetStore creates the base directory if needed and returns the store.
func NewFileDatasetStore(dir string) (*FileDatasetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dataset dir: %w", err)
	}
	return &FileDatasetStore{dir: dir}, nil
}

// Save writes the dataset blob to <dir>/<name>.json, overwriting any previous version.
func (s *FileDatasetStore) Save(name string, spans []Span) error {
	blob, err := encodeDataset(spans)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(name), blob, 0o644); err != nil {
		return fmt.Errorf("write dataset %s: %w", name, err)
	}
	return nil
}

// Load reads and decodes the named dataset or returns ErrDatasetNotFound.
func (s *FileDatasetStore) Load(name string) ([]Span, error) {
	s.mu.Lock()
	blob, err := os.ReadFile(s.path(name))
	s.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDatasetNotFound
		}
		return nil, fmt.Errorf("read dataset %s: %w", name, err)
	}
	return decodeDataset(blob)
}

// List returns the dataset names present in the base directory in lexical order.
func (s *FileDatasetStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the dataset file if present or returns ErrDatasetNotFound.
func (s *FileDatasetStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return ErrDatasetNotFound
		}
		return fmt.Errorf("delete dataset %s: %w", name, err)
	}
	return nil
}

func (s *FileDatasetStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func encodeDataset(spans []Span) ([]byte, error) {
	blob, err := json.Marshal(spans)
	if err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return blob, nil
}

func decodeDataset(blob []byte) ([]Span, error) {
	var spans []Span
	if err := json.Unmarshal(blob, &spans); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return spans, nil
}
