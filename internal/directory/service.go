package directory

import (
	"log"
	"sync"

	"dartview/internal/pkg/dart"
)

// Loader is the slice of the DART client the service needs.
type Loader interface {
	GetCompanies() ([]dart.DirectoryEntry, error)
}

// Service caches one directory snapshot per credential for the process
// lifetime; the corpCode listing changes rarely enough that no expiry
// is needed. Two different credentials never share a snapshot.
type Service struct {
	newLoader func(apiKey string) Loader

	mu    sync.Mutex
	cache map[string]*Directory
}

func NewService(newLoader func(apiKey string) Loader) *Service {
	return &Service{
		newLoader: newLoader,
		cache:     map[string]*Directory{},
	}
}

// Directory returns the cached snapshot for the credential, loading it
// on first use.
func (s *Service) Directory(apiKey string) (*Directory, error) {
	if apiKey == "" {
		return nil, dart.ErrMissingAPIKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.cache[apiKey]; ok {
		return d, nil
	}

	entries, err := s.newLoader(apiKey).GetCompanies()
	if err != nil {
		return nil, err
	}

	d := NewDirectory(entries)
	log.Printf("directory: loaded %d companies", d.Len())
	s.cache[apiKey] = d
	return d, nil
}
