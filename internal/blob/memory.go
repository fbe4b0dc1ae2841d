package blob

import (
	"context"
	"sync"
)

// MemoryStore keeps uploads in memory. Used for tests and the use_in_memory
// config mode.
type MemoryStore struct {
	mu      sync.Mutex
	baseURL string
	objects map[string][]byte
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		baseURL: baseURL,
		objects: make(map[string][]byte),
	}
}

func (s *MemoryStore) Upload(ctx context.Context, name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[name] = data
	return s.baseURL + "/" + name, nil
}
