package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/xaenox/gallery-bot/internal/models"
)

// MemoryStore keeps the catalog in memory, mirroring the row-per-tag shape
// of the Postgres table. Used for tests and the use_in_memory config mode.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[int]*models.CatalogRecord
	tags    map[int][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[int]*models.CatalogRecord),
		tags:    make(map[int][]string),
	}
}

// AddRecord registers a record and its tag rows.
func (s *MemoryStore) AddRecord(record *models.CatalogRecord, tags []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.PaintID] = record
	s.tags[record.PaintID] = append(s.tags[record.PaintID], tags...)
}

func (s *MemoryStore) CountTagMatches(ctx context.Context, paintID int, tags []string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, row := range s.tags[paintID] {
		for _, t := range tags {
			if row == t {
				count++
				break
			}
		}
	}
	return count, nil
}

func (s *MemoryStore) GetRecord(ctx context.Context, paintID int) (*models.CatalogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if record, exists := s.records[paintID]; exists {
		copied := *record
		return &copied, nil
	}
	return nil, fmt.Errorf("%w: record %d not found", models.ErrStoreQuery, paintID)
}

func (s *MemoryStore) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
