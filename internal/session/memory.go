package session

import (
	"context"
	"sync"

	"github.com/xaenox/gallery-bot/internal/models"
)

// MemoryStore keeps session documents in process memory.
type MemoryStore struct {
	mu            sync.RWMutex
	profiles      map[Key]*models.UserProfile
	conversations map[Key]*models.ConversationData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:      make(map[Key]*models.UserProfile),
		conversations: make(map[Key]*models.ConversationData),
	}
}

func (s *MemoryStore) LoadProfile(ctx context.Context, key Key) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if profile, exists := s.profiles[key]; exists {
		copied := *profile
		return &copied, nil
	}
	return models.NewUserProfile(), nil
}

func (s *MemoryStore) SaveProfile(ctx context.Context, key Key, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *profile
	s.profiles[key] = &copied
	return nil
}

func (s *MemoryStore) LoadConversationData(ctx context.Context, key Key) (*models.ConversationData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if data, exists := s.conversations[key]; exists {
		copied := *data
		return &copied, nil
	}
	return &models.ConversationData{}, nil
}

func (s *MemoryStore) SaveConversationData(ctx context.Context, key Key, data *models.ConversationData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *data
	s.conversations[key] = &copied
	return nil
}

func (s *MemoryStore) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
