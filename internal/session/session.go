package session

import (
	"context"

	"github.com/xaenox/gallery-bot/internal/models"
)

// Key addresses the two session documents for one participant in one
// conversation.
type Key struct {
	ConversationID string
	UserID         int64
}

// Store persists the per-user profile and the per-conversation scratch
// document. Loads apply defaults for unseen keys; saves are last-writer-wins.
type Store interface {
	LoadProfile(ctx context.Context, key Key) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, key Key, profile *models.UserProfile) error
	LoadConversationData(ctx context.Context, key Key) (*models.ConversationData, error)
	SaveConversationData(ctx context.Context, key Key, data *models.ConversationData) error
	Close() error
}
