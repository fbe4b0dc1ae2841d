package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaenox/gallery-bot/internal/models"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	key := Key{ConversationID: "chat-1", UserID: 42}

	t.Run("unseen key loads a defaulted profile", func(t *testing.T) {
		s := NewMemoryStore()

		profile, err := s.LoadProfile(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, models.PivotLanguage, profile.Language)
		assert.False(t, profile.HasPainting())
	})

	t.Run("profile round trip", func(t *testing.T) {
		s := NewMemoryStore()
		saved := &models.UserProfile{Language: "it", PaintingID: 5, PaintingAuthor: "Vincent van Gogh"}

		require.NoError(t, s.SaveProfile(ctx, key, saved))

		loaded, err := s.LoadProfile(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("loaded profile is a copy, not a shared pointer", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.SaveProfile(ctx, key, &models.UserProfile{Language: "it"}))

		first, _ := s.LoadProfile(ctx, key)
		first.Language = "fr"

		second, _ := s.LoadProfile(ctx, key)
		assert.Equal(t, "it", second.Language)
	})

	t.Run("conversation data round trip", func(t *testing.T) {
		s := NewMemoryStore()

		data, err := s.LoadConversationData(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, data)

		require.NoError(t, s.SaveConversationData(ctx, key, data))
		_, err = s.LoadConversationData(ctx, key)
		assert.NoError(t, err)
	})

	t.Run("keys are isolated per user and conversation", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.SaveProfile(ctx, key, &models.UserProfile{Language: "it"}))

		other, err := s.LoadProfile(ctx, Key{ConversationID: "chat-1", UserID: 43})
		require.NoError(t, err)
		assert.Equal(t, models.PivotLanguage, other.Language)
	})
}
