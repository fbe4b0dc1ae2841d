package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xaenox/gallery-bot/internal/models"
)

func testStore() *MemoryStore {
	store := NewMemoryStore()
	store.AddRecord(&models.CatalogRecord{PaintID: 1, Title: "One"}, []string{"portrait", "woman"})
	store.AddRecord(&models.CatalogRecord{PaintID: 2, Title: "Two"}, []string{"landscape", "tree", "water"})
	store.AddRecord(&models.CatalogRecord{PaintID: 3, Title: "Three"}, []string{"landscape", "tree"})
	store.AddRecord(&models.CatalogRecord{PaintID: 4, Title: "Four"}, []string{"portrait"})
	store.AddRecord(&models.CatalogRecord{PaintID: 5, Title: "Five"}, []string{"landscape"})
	return store
}

func TestMatcher_BestMatch(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("selects the record with the strictly greatest overlap", func(t *testing.T) {
		m := NewMatcher(testStore(), 6, 1, logger)

		id, err := m.BestMatch(ctx, []string{"landscape", "tree", "water"})
		require.NoError(t, err)
		assert.Equal(t, 2, id)
	})

	t.Run("ties go to the lowest id", func(t *testing.T) {
		m := NewMatcher(testStore(), 6, 1, logger)

		// "landscape" and "tree" match records 2 and 3 equally.
		id, err := m.BestMatch(ctx, []string{"landscape", "tree"})
		require.NoError(t, err)
		assert.Equal(t, 2, id)
	})

	t.Run("empty tag set yields no match", func(t *testing.T) {
		m := NewMatcher(testStore(), 6, 1, logger)

		_, err := m.BestMatch(ctx, nil)
		assert.ErrorIs(t, err, models.ErrNoMatch)
	})

	t.Run("zero overlap yields no match instead of an arbitrary record", func(t *testing.T) {
		m := NewMatcher(testStore(), 6, 1, logger)

		_, err := m.BestMatch(ctx, []string{"spaceship"})
		assert.ErrorIs(t, err, models.ErrNoMatch)
	})

	t.Run("single record scenario", func(t *testing.T) {
		store := NewMemoryStore()
		store.AddRecord(&models.CatalogRecord{PaintID: 5, Title: "Five"}, []string{"landscape"})
		m := NewMatcher(store, 106, 1, logger)

		id, err := m.BestMatch(ctx, []string{"landscape"})
		require.NoError(t, err)
		assert.Equal(t, 5, id)
	})

	t.Run("parallel scan agrees with sequential scan", func(t *testing.T) {
		seq := NewMatcher(testStore(), 6, 1, logger)
		par := NewMatcher(testStore(), 6, 4, logger)

		for _, tags := range [][]string{
			{"landscape", "tree", "water"},
			{"landscape", "tree"},
			{"portrait"},
			{"landscape"},
		} {
			wantID, err := seq.BestMatch(ctx, tags)
			require.NoError(t, err)
			gotID, err := par.BestMatch(ctx, tags)
			require.NoError(t, err)
			assert.Equal(t, wantID, gotID, "tags %v", tags)
		}
	})
}
