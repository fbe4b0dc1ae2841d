package catalog

import (
	"context"

	"github.com/xaenox/gallery-bot/internal/models"
)

// Store is the read-only catalog contract. The backing collection keeps one
// row per (paintid, tag) pair, so tag matching is a per-candidate COUNT and
// the scalar attributes are fetched separately.
type Store interface {
	// CountTagMatches returns how many of the given tag names appear among
	// the tag rows of the candidate record.
	CountTagMatches(ctx context.Context, paintID int, tags []string) (int, error)
	// GetRecord fetches the full record for a paintid.
	GetRecord(ctx context.Context, paintID int) (*models.CatalogRecord, error)
	Close() error
}
