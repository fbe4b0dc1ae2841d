package vision

import (
	"context"

	"github.com/xaenox/gallery-bot/internal/models"
)

// Classifier produces (label, confidence) tags for an image reference.
// Implementations must wrap vendor failures into models.ErrClassification
// so callers can distinguish "service failed" from "no tags detected".
type Classifier interface {
	Analyze(ctx context.Context, imageURL string) ([]models.Tag, error)
}
