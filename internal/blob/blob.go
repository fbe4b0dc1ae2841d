package blob

import "context"

// Store persists inbound attachment bytes and returns a stable public URL
// for them. Implementations wrap their failures into models.ErrStorage.
type Store interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}
