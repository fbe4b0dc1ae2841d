package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/xaenox/gallery-bot/internal/models"
)

// FileStore writes uploads to a local directory served under a public base
// URL.
type FileStore struct {
	dir     string
	baseURL string
	logger  *zap.Logger
}

func NewFileStore(dir, baseURL string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %v", err)
	}
	return &FileStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}, nil
}

func (s *FileStore) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("Failed to write upload",
			zap.Error(err),
			zap.String("path", path))
		return "", fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	return s.baseURL + "/" + name, nil
}
