package catalog

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xaenox/gallery-bot/internal/models"
)

// Matcher finds the catalog record with the greatest tag overlap without
// ever materializing the whole catalog: one COUNT query per candidate id in
// [1, size). Ties go to the lowest id — the scan is ascending and only a
// strictly greater count replaces the incumbent.
type Matcher struct {
	store       Store
	size        int
	concurrency int
	logger      *zap.Logger
}

// NewMatcher builds a matcher over candidate ids [1, size). concurrency <= 1
// selects the sequential baseline; higher values fan the count queries out
// with that bound.
func NewMatcher(store Store, size, concurrency int, logger *zap.Logger) *Matcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Matcher{
		store:       store,
		size:        size,
		concurrency: concurrency,
		logger:      logger,
	}
}

// BestMatch returns the id of the record with the most tag-name matches.
// An empty tag set, or a scan where nothing overlaps, yields
// models.ErrNoMatch rather than an arbitrary record.
func (m *Matcher) BestMatch(ctx context.Context, tags []string) (int, error) {
	if len(tags) == 0 {
		return 0, models.ErrNoMatch
	}

	var (
		scores []int
		err    error
	)
	if m.concurrency > 1 {
		scores, err = m.scanParallel(ctx, tags)
	} else {
		scores, err = m.scanSequential(ctx, tags)
	}
	if err != nil {
		return 0, err
	}

	// Reduce after collecting every score so the first-seen-wins tie-break
	// holds regardless of query completion order.
	bestID, bestCount := 0, 0
	for id := 1; id < m.size; id++ {
		if scores[id] > bestCount {
			bestID, bestCount = id, scores[id]
		}
	}

	if bestCount == 0 {
		return 0, models.ErrNoMatch
	}

	m.logger.Debug("Catalog match selected",
		zap.Int("paint_id", bestID),
		zap.Int("overlap", bestCount))
	return bestID, nil
}

func (m *Matcher) scanSequential(ctx context.Context, tags []string) ([]int, error) {
	scores := make([]int, m.size)
	for id := 1; id < m.size; id++ {
		count, err := m.store.CountTagMatches(ctx, id, tags)
		if err != nil {
			return nil, err
		}
		scores[id] = count
	}
	return scores, nil
}

func (m *Matcher) scanParallel(ctx context.Context, tags []string) ([]int, error) {
	scores := make([]int, m.size)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for id := 1; id < m.size; id++ {
		id := id
		g.Go(func() error {
			count, err := m.store.CountTagMatches(ctx, id, tags)
			if err != nil {
				return err
			}
			scores[id] = count
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
