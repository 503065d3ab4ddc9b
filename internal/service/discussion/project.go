package discussion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/discussion-backend/internal/domain"
	"github.com/heartmarshall/discussion-backend/internal/projection"
)

// Projection step targets.
const (
	targetIndex = "index"
	targetCache = "cache"
)

// project refreshes the derived copies of a committed discussion. The cached
// entry is evicted right away; the index document and the cache entry are
// rebuilt in the background from a fresh store read, so tasks for one
// discussion converge on the latest committed state whatever order their
// transactions committed in.
func (s *Service) project(ctx context.Context, id uuid.UUID) {
	key := cacheKey(id)
	s.docs.Remove(key)

	var latest *domain.Discussion
	load := func(ctx context.Context) (*domain.Discussion, error) {
		if latest != nil {
			return latest, nil
		}
		d, err := s.store.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load discussion %s: %w", id, err)
		}
		latest = d
		return d, nil
	}

	s.projector.Submit(ctx, key,
		projection.Step{Target: targetIndex, Fn: func(ctx context.Context) error {
			d, err := load(ctx)
			if err != nil {
				return err
			}
			return s.index.Upsert(ctx, s.cfg.IndexName, id.String(), d.Document())
		}},
		projection.Step{Target: targetCache, Fn: func(ctx context.Context) error {
			d, err := load(ctx)
			if err != nil {
				return err
			}
			return s.putCache(d)
		}},
	)
}

func (s *Service) putCache(d *domain.Discussion) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode discussion %s: %w", d.ID, err)
	}
	s.docs.Put(cacheKey(d.ID), data)
	return nil
}

// backfillCache caches a discussion loaded on a read miss. It never replaces
// an entry: one present by now was written by a projection from a read that
// may be newer than d.
func (s *Service) backfillCache(d *domain.Discussion) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode discussion %s: %w", d.ID, err)
	}
	s.docs.PutIfAbsent(cacheKey(d.ID), data)
	return nil
}
