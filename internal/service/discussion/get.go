package discussion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

// GetDiscussion returns a discussion by id. A cached copy is served as is;
// on a miss the store is read and the cache backfilled unless a newer
// projection filled it meanwhile.
func (s *Service) GetDiscussion(ctx context.Context, rawID string) (*domain.Discussion, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(id)
	if data, ok := s.docs.Get(key); ok {
		var cached domain.Discussion
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		s.log.WarnContext(ctx, "dropping undecodable cache entry",
			slog.String("discussion_id", id.String()),
		)
		s.docs.Remove(key)
	}

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	d, err := s.store.GetByID(storeCtx, id)
	if err != nil {
		return nil, fmt.Errorf("get discussion: %w", err)
	}

	if err := s.backfillCache(d); err != nil {
		s.log.WarnContext(ctx, "cache backfill failed",
			slog.String("discussion_id", id.String()),
			slog.String("error", err.Error()),
		)
	}

	return d, nil
}
