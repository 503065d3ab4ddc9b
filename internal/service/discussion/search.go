package discussion

import (
	"context"
	"fmt"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

// SearchDiscussions runs a search against the discussion index. Successful
// pages are cached under a key derived from the normalized criteria.
func (s *Service) SearchDiscussions(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	criteria = criteria.Normalize()

	sig, err := s.signer.Key(criteria)
	if err != nil {
		return nil, fmt.Errorf("search discussions: %w", err)
	}
	key := searchCacheKeyPrefix + sig

	if cached, ok := s.searches.Get(key); ok {
		return cached, nil
	}

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	result, err := s.index.Query(storeCtx, s.cfg.IndexName, criteria)
	if err != nil {
		return nil, fmt.Errorf("search discussions: %w", err)
	}

	s.searches.Set(key, result)
	return result, nil
}
