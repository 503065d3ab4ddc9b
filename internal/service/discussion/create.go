package discussion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/discussion-backend/internal/adapter/schema"
	"github.com/heartmarshall/discussion-backend/internal/domain"
	"github.com/heartmarshall/discussion-backend/pkg/ctxutil"
)

// CreateDiscussion validates and persists a new discussion, then projects it
// into the search index and the cache.
func (s *Service) CreateDiscussion(ctx context.Context, input CreateInput) (*domain.Discussion, error) {
	if err := s.validator.Validate(schema.Discussion, input.Document); err != nil {
		return nil, err
	}
	payload, err := payloadFromDocument(input.Document)
	if err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("create discussion: mint id: %w", err)
	}

	payload.CreatedBy = userID
	d := &domain.Discussion{
		ID:        id,
		Payload:   payload,
		VoteCount: 0,
		IsActive:  true,
		CreatedAt: s.now(),
	}

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	created, err := s.store.Create(storeCtx, d)
	if err != nil {
		return nil, fmt.Errorf("create discussion: %w", err)
	}

	s.project(ctx, created.ID)

	s.log.InfoContext(ctx, "discussion created",
		slog.String("user_id", userID),
		slog.String("discussion_id", created.ID.String()),
		slog.String("type", created.Payload.Type),
	)

	return created, nil
}
