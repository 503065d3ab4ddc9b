package discussion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/discussion-backend/internal/adapter/schema"
	"github.com/heartmarshall/discussion-backend/internal/domain"
	"github.com/heartmarshall/discussion-backend/pkg/ctxutil"
)

// UpdateDiscussion overwrites the present fields of an active discussion and
// merges the answer post into its set.
func (s *Service) UpdateDiscussion(ctx context.Context, input UpdateInput) (*domain.Discussion, error) {
	if err := s.validator.Validate(schema.DiscussionUpdate, input.Document); err != nil {
		return nil, err
	}
	rawID, params, extra, err := updateFromDocument(input.Document)
	if err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	var updated *domain.Discussion
	err = s.tx.RunInTx(storeCtx, func(txCtx context.Context) error {
		current, err := s.store.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return fmt.Errorf("discussion %s: %w", id, domain.ErrInactive)
		}

		params.Apply(&current.Payload)
		current.Payload.Extra = mergeExtra(current.Payload.Extra, extra)
		current.UpdatedAt = s.now()

		updated, err = s.store.Update(txCtx, current)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update discussion: %w", err)
	}

	s.project(ctx, updated.ID)

	s.log.InfoContext(ctx, "discussion updated",
		slog.String("user_id", userID),
		slog.String("discussion_id", updated.ID.String()),
	)

	return updated, nil
}
