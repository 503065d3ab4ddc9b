package discussion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/discussion-backend/internal/domain"
	"github.com/heartmarshall/discussion-backend/pkg/ctxutil"
)

// DeleteDiscussion soft-deletes a discussion. Deleting an already inactive
// discussion succeeds without writing anything.
func (s *Service) DeleteDiscussion(ctx context.Context, rawID string) (DeleteResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return DeleteResult{}, domain.ErrUnauthorized
	}

	id, err := parseID(rawID)
	if err != nil {
		return DeleteResult{}, err
	}

	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	_, err = s.store.SetInactive(storeCtx, id, s.now())
	switch {
	case errors.Is(err, domain.ErrInactive):
		return DeleteResult{DiscussionID: id, Status: domain.DeleteStatusAlreadyInactive}, nil
	case err != nil:
		return DeleteResult{}, fmt.Errorf("delete discussion: %w", err)
	}

	s.project(ctx, id)

	s.log.InfoContext(ctx, "discussion deleted",
		slog.String("user_id", userID),
		slog.String("discussion_id", id.String()),
	)

	return DeleteResult{DiscussionID: id, Status: domain.DeleteStatusDeleted}, nil
}
