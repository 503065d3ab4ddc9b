package discussion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/discussion-backend/internal/domain"
	"github.com/heartmarshall/discussion-backend/pkg/ctxutil"
)

// Vote outcomes reported by discussion_votes_total.
const (
	outcomeFresh    = "fresh"
	outcomeFlip     = "flip"
	outcomeRejected = "rejected"
	outcomeRetry    = "retry"
)

var votesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "discussion_votes_total",
	Help: "Vote attempts by direction and outcome.",
}, []string{"direction", "outcome"})

// Vote records the caller's vote on a discussion and moves its counter by
// the net change: ±1 for a first vote, ±2 for a flip. Repeating the current
// direction is rejected.
func (s *Service) Vote(ctx context.Context, input VoteInput) (*VoteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	dir, _ := domain.ParseVoteDirection(input.Direction)

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	id, err := parseID(input.DiscussionID)
	if err != nil {
		return nil, err
	}

	var result *VoteResult
	for attempt := 1; ; attempt++ {
		result, err = s.voteOnce(ctx, userID, id, dir)
		if !errors.Is(err, domain.ErrAlreadyExists) && !errors.Is(err, domain.ErrStaleWrite) {
			break
		}
		votesTotal.WithLabelValues(dir.String(), outcomeRetry).Inc()
		s.log.DebugContext(ctx, "vote lost a ledger race, retrying",
			slog.String("discussion_id", id.String()),
			slog.Int("attempt", attempt),
		)
		if attempt >= s.cfg.MaxVoteAttempts {
			return nil, fmt.Errorf("vote: ledger write not acknowledged after %d attempts: %w",
				attempt, domain.ErrPersistence)
		}
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		votesTotal.WithLabelValues(dir.String(), outcomeRejected).Inc()
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("vote: %w", err)
	}

	s.project(ctx, id)

	s.log.InfoContext(ctx, "discussion voted",
		slog.String("user_id", userID),
		slog.String("discussion_id", id.String()),
		slog.String("direction", dir.String()),
		slog.Int64("delta", result.Delta),
		slog.Int64("vote_count", result.VoteCount),
	)

	return result, nil
}

// voteOnce runs one ledger-and-counter transaction. ErrAlreadyExists and
// ErrStaleWrite mean a concurrent vote by the same user changed the ledger
// between the lookup and the write.
func (s *Service) voteOnce(ctx context.Context, userID string, id uuid.UUID, dir domain.VoteDirection) (*VoteResult, error) {
	storeCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	var (
		result  *VoteResult
		outcome string
	)
	err := s.tx.RunInTx(storeCtx, func(txCtx context.Context) error {
		d, err := s.store.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !d.IsActive {
			return fmt.Errorf("discussion %s: %w", id, domain.ErrInactive)
		}

		now := s.now()
		existing, err := s.votes.Find(txCtx, userID, id)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		var delta int64
		switch {
		case existing == nil:
			err = s.votes.Insert(txCtx, &domain.Vote{
				UserID:       userID,
				DiscussionID: id,
				Direction:    dir,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
			if err != nil {
				return err
			}
			delta, outcome = dir.FreshDelta(), outcomeFresh
		case existing.Direction == dir:
			return &domain.ConflictError{Message: "user already voted " + dir.String()}
		default:
			if err := s.votes.UpdateDirection(txCtx, userID, id, existing.Direction, dir, now); err != nil {
				return err
			}
			delta, outcome = dir.FlipDelta(existing.Direction), outcomeFlip
		}

		updated, err := s.store.AddVotes(txCtx, id, delta, now)
		if err != nil {
			return err
		}

		result = &VoteResult{
			DiscussionID: id,
			Direction:    dir,
			Delta:        delta,
			VoteCount:    updated.VoteCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	votesTotal.WithLabelValues(dir.String(), outcome).Inc()
	return result, nil
}
