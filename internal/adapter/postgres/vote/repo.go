// Package vote implements the per-user vote ledger on PostgreSQL.
// Uniqueness of (user, discussion) is enforced by the primary key; writes are
// conditional so concurrent voters detect each other instead of overwriting.
package vote

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/discussion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/discussion-backend/internal/domain"
)

const entity = "vote"

// Repo provides vote ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vote ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const findSQL = `
SELECT user_id, discussion_id, direction, created_at, updated_at
FROM discussion_votes
WHERE user_id = $1 AND discussion_id = $2`

const updateDirectionSQL = `
UPDATE discussion_votes SET direction = $3, updated_at = $5
WHERE user_id = $1 AND discussion_id = $2 AND direction = $4`

// Find returns the user's current vote on a discussion.
// Returns domain.ErrNotFound if the user has not voted.
func (r *Repo) Find(ctx context.Context, userID string, discussionID uuid.UUID) (*domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		v   domain.Vote
		dir string
	)
	err := q.QueryRow(ctx, findSQL, userID, discussionID).
		Scan(&v.UserID, &v.DiscussionID, &dir, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, key(userID, discussionID))
	}

	v.Direction = domain.VoteDirection(dir)
	return &v, nil
}

// Insert records a first vote. It never overwrites: if a row for the pair
// already exists the call returns domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, v *domain.Vote) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Insert("discussion_votes").
		Columns("user_id", "discussion_id", "direction", "created_at", "updated_at").
		Values(v.UserID, v.DiscussionID, string(v.Direction), v.CreatedAt, v.UpdatedAt).
		Suffix("ON CONFLICT (user_id, discussion_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert vote: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, key(v.UserID, v.DiscussionID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, key(v.UserID, v.DiscussionID), domain.ErrAlreadyExists)
	}
	return nil
}

// UpdateDirection changes a vote from one direction to another, but only if
// the stored direction still equals from. A lost race returns domain.ErrStaleWrite.
func (r *Repo) UpdateDirection(ctx context.Context, userID string, discussionID uuid.UUID, from, to domain.VoteDirection, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, updateDirectionSQL, userID, discussionID, string(to), string(from), at)
	if err != nil {
		return postgres.MapError(err, entity, key(userID, discussionID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, key(userID, discussionID), domain.ErrStaleWrite)
	}
	return nil
}

func key(userID string, discussionID uuid.UUID) string {
	return userID + "/" + discussionID.String()
}
