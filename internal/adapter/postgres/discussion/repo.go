// Package discussion implements the authoritative discussion store on
// PostgreSQL. Vote counts are only ever moved with an atomic increment.
package discussion

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/discussion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/discussion-backend/internal/domain"
)

const entity = "discussion"

// Repo provides discussion persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new discussion repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, type, title, description, target_topic, tags, answer_posts, extra,
    created_by, vote_count, is_active, created_at, updated_at`

const insertSQL = `
INSERT INTO discussions (id, type, title, description, target_topic, tags, answer_posts, extra,
    created_by, vote_count, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM discussions WHERE id = $1`

const getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

const setInactiveSQL = `
UPDATE discussions SET is_active = false, updated_at = $2
WHERE id = $1 AND is_active
RETURNING ` + columns

const addVotesSQL = `
UPDATE discussions SET vote_count = vote_count + $2, updated_at = $3
WHERE id = $1 AND is_active
RETURNING ` + columns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a discussion by primary key regardless of its active flag.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	d, err := scanDiscussion(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id.String())
	}
	return d, nil
}

// GetForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	d, err := scanDiscussion(q.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id.String())
	}
	return d, nil
}

// ListAfter returns up to limit discussions with an id greater than after,
// ordered by id. Pass uuid.Nil to start from the beginning. limit must be
// positive.
func (r *Repo) ListAfter(ctx context.Context, after uuid.UUID, limit int) ([]*domain.Discussion, error) {
	if limit < 1 {
		return nil, fmt.Errorf("list discussions: limit %d: %w", limit, domain.ErrValidation)
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Select(columns).
		From("discussions").
		Where(sq.Gt{"id": after}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list discussions: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, after.String())
	}
	defer rows.Close()

	var out []*domain.Discussion
	for rows.Next() {
		d, err := scanDiscussion(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity, after.String())
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, after.String())
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new discussion and returns the persisted row.
// Returns domain.ErrAlreadyExists if the id is taken.
func (r *Repo) Create(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p := d.Payload
	row := q.QueryRow(ctx, insertSQL,
		d.ID, p.Type, p.Title, p.Description, p.TargetTopic,
		nonNil(p.Tags), nonNil(p.AnswerPosts), extraOrEmpty(p.Extra),
		p.CreatedBy, d.VoteCount, d.IsActive, d.CreatedAt,
	)

	created, err := scanDiscussion(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, d.ID.String())
	}
	return created, nil
}

// Update writes the payload of d and stamps updated_at. Vote count and the
// active flag are not touched; they have dedicated operations.
// Returns domain.ErrNotFound if the discussion does not exist.
func (r *Repo) Update(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p := d.Payload
	query, args, err := psql.Update("discussions").
		SetMap(map[string]any{
			"type":         p.Type,
			"title":        p.Title,
			"description":  p.Description,
			"target_topic": p.TargetTopic,
			"tags":         nonNil(p.Tags),
			"answer_posts": nonNil(p.AnswerPosts),
			"extra":        extraOrEmpty(p.Extra),
			"updated_at":   d.UpdatedAt,
		}).
		Where(sq.Eq{"id": d.ID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update discussion: %w", err)
	}

	updated, err := scanDiscussion(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, d.ID.String())
	}
	return updated, nil
}

// SetInactive soft-deletes an active discussion.
// Returns domain.ErrInactive when the row exists but is already inactive and
// domain.ErrNotFound when it does not exist.
func (r *Repo) SetInactive(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	d, err := scanDiscussion(q.QueryRow(ctx, setInactiveSQL, id, at))
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, entity, id.String())
	}
	return nil, r.inactiveOrMissing(ctx, q, id)
}

// AddVotes atomically adds delta to the vote counter of an active discussion
// and returns the updated row.
// Returns domain.ErrInactive for an inactive discussion and domain.ErrNotFound
// for a missing one.
func (r *Repo) AddVotes(ctx context.Context, id uuid.UUID, delta int64, at time.Time) (*domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	d, err := scanDiscussion(q.QueryRow(ctx, addVotesSQL, id, delta, at))
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, entity, id.String())
	}
	return nil, r.inactiveOrMissing(ctx, q, id)
}

func (r *Repo) inactiveOrMissing(ctx context.Context, q postgres.Querier, id uuid.UUID) error {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM discussions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return postgres.MapError(err, entity, id.String())
	}
	if exists {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrInactive)
	}
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanDiscussion(row pgx.Row) (*domain.Discussion, error) {
	var (
		d         domain.Discussion
		extra     map[string]any
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&d.ID, &d.Payload.Type, &d.Payload.Title, &d.Payload.Description, &d.Payload.TargetTopic,
		&d.Payload.Tags, &d.Payload.AnswerPosts, &extra,
		&d.Payload.CreatedBy, &d.VoteCount, &d.IsActive, &d.CreatedAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(extra) > 0 {
		d.Payload.Extra = extra
	}
	if updatedAt.Valid {
		d.UpdatedAt = updatedAt.Time
	}
	return &d, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func extraOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
