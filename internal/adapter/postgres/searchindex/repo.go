// Package searchindex implements the discussion search projection on
// PostgreSQL: one JSONB document per (index, id) with a generated tsvector
// over title, description and target topic.
package searchindex

import (
	"context"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/discussion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/discussion-backend/internal/domain"
)

const entity = "search_document"

// facetLimit caps the number of buckets returned per facet.
const facetLimit = 50

// Repo provides the search projection backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new search index repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const upsertSQL = `
INSERT INTO search_documents (index_name, doc_id, document, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (index_name, doc_id)
DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`

// Upsert replaces the whole document stored under (index, id).
func (r *Repo) Upsert(ctx context.Context, index, id string, doc map[string]any) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, upsertSQL, index, id, doc); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

// Ping checks that the projection table is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM search_documents LIMIT 1`).Scan(&one)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return postgres.MapError(err, entity, "")
	}
	return nil
}

// Query runs a search against index. Criteria are expected to be normalized.
// It returns one page of documents, the total hit count and the requested facets.
func (r *Repo) Query(ctx context.Context, index string, c domain.SearchCriteria) (*domain.SearchResult, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := whereClause(index, c)

	total, err := r.count(ctx, q, where)
	if err != nil {
		return nil, err
	}

	data, err := r.page(ctx, q, where, c)
	if err != nil {
		return nil, err
	}

	facets := make(map[string][]domain.FacetValue, len(c.Facets))
	for _, field := range c.Facets {
		buckets, err := r.facet(ctx, q, where, field)
		if err != nil {
			return nil, err
		}
		facets[field] = buckets
	}

	return &domain.SearchResult{
		Data:       data,
		Facets:     facets,
		TotalCount: total,
	}, nil
}

func (r *Repo) count(ctx context.Context, q postgres.Querier, where sq.Sqlizer) (int64, error) {
	query, args, err := psql.Select("count(*)").From("search_documents").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, entity, "")
	}
	return total, nil
}

func (r *Repo) page(ctx context.Context, q postgres.Querier, where sq.Sqlizer, c domain.SearchCriteria) ([]map[string]any, error) {
	builder := psql.Select("document").From("search_documents").Where(where)

	dir := "DESC"
	if c.OrderDirection == "asc" {
		dir = "ASC"
	}
	switch {
	case c.OrderBy != "":
		builder = builder.OrderByClause("document -> ?::text "+dir+" NULLS LAST", c.OrderBy)
	case c.SearchString != "":
		builder = builder.OrderByClause("ts_rank(search_vector, websearch_to_tsquery('simple', ?)) DESC", c.SearchString)
	default:
		builder = builder.OrderBy("updated_at " + dir)
	}

	query, args, err := builder.
		OrderBy("doc_id").
		Limit(uint64(c.PageSize)).
		Offset(uint64(c.PageNumber * c.PageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, "")
	}
	defer rows.Close()

	data := []map[string]any{}
	for rows.Next() {
		var doc map[string]any
		if err := rows.Scan(&doc); err != nil {
			return nil, postgres.MapError(err, entity, "")
		}
		data = append(data, pick(doc, c.RequestedFields))
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, "")
	}
	return data, nil
}

const facetJoin = `CROSS JOIN LATERAL jsonb_array_elements_text(
    CASE jsonb_typeof(document -> ?::text)
        WHEN 'array' THEN document -> ?::text
        ELSE jsonb_build_array(document -> ?::text)
    END) AS f(value)`

func (r *Repo) facet(ctx context.Context, q postgres.Querier, where sq.Sqlizer, field string) ([]domain.FacetValue, error) {
	query, args, err := psql.Select("f.value", "count(*)").
		From("search_documents").
		JoinClause(facetJoin, field, field, field).
		Where(where).
		Where("f.value IS NOT NULL").
		GroupBy("f.value").
		OrderBy("count(*) DESC", "f.value").
		Limit(facetLimit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build facet query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, field)
	}

	buckets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FacetValue, error) {
		var fv domain.FacetValue
		err := row.Scan(&fv.Value, &fv.Count)
		return fv, err
	})
	if err != nil {
		return nil, postgres.MapError(err, entity, field)
	}
	return buckets, nil
}

// whereClause builds the shared filter of count, page and facet queries.
// Filter fields are applied in sorted order so equal criteria give equal SQL.
func whereClause(index string, c domain.SearchCriteria) sq.Sqlizer {
	where := sq.And{sq.Eq{"index_name": index}}

	if c.SearchString != "" {
		where = append(where, sq.Expr("search_vector @@ websearch_to_tsquery('simple', ?)", c.SearchString))
	}

	fields := make([]string, 0, len(c.Filters))
	for f := range c.Filters {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	for _, f := range fields {
		values := c.Filters[f]
		if len(values) == 0 {
			continue
		}
		// Array fields match on any element, scalars on their text form.
		where = append(where, sq.Or{
			sq.Expr("jsonb_exists_any(document -> ?::text, ?::text[])", f, values),
			sq.Expr("document ->> ?::text = ANY(?::text[])", f, values),
		})
	}
	return where
}

// pick returns only the requested keys of doc, or doc itself if none are requested.
func pick(doc map[string]any, fields []string) map[string]any {
	if len(fields) == 0 {
		return doc
	}
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := doc[f]; ok {
			out[f] = v
		}
	}
	return out
}
