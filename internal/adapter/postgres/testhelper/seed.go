package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDiscussion inserts an active discussion with zero votes.
// Returns the filled domain.Discussion.
func SeedDiscussion(t *testing.T, pool *pgxpool.Pool) domain.Discussion {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	d := domain.Discussion{
		ID: uuid.Must(uuid.NewV7()),
		Payload: domain.DiscussionPayload{
			Type:        "question",
			Title:       "Seeded discussion " + suffix,
			Description: "seeded by testhelper",
			TargetTopic: "testing",
			Tags:        []string{"seed"},
			AnswerPosts: []string{},
			CreatedBy:   "user-" + suffix,
		},
		IsActive:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO discussions (id, type, title, description, target_topic, tags, answer_posts, created_by, vote_count, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, true, $9)`,
		d.ID, d.Payload.Type, d.Payload.Title, d.Payload.Description, d.Payload.TargetTopic,
		d.Payload.Tags, d.Payload.AnswerPosts, d.Payload.CreatedBy, d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDiscussion insert: %v", err)
	}

	return d
}

// SeedVote inserts a ledger row for (userID, discussionID).
func SeedVote(t *testing.T, pool *pgxpool.Pool, userID string, discussionID uuid.UUID, dir domain.VoteDirection) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO discussion_votes (user_id, discussion_id, direction) VALUES ($1, $2, $3)`,
		userID, discussionID, string(dir),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVote insert: %v", err)
	}
}
