package discussion

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

// DeleteResult holds the outcome of a soft delete.
type DeleteResult struct {
	DiscussionID uuid.UUID
	Status       domain.DeleteStatus
}

// VoteResult holds the outcome of an accepted vote.
type VoteResult struct {
	DiscussionID uuid.UUID
	Direction    domain.VoteDirection
	Delta        int64
	VoteCount    int64
}
