package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Document keys of a discussion. Payload keys are also the accepted request
// fields; everything else in a request lands in DiscussionPayload.Extra.
const (
	KeyDiscussionID = "discussionId"
	KeyType         = "type"
	KeyTitle        = "title"
	KeyDescription  = "description"
	KeyTargetTopic  = "targetTopic"
	KeyTags         = "tags"
	KeyAnswerPosts  = "answerPosts"
	KeyCreatedBy    = "createdBy"
	KeyVoteCount    = "voteCount"
	KeyIsActive     = "isActive"
	KeyCreatedOn    = "createdOn"
	KeyUpdatedOn    = "updatedOn"
)

// TimeLayout is the document timestamp format. Fixed-width fractional seconds
// keep lexicographic and chronological order equal.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

var reservedKeys = []string{
	KeyDiscussionID, KeyType, KeyTitle, KeyDescription, KeyTargetTopic, KeyTags,
	KeyAnswerPosts, KeyCreatedBy, KeyVoteCount, KeyIsActive, KeyCreatedOn, KeyUpdatedOn,
}

// IsReservedKey reports whether key is owned by the typed discussion fields.
func IsReservedKey(key string) bool {
	return slices.Contains(reservedKeys, key)
}

// DiscussionPayload is the user-supplied content of a discussion.
type DiscussionPayload struct {
	Type        string
	Title       string
	Description string
	TargetTopic string
	Tags        []string
	AnswerPosts []string // ordered set, no duplicates
	CreatedBy   string
	Extra       map[string]any
}

// Discussion is the authoritative record of a discussion thread.
type Discussion struct {
	ID        uuid.UUID
	Payload   DiscussionPayload
	VoteCount int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiscussionUpdateParams holds the mutable fields of a discussion.
// nil means "leave unchanged".
type DiscussionUpdateParams struct {
	Type        *string
	Title       *string
	Description *string
	TargetTopic *string
	Tags        *[]string
	AnswerPosts []string // merged into the existing set, never replaces it
}

// IsEmpty reports whether no field is set.
func (p DiscussionUpdateParams) IsEmpty() bool {
	return p.Type == nil && p.Title == nil && p.Description == nil &&
		p.TargetTopic == nil && p.Tags == nil && len(p.AnswerPosts) == 0
}

// Apply overwrites present fields on payload and merges the answer posts.
func (p DiscussionUpdateParams) Apply(payload *DiscussionPayload) {
	if p.Type != nil {
		payload.Type = *p.Type
	}
	if p.Title != nil {
		payload.Title = *p.Title
	}
	if p.Description != nil {
		payload.Description = *p.Description
	}
	if p.TargetTopic != nil {
		payload.TargetTopic = *p.TargetTopic
	}
	if p.Tags != nil {
		payload.Tags = slices.Clone(*p.Tags)
	}
	for _, post := range p.AnswerPosts {
		payload.AnswerPosts = MergeAnswerPost(payload.AnswerPosts, post)
	}
}

// MergeAnswerPost returns posts with id appended unless already present or blank.
// Existing order is kept.
func MergeAnswerPost(posts []string, id string) []string {
	if id == "" || slices.Contains(posts, id) {
		return posts
	}
	return append(slices.Clone(posts), id)
}

// Document flattens the discussion into the JSON-shaped document used for the
// cache, the search projection and API responses. Typed fields win over
// same-named keys in Extra.
func (d *Discussion) Document() map[string]any {
	doc := make(map[string]any, len(d.Payload.Extra)+len(reservedKeys))
	for k, v := range d.Payload.Extra {
		doc[k] = v
	}

	tags := d.Payload.Tags
	if tags == nil {
		tags = []string{}
	}
	posts := d.Payload.AnswerPosts
	if posts == nil {
		posts = []string{}
	}

	doc[KeyDiscussionID] = d.ID.String()
	doc[KeyType] = d.Payload.Type
	doc[KeyTitle] = d.Payload.Title
	doc[KeyDescription] = d.Payload.Description
	doc[KeyTargetTopic] = d.Payload.TargetTopic
	doc[KeyTags] = tags
	doc[KeyAnswerPosts] = posts
	doc[KeyCreatedBy] = d.Payload.CreatedBy
	doc[KeyVoteCount] = d.VoteCount
	doc[KeyIsActive] = d.IsActive
	doc[KeyCreatedOn] = d.CreatedAt.UTC().Format(TimeLayout)
	if !d.UpdatedAt.IsZero() {
		doc[KeyUpdatedOn] = d.UpdatedAt.UTC().Format(TimeLayout)
	}
	return doc
}

// MarshalJSON encodes the flattened document.
func (d Discussion) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Document())
}

// UnmarshalJSON decodes a flattened document produced by MarshalJSON.
func (d *Discussion) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out Discussion
	var idStr, createdOn, updatedOn string

	fields := []struct {
		key string
		dst any
	}{
		{KeyDiscussionID, &idStr},
		{KeyType, &out.Payload.Type},
		{KeyTitle, &out.Payload.Title},
		{KeyDescription, &out.Payload.Description},
		{KeyTargetTopic, &out.Payload.TargetTopic},
		{KeyTags, &out.Payload.Tags},
		{KeyAnswerPosts, &out.Payload.AnswerPosts},
		{KeyCreatedBy, &out.Payload.CreatedBy},
		{KeyVoteCount, &out.VoteCount},
		{KeyIsActive, &out.IsActive},
		{KeyCreatedOn, &createdOn},
		{KeyUpdatedOn, &updatedOn},
	}
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return fmt.Errorf("decode %s: %w", f.key, err)
		}
		delete(raw, f.key)
	}

	if idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return fmt.Errorf("decode %s: %w", KeyDiscussionID, err)
		}
		out.ID = id
	}
	if createdOn != "" {
		t, err := time.Parse(time.RFC3339Nano, createdOn)
		if err != nil {
			return fmt.Errorf("decode %s: %w", KeyCreatedOn, err)
		}
		out.CreatedAt = t
	}
	if updatedOn != "" {
		t, err := time.Parse(time.RFC3339Nano, updatedOn)
		if err != nil {
			return fmt.Errorf("decode %s: %w", KeyUpdatedOn, err)
		}
		out.UpdatedAt = t
	}

	if len(raw) > 0 {
		out.Payload.Extra = make(map[string]any, len(raw))
		for k, v := range raw {
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return fmt.Errorf("decode %s: %w", k, err)
			}
			out.Payload.Extra[k] = val
		}
	}

	*d = out
	return nil
}

// Vote is the ledger record of a user's current vote on a discussion.
type Vote struct {
	UserID       string
	DiscussionID uuid.UUID
	Direction    VoteDirection
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
