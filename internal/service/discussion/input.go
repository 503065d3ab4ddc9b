package discussion

import (
	"fmt"
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

// CreateInput holds the raw discussion document of a create request.
type CreateInput struct {
	Document map[string]any
}

// UpdateInput holds the raw document of an update request. It carries
// discussionId plus the fields to change.
type UpdateInput struct {
	Document map[string]any
}

// VoteInput holds the parameters of a vote request.
type VoteInput struct {
	DiscussionID string
	Direction    string
}

// Validate checks all fields and collects all errors.
func (i VoteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.DiscussionID) == "" {
		errs = append(errs, domain.FieldError{Field: "discussionId", Message: "required"})
	}
	dir := strings.TrimSpace(i.Direction)
	if dir == "" {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "required"})
	} else if _, ok := domain.ParseVoteDirection(dir); !ok {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be up or down"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// parseID turns a client-supplied id into a discussion id. Anything that is
// not a UUID can never match a stored discussion.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("discussion %q: %w", raw, domain.ErrNotFound)
	}
	return id, nil
}

// payloadFromDocument splits a schema-checked create document into typed
// fields and the open-ended remainder. Server-owned keys are dropped.
func payloadFromDocument(doc map[string]any) (domain.DiscussionPayload, error) {
	var (
		p    domain.DiscussionPayload
		errs []domain.FieldError
	)

	str := func(key string, dst *string) {
		v, ok := doc[key]
		if !ok || v == nil {
			return
		}
		s, ok := v.(string)
		if !ok {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be a string"})
			return
		}
		*dst = strings.TrimSpace(s)
	}
	list := func(key string, dst *[]string) {
		v, ok := doc[key]
		if !ok || v == nil {
			return
		}
		vals, ok := toStrings(v)
		if !ok {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be a list of strings"})
			return
		}
		*dst = vals
	}

	str(domain.KeyType, &p.Type)
	str(domain.KeyTitle, &p.Title)
	str(domain.KeyDescription, &p.Description)
	str(domain.KeyTargetTopic, &p.TargetTopic)
	list(domain.KeyTags, &p.Tags)

	var posts []string
	list(domain.KeyAnswerPosts, &posts)
	for _, post := range posts {
		p.AnswerPosts = domain.MergeAnswerPost(p.AnswerPosts, post)
	}

	if p.Type == "" {
		errs = append(errs, domain.FieldError{Field: domain.KeyType, Message: "required"})
	}
	if p.Title == "" {
		errs = append(errs, domain.FieldError{Field: domain.KeyTitle, Message: "required"})
	}

	p.Extra = extraFields(doc)

	if len(errs) > 0 {
		return domain.DiscussionPayload{}, &domain.ValidationError{Errors: errs}
	}
	return p, nil
}

// keyAnswerPost is the single-post form of answerPosts accepted on update.
const keyAnswerPost = "answerPost"

// updateFromDocument extracts the target id, the typed changes and the
// open-ended fields of a schema-checked update document.
func updateFromDocument(doc map[string]any) (string, domain.DiscussionUpdateParams, map[string]any, error) {
	var (
		params domain.DiscussionUpdateParams
		errs   []domain.FieldError
	)

	id, _ := doc[domain.KeyDiscussionID].(string)
	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.FieldError{Field: domain.KeyDiscussionID, Message: "required"})
	}

	str := func(key string) *string {
		v, ok := doc[key]
		if !ok || v == nil {
			return nil
		}
		s, ok := v.(string)
		if !ok {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be a string"})
			return nil
		}
		s = strings.TrimSpace(s)
		return &s
	}

	params.Type = str(domain.KeyType)
	params.Title = str(domain.KeyTitle)
	params.Description = str(domain.KeyDescription)
	params.TargetTopic = str(domain.KeyTargetTopic)
	if post := str(keyAnswerPost); post != nil && *post != "" {
		params.AnswerPosts = append(params.AnswerPosts, *post)
	}
	if v, ok := doc[domain.KeyAnswerPosts]; ok && v != nil {
		posts, ok := toStrings(v)
		if !ok {
			errs = append(errs, domain.FieldError{Field: domain.KeyAnswerPosts, Message: "must be a list of strings"})
		}
		for _, post := range posts {
			if post != "" {
				params.AnswerPosts = append(params.AnswerPosts, post)
			}
		}
	}

	if v, ok := doc[domain.KeyTags]; ok && v != nil {
		tags, ok := toStrings(v)
		if !ok {
			errs = append(errs, domain.FieldError{Field: domain.KeyTags, Message: "must be a list of strings"})
		} else {
			params.Tags = &tags
		}
	}

	if params.Type != nil && *params.Type == "" {
		errs = append(errs, domain.FieldError{Field: domain.KeyType, Message: "must not be blank"})
	}
	if params.Title != nil && *params.Title == "" {
		errs = append(errs, domain.FieldError{Field: domain.KeyTitle, Message: "must not be blank"})
	}

	extra := extraFields(doc)
	delete(extra, keyAnswerPost)

	if params.IsEmpty() && len(extra) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return "", domain.DiscussionUpdateParams{}, nil, &domain.ValidationError{Errors: errs}
	}
	return id, params, extra, nil
}

func extraFields(doc map[string]any) map[string]any {
	var extra map[string]any
	for k, v := range doc {
		if domain.IsReservedKey(k) {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra
}

func mergeExtra(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	out := make(map[string]any, len(dst)+len(src))
	maps.Copy(out, dst)
	maps.Copy(out, src)
	return out
}

func toStrings(v any) ([]string, bool) {
	switch vals := v.(type) {
	case []string:
		out := make([]string, 0, len(vals))
		for _, s := range vals {
			out = append(out, strings.TrimSpace(s))
		}
		return out, true
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, strings.TrimSpace(s))
		}
		return out, true
	}
	return nil, false
}
