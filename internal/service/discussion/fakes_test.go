package discussion

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/discussion-backend/internal/domain"
	"github.com/heartmarshall/discussion-backend/internal/projection"
)

// backend is an in-memory store and ledger behind moq mocks. It enforces the
// same preconditions as the Postgres adapters.
type backend struct {
	mu          sync.Mutex
	discussions map[uuid.UUID]domain.Discussion
	votes       map[string]domain.Vote
}

func newBackend() *backend {
	return &backend{
		discussions: make(map[uuid.UUID]domain.Discussion),
		votes:       make(map[string]domain.Vote),
	}
}

func voteKey(userID string, id uuid.UUID) string { return userID + "/" + id.String() }

func (b *backend) get(id uuid.UUID) (*domain.Discussion, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.discussions[id]
	if !ok {
		return nil, fmt.Errorf("discussion %s: %w", id, domain.ErrNotFound)
	}
	return &d, nil
}

func (b *backend) put(d domain.Discussion) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.discussions[d.ID] = d
}

func (b *backend) storeMock() *discussionStoreMock {
	return &discussionStoreMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
			return b.get(id)
		},
		GetForUpdateFunc: func(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
			return b.get(id)
		},
		CreateFunc: func(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.discussions[d.ID]; ok {
				return nil, domain.ErrAlreadyExists
			}
			b.discussions[d.ID] = *d
			out := *d
			return &out, nil
		},
		UpdateFunc: func(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			cur, ok := b.discussions[d.ID]
			if !ok {
				return nil, domain.ErrNotFound
			}
			cur.Payload = d.Payload
			cur.UpdatedAt = d.UpdatedAt
			b.discussions[d.ID] = cur
			return &cur, nil
		},
		SetInactiveFunc: func(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Discussion, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			cur, ok := b.discussions[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			if !cur.IsActive {
				return nil, domain.ErrInactive
			}
			cur.IsActive = false
			cur.UpdatedAt = at
			b.discussions[id] = cur
			return &cur, nil
		},
		AddVotesFunc: func(ctx context.Context, id uuid.UUID, delta int64, at time.Time) (*domain.Discussion, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			cur, ok := b.discussions[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			if !cur.IsActive {
				return nil, domain.ErrInactive
			}
			cur.VoteCount += delta
			cur.UpdatedAt = at
			b.discussions[id] = cur
			return &cur, nil
		},
	}
}

func (b *backend) ledgerMock() *voteLedgerMock {
	return &voteLedgerMock{
		FindFunc: func(ctx context.Context, userID string, discussionID uuid.UUID) (*domain.Vote, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			v, ok := b.votes[voteKey(userID, discussionID)]
			if !ok {
				return nil, domain.ErrNotFound
			}
			return &v, nil
		},
		InsertFunc: func(ctx context.Context, v *domain.Vote) error {
			b.mu.Lock()
			defer b.mu.Unlock()
			k := voteKey(v.UserID, v.DiscussionID)
			if _, ok := b.votes[k]; ok {
				return domain.ErrAlreadyExists
			}
			b.votes[k] = *v
			return nil
		},
		UpdateDirectionFunc: func(ctx context.Context, userID string, discussionID uuid.UUID, from, to domain.VoteDirection, at time.Time) error {
			b.mu.Lock()
			defer b.mu.Unlock()
			k := voteKey(userID, discussionID)
			v, ok := b.votes[k]
			if !ok || v.Direction != from {
				return domain.ErrStaleWrite
			}
			v.Direction = to
			v.UpdatedAt = at
			b.votes[k] = v
			return nil
		},
	}
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

// syncProjector runs every step inline and fails the test on step errors.
func syncProjector(t *testing.T) *projectorMock {
	t.Helper()
	return &projectorMock{
		SubmitFunc: func(ctx context.Context, key string, steps ...projection.Step) bool {
			for _, s := range steps {
				if err := s.Fn(ctx); err != nil {
					t.Errorf("projection step %s for %s: %v", s.Target, key, err)
				}
			}
			return true
		},
	}
}

func memDocumentCache() *documentCacheMock {
	var mu sync.Mutex
	entries := make(map[string][]byte)
	return &documentCacheMock{
		GetFunc: func(key string) ([]byte, bool) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := entries[key]
			return v, ok
		},
		PutFunc: func(key string, value []byte) {
			mu.Lock()
			defer mu.Unlock()
			entries[key] = value
		},
		PutIfAbsentFunc: func(key string, value []byte) bool {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := entries[key]; ok {
				return false
			}
			entries[key] = value
			return true
		},
		RemoveFunc: func(key string) {
			mu.Lock()
			defer mu.Unlock()
			delete(entries, key)
		},
	}
}

func memSearchCache() *searchCacheMock {
	var mu sync.Mutex
	entries := make(map[string]*domain.SearchResult)
	return &searchCacheMock{
		GetFunc: func(key string) (*domain.SearchResult, bool) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := entries[key]
			return v, ok
		},
		SetFunc: func(key string, result *domain.SearchResult) {
			mu.Lock()
			defer mu.Unlock()
			entries[key] = result
		},
	}
}

// harness wires a Service to in-memory collaborators. Individual mocks can
// be replaced before calling build.
type harness struct {
	backend   *backend
	store     *discussionStoreMock
	ledger    *voteLedgerMock
	index     *searchIndexMock
	docs      *documentCacheMock
	searches  *searchCacheMock
	validator *payloadValidatorMock
	signer    *searchKeySignerMock
	projector *projectorMock
	tx        *txManagerMock
	cfg       Config
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	b := newBackend()
	return &harness{
		backend: b,
		store:   b.storeMock(),
		ledger:  b.ledgerMock(),
		index: &searchIndexMock{
			UpsertFunc: func(ctx context.Context, index, id string, doc map[string]any) error { return nil },
			QueryFunc: func(ctx context.Context, index string, c domain.SearchCriteria) (*domain.SearchResult, error) {
				return &domain.SearchResult{Data: []map[string]any{}, Facets: map[string][]domain.FacetValue{}}, nil
			},
		},
		docs:     memDocumentCache(),
		searches: memSearchCache(),
		validator: &payloadValidatorMock{
			ValidateFunc: func(schemaName string, doc map[string]any) error { return nil },
		},
		signer: &searchKeySignerMock{
			KeyFunc: func(c domain.SearchCriteria) (string, error) {
				return c.SearchString + fmt.Sprint(c.PageNumber, c.PageSize, c.OrderDirection), nil
			},
		},
		projector: syncProjector(t),
		tx:        passthroughTx(),
		cfg: Config{
			IndexName:       "discussion",
			StoreTimeout:    time.Second,
			MaxVoteAttempts: 3,
		},
	}
}

func (h *harness) build() *Service {
	return NewService(slog.Default(), h.cfg, Deps{
		Store:     h.store,
		Votes:     h.ledger,
		Index:     h.index,
		Docs:      h.docs,
		Searches:  h.searches,
		Validator: h.validator,
		Signer:    h.signer,
		Projector: h.projector,
		Tx:        h.tx,
	})
}

// seed stores an active discussion and returns it.
func (h *harness) seed(mutators ...func(*domain.Discussion)) domain.Discussion {
	d := domain.Discussion{
		ID: uuid.Must(uuid.NewV7()),
		Payload: domain.DiscussionPayload{
			Type:      "question",
			Title:     "How do votes work?",
			CreatedBy: "author",
		},
		IsActive:  true,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	for _, m := range mutators {
		m(&d)
	}
	h.backend.put(d)
	return d
}
