package discussion

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/discussion-backend/internal/domain"
	"github.com/heartmarshall/discussion-backend/internal/projection"
)

//go:generate moq -out discussion_store_mock_test.go -pkg discussion . discussionStore
//go:generate moq -out vote_ledger_mock_test.go -pkg discussion . voteLedger
//go:generate moq -out collaborators_mock_test.go -pkg discussion . searchIndex documentCache searchCache payloadValidator searchKeySigner projector txManager

type discussionStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Discussion, error)
	Create(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error)
	Update(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error)
	SetInactive(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Discussion, error)
	AddVotes(ctx context.Context, id uuid.UUID, delta int64, at time.Time) (*domain.Discussion, error)
}

type voteLedger interface {
	Find(ctx context.Context, userID string, discussionID uuid.UUID) (*domain.Vote, error)
	Insert(ctx context.Context, v *domain.Vote) error
	UpdateDirection(ctx context.Context, userID string, discussionID uuid.UUID, from, to domain.VoteDirection, at time.Time) error
}

type searchIndex interface {
	Upsert(ctx context.Context, index, id string, doc map[string]any) error
	Query(ctx context.Context, index string, c domain.SearchCriteria) (*domain.SearchResult, error)
}

type documentCache interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte)
	PutIfAbsent(key string, value []byte) bool
	Remove(key string)
}

type searchCache interface {
	Get(key string) (*domain.SearchResult, bool)
	Set(key string, result *domain.SearchResult)
}

type payloadValidator interface {
	Validate(schemaName string, doc map[string]any) error
}

type searchKeySigner interface {
	Key(c domain.SearchCriteria) (string, error)
}

type projector interface {
	Submit(ctx context.Context, key string, steps ...projection.Step) bool
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	cacheKeyPrefix       = "discussion_"
	searchCacheKeyPrefix = "discussion_search_"
)

// Config holds the tunables of the discussion service.
type Config struct {
	IndexName       string
	StoreTimeout    time.Duration
	MaxVoteAttempts int
}

// Deps bundles the collaborators of the discussion service.
type Deps struct {
	Store     discussionStore
	Votes     voteLedger
	Index     searchIndex
	Docs      documentCache
	Searches  searchCache
	Validator payloadValidator
	Signer    searchKeySigner
	Projector projector
	Tx        txManager
}

// Service orchestrates discussion mutations across the store, the vote
// ledger, the search index and the caches.
type Service struct {
	store     discussionStore
	votes     voteLedger
	index     searchIndex
	docs      documentCache
	searches  searchCache
	validator payloadValidator
	signer    searchKeySigner
	projector projector
	tx        txManager
	cfg       Config
	log       *slog.Logger

	now   func() time.Time
	newID func() (uuid.UUID, error)
}

// NewService creates a new discussion service.
func NewService(log *slog.Logger, cfg Config, deps Deps) *Service {
	if cfg.MaxVoteAttempts < 1 {
		cfg.MaxVoteAttempts = 1
	}
	return &Service{
		store:     deps.Store,
		votes:     deps.Votes,
		index:     deps.Index,
		docs:      deps.Docs,
		searches:  deps.Searches,
		validator: deps.Validator,
		signer:    deps.Signer,
		projector: deps.Projector,
		tx:        deps.Tx,
		cfg:       cfg,
		log:       log.With("service", "discussion"),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewV7,
	}
}

// storeCtx bounds a unit of store work. A zero StoreTimeout disables the bound.
func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.StoreTimeout)
}

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}
