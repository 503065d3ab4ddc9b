package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/discussion-backend/internal/domain"
	"github.com/heartmarshall/discussion-backend/internal/service/discussion"
)

// API ids reported in the response envelope.
const (
	apiCreate = "api.discussion.create"
	apiRead   = "api.discussion.read"
	apiUpdate = "api.discussion.update"
	apiSearch = "api.discussion.search"
	apiDelete = "api.discussion.delete"
	apiVote   = "api.discussion.upvote"
)

const maxBodyBytes = 1 << 20

type discussionService interface {
	CreateDiscussion(ctx context.Context, input discussion.CreateInput) (*domain.Discussion, error)
	GetDiscussion(ctx context.Context, id string) (*domain.Discussion, error)
	UpdateDiscussion(ctx context.Context, input discussion.UpdateInput) (*domain.Discussion, error)
	DeleteDiscussion(ctx context.Context, id string) (discussion.DeleteResult, error)
	SearchDiscussions(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
	Vote(ctx context.Context, input discussion.VoteInput) (*discussion.VoteResult, error)
}

// DiscussionHandler serves the discussion REST endpoints.
type DiscussionHandler struct {
	svc discussionService
	log *slog.Logger
}

// NewDiscussionHandler creates a DiscussionHandler.
func NewDiscussionHandler(svc discussionService, logger *slog.Logger) *DiscussionHandler {
	return &DiscussionHandler{svc: svc, log: logger.With("handler", "discussion")}
}

// Routes mounts the discussion endpoints on r.
func (h *DiscussionHandler) Routes(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/read/{id}", h.Read)
	r.Post("/update", h.Update)
	r.Post("/search", h.Search)
	r.Delete("/delete/{id}", h.Delete)
	r.Post("/upvote", h.Vote)
}

type voteRequest struct {
	DiscussionID string `json:"discussionId"`
	VoteType     string `json:"voteType"`
}

// Create handles POST /discussion/create.
func (h *DiscussionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := decodeBody(w, r, &doc); err != nil {
		writeEnvelopeError(w, apiCreate, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.CreateDiscussion(r.Context(), discussion.CreateInput{Document: doc})
	if err != nil {
		h.handleError(w, r, apiCreate, err)
		return
	}

	writeEnvelope(w, apiCreate, http.StatusCreated, d.Document())
}

// Read handles GET /discussion/read/{id}.
func (h *DiscussionHandler) Read(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDiscussion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, apiRead, err)
		return
	}

	writeEnvelope(w, apiRead, http.StatusOK, d.Document())
}

// Update handles POST /discussion/update.
func (h *DiscussionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := decodeBody(w, r, &doc); err != nil {
		writeEnvelopeError(w, apiUpdate, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.UpdateDiscussion(r.Context(), discussion.UpdateInput{Document: doc})
	if err != nil {
		h.handleError(w, r, apiUpdate, err)
		return
	}

	writeEnvelope(w, apiUpdate, http.StatusOK, d.Document())
}

// Search handles POST /discussion/search.
func (h *DiscussionHandler) Search(w http.ResponseWriter, r *http.Request) {
	var criteria domain.SearchCriteria
	if err := decodeBody(w, r, &criteria); err != nil {
		writeEnvelopeError(w, apiSearch, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SearchDiscussions(r.Context(), criteria)
	if err != nil {
		h.handleError(w, r, apiSearch, err)
		return
	}

	writeEnvelope(w, apiSearch, http.StatusOK, map[string]any{"searchResults": result})
}

// Delete handles DELETE /discussion/delete/{id}.
func (h *DiscussionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteDiscussion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, apiDelete, err)
		return
	}

	message := "deleted successfully"
	if res.Status == domain.DeleteStatusAlreadyInactive {
		message = "discussion is already inactive"
	}
	writeEnvelope(w, apiDelete, http.StatusOK, map[string]any{
		domain.KeyDiscussionID: res.DiscussionID.String(),
		"status":               res.Status.String(),
		"message":              message,
	})
}

// Vote handles POST /discussion/upvote.
func (h *DiscussionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeEnvelopeError(w, apiVote, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Vote(r.Context(), discussion.VoteInput{
		DiscussionID: req.DiscussionID,
		Direction:    req.VoteType,
	})
	if err != nil {
		h.handleError(w, r, apiVote, err)
		return
	}

	writeEnvelope(w, apiVote, http.StatusOK, map[string]any{
		domain.KeyDiscussionID: res.DiscussionID.String(),
		"voteType":             res.Direction.String(),
		"delta":                res.Delta,
		domain.KeyVoteCount:    res.VoteCount,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("trailing data after JSON body")
	}
	return nil
}
