package api

import (
	"context"
	"net/http"

	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/types"
)

// EnrichDependencies defines the interface for enrichment.
type EnrichDependencies interface {
	EnrichContact(ctx context.Context, c model.Contact) types.EnrichmentResult
	EnrichBatch(ctx context.Context, contacts []model.Contact) ([]types.EnrichmentResult, error)
}

// EnrichHandler handles enrichment requests.
type EnrichHandler struct {
	deps EnrichDependencies
}

// NewEnrichHandler creates a new enrichment handler.
func NewEnrichHandler(deps EnrichDependencies) *EnrichHandler {
	return &EnrichHandler{deps: deps}
}

// HandleEnrich handles POST /enrich requests. A failed enrichment is still
// a 200 with status "failed" in the body.
func (h *EnrichHandler) HandleEnrich(w http.ResponseWriter, r *http.Request) {
	const op = "api.enrich"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var c model.Contact
	if err := decodeJSON(w, r, &c); err != nil {
		writeKindError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.EnrichContact(r.Context(), c))
}

// HandleEnrichBatch handles POST /enrich/batch requests.
func (h *EnrichHandler) HandleEnrichBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.enrich_batch"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req batchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeKindError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	results, err := h.deps.EnrichBatch(r.Context(), req.Contacts)
	if err != nil {
		writeKindError(w, Wrap(op, err))
		return
	}
	resp := batchResponse{Results: results, Total: len(results)}
	for i := range results {
		if results[i].Failed() {
			resp.Failed++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
