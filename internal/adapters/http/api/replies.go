package api

import (
	"context"
	"net/http"

	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/types"
)

// RepliesDependencies defines the interface for quick reply generation.
type RepliesDependencies interface {
	GenerateQuickReplies(ctx context.Context, c model.Contact, cc model.ConversationContext) (types.QuickReplyResult, error)
}

// RepliesHandler handles quick reply requests.
type RepliesHandler struct {
	deps RepliesDependencies
}

// NewRepliesHandler creates a new quick reply handler.
func NewRepliesHandler(deps RepliesDependencies) *RepliesHandler {
	return &RepliesHandler{deps: deps}
}

// HandleQuickReplies handles POST /quick-replies requests.
func (h *RepliesHandler) HandleQuickReplies(w http.ResponseWriter, r *http.Request) {
	const op = "api.quick_replies"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req quickRepliesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeKindError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.GenerateQuickReplies(r.Context(), req.Contact, req.Context)
	if err != nil {
		writeKindError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}
