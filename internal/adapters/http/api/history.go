package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/leadintel/internal/domain/model"
)

// Limits for GET /history.
const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
)

// HistoryDependencies defines the interface for history reads.
type HistoryDependencies interface {
	History(ctx context.Context, contactID string, limit int) ([]model.HistoryEntry, error)
}

// HistoryHandler handles enrichment history requests.
type HistoryHandler struct {
	deps HistoryDependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps HistoryDependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// HandleGetHistory handles GET /history/{contactId} requests.
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_history"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw := strings.TrimPrefix(r.URL.EscapedPath(), "/history/")
	contactID, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(contactID) == "" || strings.Contains(raw, "/") {
		writeKindError(w, NewKind(op, ErrBadRequest))
		return
	}

	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeKindError(w, WrapKind(op, ErrBadRequest, errors.New("limit must be a positive integer")))
			return
		}
		if n > maxHistoryLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		limit = n
	}

	entries, err := h.deps.History(r.Context(), contactID, limit)
	if err != nil {
		writeKindError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{ContactID: contactID, Entries: entries})
}
