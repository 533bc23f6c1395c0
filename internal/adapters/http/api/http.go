// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/types"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers.
type Dependencies interface {
	EnrichDependencies
	RepliesDependencies
	HistoryDependencies
	TemplatesDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	enrichHandler    *EnrichHandler
	repliesHandler   *RepliesHandler
	historyHandler   *HistoryHandler
	templatesHandler *TemplatesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		enrichHandler:    NewEnrichHandler(deps),
		repliesHandler:   NewRepliesHandler(deps),
		historyHandler:   NewHistoryHandler(deps),
		templatesHandler: NewTemplatesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/enrich", MetricsMiddleware(s.enrichHandler.HandleEnrich, "enrich"))
	mux.HandleFunc("/enrich/batch", MetricsMiddleware(s.enrichHandler.HandleEnrichBatch, "enrich_batch"))
	mux.HandleFunc("/quick-replies", MetricsMiddleware(s.repliesHandler.HandleQuickReplies, "quick_replies"))
	mux.HandleFunc("/history/", MetricsMiddleware(s.historyHandler.HandleGetHistory, "history"))
	mux.HandleFunc("/templates", MetricsMiddleware(s.templatesHandler.HandleGetTemplates, "templates"))
}

// batchRequest is the body of POST /enrich/batch.
type batchRequest struct {
	Contacts []model.Contact `json:"contacts"`
}

type batchResponse struct {
	Results []types.EnrichmentResult `json:"results"`
	Total   int                      `json:"total"`
	Failed  int                      `json:"failed"`
}

// quickRepliesRequest is the body of POST /quick-replies.
type quickRepliesRequest struct {
	Contact model.Contact             `json:"contact"`
	Context model.ConversationContext `json:"context"`
}

type templatesResponse struct {
	CatalogVersion string                     `json:"catalogVersion"`
	Templates      []model.TemplateDefinition `json:"templates"`
}

type historyResponse struct {
	ContactID string               `json:"contactId"`
	Entries   []model.HistoryEntry `json:"entries"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeKindError writes err with the status its kind maps to.
func writeKindError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeError(w, status, code, err)
}
