package api

import (
	"net/http"
	"strings"

	"github.com/okian/leadintel/internal/domain/model"
)

// TemplatesDependencies defines the interface for catalog reads.
type TemplatesDependencies interface {
	Templates(category string) ([]model.TemplateDefinition, error)
	CatalogVersion() string
}

// TemplatesHandler handles catalog requests.
type TemplatesHandler struct {
	deps TemplatesDependencies
}

// NewTemplatesHandler creates a new templates handler.
func NewTemplatesHandler(deps TemplatesDependencies) *TemplatesHandler {
	return &TemplatesHandler{deps: deps}
}

// HandleGetTemplates handles GET /templates?category= requests.
func (h *TemplatesHandler) HandleGetTemplates(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_templates"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	ts, err := h.deps.Templates(category)
	if err != nil {
		writeKindError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, templatesResponse{CatalogVersion: h.deps.CatalogVersion(), Templates: ts})
}
