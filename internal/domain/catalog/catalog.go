// Package catalog holds the immutable, versioned set of outreach templates.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/leadintel/internal/domain/model"
)

//go:embed templates.yaml
var defaultYAML []byte

const (
	minEffectiveness = 0
	maxEffectiveness = 100
)

// document is the on-disk YAML shape.
type document struct {
	Version   string                     `yaml:"version"`
	Templates []model.TemplateDefinition `yaml:"templates"`
}

// Catalog is an immutable template collection. Accessors return copies.
type Catalog struct {
	version    string
	templates  []model.TemplateDefinition
	byCategory map[string][]int
}

// New validates defs and builds a catalog. Catalog order is the order of defs.
func New(version string, defs []model.TemplateDefinition) (*Catalog, error) {
	c := &Catalog{
		version:    version,
		templates:  make([]model.TemplateDefinition, 0, len(defs)),
		byCategory: make(map[string][]int, len(model.Categories)),
	}
	seen := make(map[string]struct{}, len(defs))
	for i, d := range defs {
		if err := validate(d); err != nil {
			return nil, fmt.Errorf("template %d (%q): %w", i, d.ID, err)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
		}
		seen[d.ID] = struct{}{}
		c.byCategory[d.Category] = append(c.byCategory[d.Category], len(c.templates))
		c.templates = append(c.templates, d.Clone())
	}
	return c, nil
}

// Parse builds a catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
	}
	if strings.TrimSpace(doc.Version) == "" {
		return nil, fmt.Errorf("%w: version must not be empty", ErrLoadCatalog)
	}
	return New(doc.Version, doc.Templates)
}

// Load reads a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator supplied path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
	}
	return Parse(data)
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// FromPath loads path, or the embedded catalog when path is empty.
func FromPath(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return Load(path)
}

// Version identifies the catalog revision.
func (c *Catalog) Version() string { return c.version }

// Len returns the number of templates.
func (c *Catalog) Len() int { return len(c.templates) }

// All returns every template in catalog order.
func (c *Catalog) All() []model.TemplateDefinition {
	out := make([]model.TemplateDefinition, len(c.templates))
	for i, t := range c.templates {
		out[i] = t.Clone()
	}
	return out
}

// ByCategory returns the templates of one category in catalog order.
func (c *Catalog) ByCategory(category string) ([]model.TemplateDefinition, error) {
	if !model.ValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	idx := c.byCategory[category]
	out := make([]model.TemplateDefinition, len(idx))
	for i, j := range idx {
		out[i] = c.templates[j].Clone()
	}
	return out, nil
}

// Get returns the template with the given id.
func (c *Catalog) Get(id string) (model.TemplateDefinition, bool) {
	for _, t := range c.templates {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return model.TemplateDefinition{}, false
}

// CountByCategory returns the number of templates per category.
func (c *Catalog) CountByCategory() map[string]int {
	out := make(map[string]int, len(c.byCategory))
	for cat, idx := range c.byCategory {
		out[cat] = len(idx)
	}
	return out
}

func validate(d model.TemplateDefinition) error {
	switch {
	case strings.TrimSpace(d.ID) == "":
		return fmt.Errorf("%w: id must not be empty", ErrInvalidTemplate)
	case !model.ValidCategory(d.Category):
		return fmt.Errorf("%w: %q", ErrUnknownCategory, d.Category)
	case !model.ValidUrgency(d.Urgency):
		return fmt.Errorf("%w: urgency %q", ErrInvalidTemplate, d.Urgency)
	case d.Effectiveness < minEffectiveness || d.Effectiveness > maxEffectiveness:
		return fmt.Errorf("%w: effectiveness %.1f out of range", ErrInvalidTemplate, d.Effectiveness)
	case len(d.Industries) == 0:
		return fmt.Errorf("%w: industries must not be empty", ErrInvalidTemplate)
	case len(d.LeadStatuses) == 0:
		return fmt.Errorf("%w: lead statuses must not be empty", ErrInvalidTemplate)
	case strings.TrimSpace(d.Body) == "":
		return fmt.Errorf("%w: body must not be empty", ErrInvalidTemplate)
	}
	return nil
}
