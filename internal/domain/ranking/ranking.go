// Package ranking filters catalog templates for a contact and orders them
// by an additive context score.
package ranking

import (
	"sort"
	"strings"

	"github.com/okian/leadintel/internal/domain/classify"
	"github.com/okian/leadintel/internal/domain/model"
)

// Urgency derivation thresholds over an enrichment engagement score.
const (
	highUrgencyEngagement   = 80
	mediumUrgencyEngagement = 50
)

// fallbackCategories are ranked unfiltered when the hard filter leaves nothing.
var fallbackCategories = []string{model.CategoryFollowUp, model.CategoryObjectionHandling}

// Weights are the additive context bonuses.
type Weights struct {
	Stage        float64
	Industry     float64
	Urgency      float64
	FirstContact float64
}

// DefaultWeights returns the standard bonus table.
func DefaultWeights() Weights {
	return Weights{Stage: 20, Industry: 15, Urgency: 10, FirstContact: 15}
}

// Catalog is the template source a ranker reads.
type Catalog interface {
	All() []model.TemplateDefinition
	ByCategory(category string) ([]model.TemplateDefinition, error)
}

// Ranking is the ordered outcome of one ranking run.
type Ranking struct {
	Templates    []model.ScoredTemplate `json:"templates"`
	FallbackUsed bool                   `json:"fallbackUsed"`
	Industry     string                 `json:"industry"`
	Urgency      string                 `json:"urgency,omitempty"`
}

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithWeights overrides the bonus table.
func WithWeights(w Weights) Option {
	return func(r *Ranker) { r.weights = w }
}

// Ranker scores templates against a conversation context. It is stateless.
type Ranker struct {
	weights Weights
}

// NewRanker creates a ranker with configuration options.
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank returns candidates ordered by context score, ties in catalog order.
// An unknown context category is an error from the catalog.
func (r *Ranker) Rank(c model.Contact, cc model.ConversationContext, cat Catalog) (Ranking, error) {
	industry := classify.Industry(c)
	status := c.EffectiveStatus()
	cc.ConversationStage = strings.ToLower(strings.TrimSpace(cc.ConversationStage))
	cc.UrgencyLevel = EffectiveUrgency(cc)

	candidates := cat.All()
	if cc.Category != "" {
		byCat, err := cat.ByCategory(cc.Category)
		if err != nil {
			return Ranking{}, err
		}
		candidates = byCat
	}

	filtered := make([]model.TemplateDefinition, 0, len(candidates))
	for _, t := range candidates {
		if t.AppliesToIndustry(industry) && t.AppliesToStatus(status) {
			filtered = append(filtered, t)
		}
	}

	out := Ranking{Industry: industry, Urgency: cc.UrgencyLevel}
	if len(filtered) == 0 {
		out.FallbackUsed = true
		for _, category := range fallbackCategories {
			ts, err := cat.ByCategory(category)
			if err != nil {
				return Ranking{}, err
			}
			filtered = append(filtered, ts...)
		}
	}

	out.Templates = make([]model.ScoredTemplate, len(filtered))
	for i, t := range filtered {
		out.Templates[i] = model.ScoredTemplate{TemplateDefinition: t, ContextScore: r.Score(t, industry, cc)}
	}
	sort.SliceStable(out.Templates, func(i, j int) bool {
		return out.Templates[i].ContextScore > out.Templates[j].ContextScore
	})
	return out, nil
}

// Score computes the context score of one template.
func (r *Ranker) Score(t model.TemplateDefinition, industry string, cc model.ConversationContext) float64 {
	score := t.Effectiveness
	if t.HasTrigger(cc.ConversationStage) {
		score += r.weights.Stage
	}
	if t.NamesIndustry(industry) {
		score += r.weights.Industry
	}
	if cc.UrgencyLevel != "" && t.Urgency == cc.UrgencyLevel {
		score += r.weights.Urgency
	}
	if len(cc.ResponseHistory) == 0 && t.Category == model.CategoryFollowUp {
		score += r.weights.FirstContact
	}
	return score
}

// DeriveUrgency maps an engagement score to an urgency level.
func DeriveUrgency(engagement int) string {
	switch {
	case engagement >= highUrgencyEngagement:
		return model.UrgencyHigh
	case engagement >= mediumUrgencyEngagement:
		return model.UrgencyMedium
	default:
		return model.UrgencyLow
	}
}

// EffectiveUrgency is the caller's urgency, or one derived from the
// engagement score when the caller set none.
func EffectiveUrgency(cc model.ConversationContext) string {
	urgency := strings.ToLower(strings.TrimSpace(cc.UrgencyLevel))
	if urgency != "" || cc.EngagementScore == nil {
		return urgency
	}
	return DeriveUrgency(*cc.EngagementScore)
}
