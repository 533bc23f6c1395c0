package model

import "slices"

// Template categories. The set is closed.
const (
	CategoryFollowUp          = "follow_up"
	CategoryObjectionHandling = "objection_handling"
	CategoryPricing           = "pricing"
	CategoryScheduling        = "scheduling"
	CategoryClosing           = "closing"
	CategoryNurturing         = "nurturing"
	CategoryIntroduction      = "introduction"
	CategoryValueProposition  = "value_proposition"
)

// Urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// AppliesToAll marks an industry or status list that matches everything.
const AppliesToAll = "all"

// Categories lists every category in catalog presentation order.
var Categories = []string{
	CategoryFollowUp,
	CategoryObjectionHandling,
	CategoryPricing,
	CategoryScheduling,
	CategoryClosing,
	CategoryNurturing,
	CategoryIntroduction,
	CategoryValueProposition,
}

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c string) bool { return slices.Contains(Categories, c) }

// ValidUrgency reports whether u is a known urgency level.
func ValidUrgency(u string) bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

// TemplateDefinition is an immutable outreach template from the catalog.
type TemplateDefinition struct {
	ID            string   `json:"id" yaml:"id"`
	Category      string   `json:"category" yaml:"category"`
	Triggers      []string `json:"triggers" yaml:"triggers"`
	Subject       string   `json:"subject" yaml:"subject"`
	Body          string   `json:"body" yaml:"body"`
	Industries    []string `json:"industries" yaml:"industries"`
	LeadStatuses  []string `json:"leadStatuses" yaml:"lead_statuses"`
	Urgency       string   `json:"urgency" yaml:"urgency"`
	Effectiveness float64  `json:"effectiveness" yaml:"effectiveness"`
}

// Clone returns a deep copy so callers cannot alias catalog slices.
func (t TemplateDefinition) Clone() TemplateDefinition {
	t.Triggers = slices.Clone(t.Triggers)
	t.Industries = slices.Clone(t.Industries)
	t.LeadStatuses = slices.Clone(t.LeadStatuses)
	return t
}

// AppliesToIndustry reports whether the template lists "all" or industry.
func (t TemplateDefinition) AppliesToIndustry(industry string) bool {
	return slices.Contains(t.Industries, AppliesToAll) || t.NamesIndustry(industry)
}

// NamesIndustry reports whether the template explicitly lists industry.
func (t TemplateDefinition) NamesIndustry(industry string) bool {
	return industry != "" && slices.Contains(t.Industries, industry)
}

// AppliesToStatus reports whether the template lists "all" or status.
func (t TemplateDefinition) AppliesToStatus(status string) bool {
	return slices.Contains(t.LeadStatuses, AppliesToAll) ||
		(status != "" && slices.Contains(t.LeadStatuses, status))
}

// HasTrigger reports whether trigger is one of the template's trigger tags.
func (t TemplateDefinition) HasTrigger(trigger string) bool {
	return trigger != "" && slices.Contains(t.Triggers, trigger)
}

// ScoredTemplate pairs a template with its context score for one ranking run.
type ScoredTemplate struct {
	TemplateDefinition
	ContextScore float64 `json:"contextScore"`
}
