// Package types contains the result value objects returned by the service
package types

import "github.com/okian/leadintel/internal/domain/model"

// EnrichmentResult is the response of one enrichment call.
type EnrichmentResult struct {
	EnrichmentData *model.EnrichmentRecord `json:"enrichmentData"`
	Confidence     int                     `json:"confidence"`
	FieldsEnriched []string                `json:"fieldsEnriched"`
	DataSource     string                  `json:"dataSource"`
	Status         string                  `json:"status"`
	Error          string                  `json:"error,omitempty"`
}

// Failed reports whether the run produced no usable data.
func (r EnrichmentResult) Failed() bool { return r.Status == model.EnrichmentFailed }

// ContextualSuggestions summarizes the ranking for a caller.
type ContextualSuggestions struct {
	MostRelevant       *model.ScoredTemplate  `json:"mostRelevant"`
	AlternativeOptions []model.ScoredTemplate `json:"alternativeOptions"`
	ContextReason      string                 `json:"contextReason"`
}

// QuickReplyResult is the ephemeral response of one quick reply call.
type QuickReplyResult struct {
	Templates             []model.ScoredTemplate `json:"templates"`
	ContextualSuggestions ContextualSuggestions  `json:"contextualSuggestions"`
	PersonalizationTips   []string               `json:"personalizationTips"`
	BestSendTime          string                 `json:"bestSendTime"`
	ExpectedResponseRate  int                    `json:"expectedResponseRate"`
	IndustryInsights      []string               `json:"industryInsights"`
	Industry              string                 `json:"industry"`
	FallbackUsed          bool                   `json:"fallbackUsed"`
	CatalogVersion        string                 `json:"catalogVersion"`
}

// Stats is the service counter snapshot served at /stats.
type Stats struct {
	EnrichmentsTotal     int64          `json:"enrichmentsTotal"`
	EnrichmentsFailed    int64          `json:"enrichmentsFailed"`
	QuickRepliesTotal    int64          `json:"quickRepliesTotal"`
	RankingFallbacks     int64          `json:"rankingFallbacks"`
	PersonalizationDrops int64          `json:"personalizationDrops"`
	HistoryEntries       int            `json:"historyEntries"`
	CatalogVersion       string         `json:"catalogVersion"`
	CatalogTemplates     int            `json:"catalogTemplates"`
	TemplatesByCategory  map[string]int `json:"templatesByCategory"`
	DataSource           string         `json:"dataSource"`
}
