package service

import (
	"context"
	"fmt"

	"github.com/okian/leadintel/internal/domain/classify"
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/personalize"
	"github.com/okian/leadintel/internal/domain/ranking"
	"github.com/okian/leadintel/internal/domain/scoring"
	"github.com/okian/leadintel/internal/domain/types"
	"github.com/okian/leadintel/pkg/logger"
	"github.com/okian/leadintel/pkg/metrics"
)

// GenerateQuickReplies ranks and personalizes outreach templates for a
// contact in the given conversation context.
func (s *Service) GenerateQuickReplies(ctx context.Context, c model.Contact, cc model.ConversationContext) (types.QuickReplyResult, error) {
	if !s.started.Load() {
		return types.QuickReplyResult{}, ErrNotStarted
	}
	log := s.logger.Named("quick_replies")
	industry := classify.Industry(c)

	ranked, err := s.ranker.Rank(c, cc, s.catalog)
	if err != nil {
		return types.QuickReplyResult{}, err
	}
	metrics.RecordTemplateCandidates(len(ranked.Templates))

	templates := make([]model.ScoredTemplate, 0, s.maxTemplates)
	for _, st := range ranked.Templates {
		if len(templates) == s.maxTemplates {
			break
		}
		out, err := personalize.Personalize(st.TemplateDefinition, c, industry, cc.CustomData)
		if err != nil {
			s.stats.personalizationDrops.Add(1)
			metrics.RecordPersonalizationError(st.ID)
			log.Warn(ctx, "template dropped", logger.String("templateId", st.ID), logger.Error(err))
			continue
		}
		templates = append(templates, model.ScoredTemplate{TemplateDefinition: out, ContextScore: st.ContextScore})
	}
	if len(templates) == 0 {
		return types.QuickReplyResult{}, ErrNoTemplates
	}

	top := templates[0]
	alternatives := templates[1:]
	if len(alternatives) > s.maxAlternatives {
		alternatives = alternatives[:s.maxAlternatives]
	}
	baseline := int(top.Effectiveness)

	result := types.QuickReplyResult{
		Templates: templates,
		ContextualSuggestions: types.ContextualSuggestions{
			MostRelevant:       &top,
			AlternativeOptions: append([]model.ScoredTemplate(nil), alternatives...),
			ContextReason:      contextReason(ranked),
		},
		PersonalizationTips:  personalizationTips(c, industry, cc),
		BestSendTime:         bestSendTime(industry, ranked.Urgency),
		ExpectedResponseRate: scoring.ExpectedResponseRate(baseline, c, scoring.QuickReplyResponseCap),
		IndustryInsights:     industryInsightsList(industry),
		Industry:             industry,
		FallbackUsed:         ranked.FallbackUsed,
		CatalogVersion:       s.catalog.Version(),
	}

	s.stats.quickReplies.Add(1)
	if ranked.FallbackUsed {
		s.stats.rankingFallbacks.Add(1)
	}
	metrics.RecordQuickReplies(ranked.FallbackUsed)
	log.Info(ctx, "quick replies generated",
		logger.String("contactId", c.Key()),
		logger.String("industry", industry),
		logger.String("urgency", ranked.Urgency),
		logger.Int("templates", len(templates)),
		logger.Bool("fallback", ranked.FallbackUsed),
	)
	return result, nil
}

func contextReason(r ranking.Ranking) string {
	if r.FallbackUsed {
		return fmt.Sprintf("No template matched %s for this lead status; showing general follow-up and objection handling.", r.Industry)
	}
	if r.Urgency == "" {
		return fmt.Sprintf("Ranked for %s by stage and effectiveness.", r.Industry)
	}
	return fmt.Sprintf("Ranked for %s at %s urgency.", r.Industry, r.Urgency)
}
