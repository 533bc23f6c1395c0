package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okian/leadintel/internal/adapters/repository"
	"github.com/okian/leadintel/internal/domain/classify"
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/scoring"
	"github.com/okian/leadintel/internal/domain/types"
	"github.com/okian/leadintel/pkg/logger"
	"github.com/okian/leadintel/pkg/metrics"
)

// Preferred contact channels.
const (
	ChannelEmail    = "email"
	ChannelPhone    = "phone"
	ChannelLinkedIn = "linkedin"
)

// EnrichContact enriches one contact. It never returns an error: a failed
// run is reported with status failed, zero confidence and no fields.
func (s *Service) EnrichContact(ctx context.Context, c model.Contact) types.EnrichmentResult {
	start := s.now()
	contactID := c.Key()
	if !s.started.Load() {
		return failedResult(&model.EnrichmentRecord{ContactID: contactID, Status: model.EnrichmentFailed, Error: ErrNotStarted.Error()})
	}

	log := s.logger.Named("enrichment")
	cls := classify.Classify(c)

	pctx := ctx
	if s.enrichmentTimeout > 0 {
		var cancel context.CancelFunc
		pctx, cancel = context.WithTimeout(ctx, s.enrichmentTimeout)
		defer cancel()
	}
	callStart := time.Now()
	prof, err := s.provider.Synthesize(pctx, c, cls.Industry)
	metrics.RecordProviderLatency(s.provider.Name(), err == nil, float64(time.Since(callStart).Milliseconds()))

	rec := &model.EnrichmentRecord{
		ID:           uuid.NewString(),
		ContactID:    contactID,
		Industry:     cls.Industry,
		DataSource:   s.provider.Name(),
		LastEnriched: s.now(),
	}

	var result types.EnrichmentResult
	if err != nil {
		rec.Status = model.EnrichmentFailed
		rec.Error = err.Error()
		result = failedResult(rec)
		log.Warn(ctx, "enrichment failed",
			logger.String("contactId", contactID),
			logger.String("industry", cls.Industry),
			logger.Error(err),
		)
		metrics.RecordErrorByComponent("enrichment", errorType(err))
	} else {
		scores := s.scorer.Score(prof)
		rec.Professional = prof.Professional
		rec.Social = prof.Social
		rec.Company = prof.Company
		rec.Location = prof.Location
		rec.Confidence = scores.Confidence
		rec.EngagementScore = scores.EngagementScore
		rec.InfluencerScore = scores.InfluencerScore
		rec.SocialMediaActivity = scores.SocialMediaActivity
		rec.TotalFollowers = scores.TotalFollowers
		rec.ContactPreferences = preferences(c, cls, rec)
		rec.Status = model.EnrichmentCompleted
		result = types.EnrichmentResult{
			EnrichmentData: rec,
			Confidence:     rec.Confidence,
			FieldsEnriched: rec.Groups(),
			DataSource:     rec.DataSource,
			Status:         rec.Status,
		}
		log.Info(ctx, "contact enriched",
			logger.String("contactId", contactID),
			logger.String("industry", cls.Industry),
			logger.Int("confidence", rec.Confidence),
			logger.Strings("fieldsEnriched", result.FieldsEnriched),
		)
	}

	s.appendHistory(ctx, rec)

	s.stats.enrichments.Add(1)
	if result.Failed() {
		s.stats.enrichmentsFailed.Add(1)
	}
	metrics.RecordEnrichment(result.Status, len(result.FieldsEnriched), float64(s.now().Sub(start).Milliseconds()))
	return result
}

// appendHistory writes the audit entry for rec. Failures are logged, never
// surfaced, so the enrichment result stands on its own.
func (s *Service) appendHistory(ctx context.Context, rec *model.EnrichmentRecord) {
	var prev *model.EnrichmentRecord
	last, err := s.history.LatestSuccessful(ctx, rec.ContactID)
	switch {
	case err == nil:
		prev = last.NewSnapshot
	case !errors.Is(err, repository.ErrNotFound):
		s.logger.Warn(ctx, "history lookup failed", logger.String("contactId", rec.ContactID), logger.Error(err))
	}

	entry := model.HistoryEntry{
		ID:            uuid.NewString(),
		ContactID:     rec.ContactID,
		RecordID:      rec.ID,
		FieldsChanged: []string{},
		OldSnapshot:   prev,
		NewSnapshot:   rec,
		Success:       rec.Status == model.EnrichmentCompleted,
		ErrorMessage:  rec.Error,
		DataSource:    rec.DataSource,
		CreatedAt:     s.now(),
	}
	if entry.Success {
		entry.FieldsChanged = model.ChangedGroups(prev, rec)
	}
	if err := s.history.Append(ctx, entry); err != nil {
		s.logger.Warn(ctx, "history append failed", logger.String("contactId", rec.ContactID), logger.Error(err))
		metrics.RecordErrorByComponent("history", "append_failed")
	}
}

func failedResult(rec *model.EnrichmentRecord) types.EnrichmentResult {
	return types.EnrichmentResult{
		EnrichmentData: rec,
		Confidence:     0,
		FieldsEnriched: []string{},
		DataSource:     rec.DataSource,
		Status:         model.EnrichmentFailed,
		Error:          rec.Error,
	}
}

// preferences derives how and when to reach the contact.
func preferences(c model.Contact, cls classify.Result, rec *model.EnrichmentRecord) *model.ContactPreferences {
	channel := ChannelEmail
	switch {
	case rec.Professional != nil && (cls.Seniority == classify.SeniorityCLevel || cls.Seniority == classify.SeniorityVP):
		channel = ChannelLinkedIn
	case c.HasEmail():
		channel = ChannelEmail
	case c.HasPhone():
		channel = ChannelPhone
	case rec.Professional != nil:
		channel = ChannelLinkedIn
	}
	return &model.ContactPreferences{
		PreferredChannel: channel,
		BestContactTime:  insightsFor(cls.Industry).sendWindow,
		ResponseRate:     scoring.ExpectedResponseRate(rec.EngagementScore, c, scoring.EnrichmentResponseCap),
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "provider_error"
	}
}
