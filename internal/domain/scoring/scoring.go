// Package scoring turns a synthesized profile into confidence, engagement
// and influencer scores, and estimates outreach response rates.
package scoring

import (
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/random"
)

// Default scoring configuration constants.
const (
	defaultRandomSeed = 42
	minScore          = 0
	maxScore          = 100
	minConfidence     = 70
	maxConfidence     = 100
)

// Response rate caps per call path.
const (
	QuickReplyResponseCap = 85
	EnrichmentResponseCap = 95
)

// Response rate bonuses for available contact signals.
const (
	phoneBonus     = 5
	emailBonus     = 3
	companyBonus   = 4
	qualifiedBonus = 12
)

// Band is an activity band selected by total followers. Scores are drawn
// from [Lo, Hi], both ends inclusive.
type Band struct {
	Threshold int
	Lo, Hi    int
	Activity  string
}

// buckets is scanned top to bottom; a total must be strictly above the
// threshold to land in a band.
var buckets = []Band{
	{Threshold: 5000, Lo: 80, Hi: 100, Activity: model.ActivityVeryHigh},
	{Threshold: 2000, Lo: 60, Hi: 80, Activity: model.ActivityHigh},
	{Threshold: 500, Lo: 40, Hi: 60, Activity: model.ActivityMedium},
}

var lowBucket = Band{Lo: 20, Hi: 50, Activity: model.ActivityLow}

// Scores is the scoring output for one profile.
type Scores struct {
	Confidence          int    `json:"confidence"`
	EngagementScore     int    `json:"engagementScore"`
	InfluencerScore     int    `json:"influencerScore"`
	SocialMediaActivity string `json:"socialMediaActivity"`
	TotalFollowers      int    `json:"totalFollowers"`
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRandom sets the random source for score draws.
func WithRandom(src random.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = src
		}
	}
}

// Engine computes bucketed scores.
type Engine struct {
	rng random.Source
}

// NewEngine creates a scoring engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{rng: random.NewSeeded(defaultRandomSeed)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score scores a profile. A nil or empty profile scores zero confidence in
// the low band.
func (e *Engine) Score(p *model.Profile) Scores {
	total := p.TotalFollowers()
	b := Bucket(total)
	out := Scores{
		EngagementScore:     Clamp(random.Between(e.rng, b.Lo, b.Hi+1), minScore, maxScore),
		InfluencerScore:     Clamp(random.Between(e.rng, b.Lo, b.Hi+1), minScore, maxScore),
		SocialMediaActivity: b.Activity,
		TotalFollowers:      total,
	}
	if !p.Empty() {
		out.Confidence = Clamp(random.Between(e.rng, minConfidence, maxConfidence+1), minScore, maxScore)
	}
	return out
}

// Bucket returns the activity band for a follower total.
func Bucket(total int) Band {
	for _, b := range buckets {
		if total > b.Threshold {
			return b
		}
	}
	return lowBucket
}

// Activity returns the activity label for a follower total.
func Activity(total int) string { return Bucket(total).Activity }

// ExpectedResponseRate adds contact signal bonuses to baseline and clamps
// the result to [0, limit].
func ExpectedResponseRate(baseline int, c model.Contact, limit int) int {
	rate := baseline
	if c.HasPhone() {
		rate += phoneBonus
	}
	if c.HasEmail() {
		rate += emailBonus
	}
	if c.HasCompany() {
		rate += companyBonus
	}
	if c.EffectiveStatus() == model.StatusQualified {
		rate += qualifiedBonus
	}
	return Clamp(rate, minScore, limit)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
