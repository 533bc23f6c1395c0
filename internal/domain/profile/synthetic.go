package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/leadintel/internal/domain/classify"
	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/random"
)

// SyntheticSource is the dataSource tag of fabricated profiles.
const SyntheticSource = "synthetic"

// Default synthetic provider configuration constants.
const (
	defaultMinLatency = 50 * time.Millisecond
	defaultMaxLatency = 150 * time.Millisecond
	defaultRandomSeed = 42
	skillsPerProfile  = 3
	techPerCompany    = 3
	maxHandleSuffix   = 100
	minHandleSuffix   = 10
	fallbackSlug      = "contact"
)

// Option applies a configuration option to the SyntheticProfileProvider.
type Option func(*SyntheticProfileProvider)

// WithLatencyRange sets the simulated provider latency range. A zero range
// disables the delay.
func WithLatencyRange(minLatency, maxLatency time.Duration) Option {
	return func(p *SyntheticProfileProvider) {
		if minLatency >= 0 && maxLatency >= minLatency {
			p.minLatency = minLatency
			p.maxLatency = maxLatency
		}
	}
}

// WithRandom sets the random source used for every draw.
func WithRandom(src random.Source) Option {
	return func(p *SyntheticProfileProvider) {
		if src != nil {
			p.rng = src
		}
	}
}

// WithClock sets the time source used for founding years.
func WithClock(now func() time.Time) Option {
	return func(p *SyntheticProfileProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// SyntheticProfileProvider fabricates plausible profiles from parameter
// tables. It stands in for a real data provider.
type SyntheticProfileProvider struct {
	minLatency time.Duration
	maxLatency time.Duration
	rng        random.Source
	now        func() time.Time
}

// NewSyntheticProfileProvider creates a synthetic provider with configuration options.
func NewSyntheticProfileProvider(opts ...Option) *SyntheticProfileProvider {
	p := &SyntheticProfileProvider{
		minLatency: defaultMinLatency,
		maxLatency: defaultMaxLatency,
		rng:        random.NewSeeded(defaultRandomSeed),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements Provider.
func (p *SyntheticProfileProvider) Name() string { return SyntheticSource }

// Synthesize implements Provider.
func (p *SyntheticProfileProvider) Synthesize(ctx context.Context, c model.Contact, industry string) (*model.Profile, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	vocab, ok := industryTable[industry]
	if !ok {
		vocab = industryTable[classify.GeneralBusiness]
	}

	out := &model.Profile{Location: p.location(c)}
	first, last := c.First(), c.Last()
	if first != "" && last != "" {
		out.Professional = p.professional(c, first, last, vocab)
		out.Social = p.social(first, last, out.Professional.JobTitle, vocab)
	}
	if c.HasCompany() {
		out.Company = p.company(c, industry, out.Location, vocab)
	}
	if out.Empty() {
		return nil, ErrInsufficientData
	}
	return out, nil
}

// wait simulates the remote call latency.
func (p *SyntheticProfileProvider) wait(ctx context.Context) error {
	if p.maxLatency <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrProviderCanceled, err)
		}
		return nil
	}
	latency := p.minLatency
	if span := p.maxLatency - p.minLatency; span > 0 {
		latency += time.Duration(p.rng.Intn(int(span)))
	}
	timer := time.NewTimer(latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrProviderCanceled, ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (p *SyntheticProfileProvider) professional(c model.Contact, first, last string, vocab industryParams) *model.ProfessionalProfile {
	params := random.Pick(p.rng, linkedInTable)
	title := strings.TrimSpace(c.Position)
	if title == "" {
		title = random.Pick(p.rng, vocab.titles)
	}
	company := strings.TrimSpace(c.Company)
	workplace := company
	if workplace == "" {
		workplace = "an independent practice"
	}
	topics := sample(p.rng, vocab.topics, 2)

	return &model.ProfessionalProfile{
		ProfileURL:      fmt.Sprintf("https://www.linkedin.com/in/%s-%s-%d", nameSlug(first), nameSlug(last), random.Between(p.rng, 1000, 10000)),
		Headline:        fmt.Sprintf("%s at %s", title, workplace),
		JobTitle:        title,
		Seniority:       classify.Seniority(title),
		Department:      classify.Department(title),
		Skills:          sample(p.rng, vocab.skills, skillsPerProfile),
		Connections:     params.connections,
		Followers:       params.followers,
		YearsExperience: params.yearsExperience,
		Education:       params.education,
		Summary: fmt.Sprintf("%s at %s. Passionate about %s and %s, with %d years of experience.",
			title, workplace, topics[0], topics[1], params.yearsExperience),
	}
}

func (p *SyntheticProfileProvider) social(first, last, title string, vocab industryParams) model.SocialProfiles {
	tw := random.Pick(p.rng, twitterTable)
	fb := random.Pick(p.rng, facebookTable)
	ig := random.Pick(p.rng, instagramTable)
	fs, ls := nameSlug(first), nameSlug(last)
	handle := fs + "_" + ls
	topic := random.Pick(p.rng, vocab.topics)

	twHandle := fmt.Sprintf("%s%d", handle, random.Between(p.rng, minHandleSuffix, maxHandleSuffix))
	igHandle := fmt.Sprintf("%s.%s%d", fs, ls, random.Between(p.rng, minHandleSuffix, maxHandleSuffix))

	return model.SocialProfiles{
		Twitter: &model.TwitterProfile{
			Handle:         "@" + twHandle,
			URL:            "https://twitter.com/" + twHandle,
			Followers:      tw.followers,
			Following:      tw.following,
			Posts:          tw.posts,
			EngagementRate: tw.engagementRate,
			Bio:            fmt.Sprintf("%s. Sharing thoughts on %s.", title, topic),
		},
		Facebook: &model.FacebookProfile{
			URL:       fmt.Sprintf("https://www.facebook.com/%s.%s.%d", fs, ls, random.Between(p.rng, minHandleSuffix, maxHandleSuffix)),
			Followers: fb.followers,
			PageLikes: fb.pageLikes,
		},
		Instagram: &model.InstagramProfile{
			Handle:         "@" + igHandle,
			URL:            "https://www.instagram.com/" + igHandle,
			Followers:      ig.followers,
			Posts:          ig.posts,
			EngagementRate: ig.engagementRate,
			Bio:            fmt.Sprintf("%s %s | %s", first, last, topic),
		},
	}
}

func (p *SyntheticProfileProvider) company(c model.Contact, industry, location string, vocab industryParams) *model.CompanyProfile {
	params := random.Pick(p.rng, companyTable)
	name := strings.TrimSpace(c.Company)
	topic := random.Pick(p.rng, vocab.topics)
	var website string
	if domain := strings.ReplaceAll(slug(name), "-", ""); domain != "" {
		website = "https://www." + domain + ".com"
	}
	return &model.CompanyProfile{
		Name:          name,
		Industry:      industry,
		Size:          params.size,
		EmployeeCount: params.employeeCount,
		Revenue:       params.revenue,
		Founded:       p.now().Year() - params.age,
		Website:       website,
		Technologies:  sample(p.rng, vocab.technologies, techPerCompany),
		Description: fmt.Sprintf("%s is a %s business based in %s with %s employees, focused on %s.",
			name, strings.ToLower(industry), location, params.size, topic),
		Headquarters: location,
	}
}

// location returns the first known city mentioned in notes or company,
// otherwise a uniformly chosen major market.
func (p *SyntheticProfileProvider) location(c model.Contact) string {
	text := classify.Normalize(c.Notes + " " + c.Company)
	for _, city := range knownCities {
		if strings.Contains(text, classify.Normalize(city.mention)) {
			return city.location
		}
	}
	return random.Pick(p.rng, majorMarkets)
}

// sample returns k distinct elements of items in random order.
func sample(src random.Source, items []string, k int) []string {
	pool := append([]string(nil), items...)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// slug lower-cases s and joins its alphanumeric words with dashes.
func slug(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(classify.Normalize(s)), " ", "-")
}

// nameSlug is slug for a URL path segment, which must not be empty.
func nameSlug(s string) string {
	if v := slug(s); v != "" {
		return v
	}
	return fallbackSlug
}
