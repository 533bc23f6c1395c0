package model

import (
	"reflect"
	"slices"
	"time"
)

// Enrichment run statuses.
const (
	EnrichmentCompleted = "completed"
	EnrichmentFailed    = "failed"
)

// Logical groups reported in fieldsEnriched and history fieldsChanged.
const (
	GroupLinkedIn           = "linkedin"
	GroupSocialMedia        = "social_media"
	GroupCompanyInfo        = "company_info"
	GroupEngagementMetrics  = "engagement_metrics"
	GroupContactPreferences = "contact_preferences"
)

// Social activity labels, one per follower bucket.
const (
	ActivityVeryHigh = "very_high"
	ActivityHigh     = "high"
	ActivityMedium   = "medium"
	ActivityLow      = "low"
)

// ProfessionalProfile is the LinkedIn-style sub-profile.
type ProfessionalProfile struct {
	ProfileURL      string   `json:"profileUrl"`
	Headline        string   `json:"headline"`
	JobTitle        string   `json:"jobTitle"`
	Seniority       string   `json:"seniority"`
	Department      string   `json:"department"`
	Skills          []string `json:"skills"`
	Connections     int      `json:"connections"`
	Followers       int      `json:"followers"`
	YearsExperience int      `json:"yearsExperience"`
	Education       string   `json:"education"`
	Summary         string   `json:"summary"`
}

// TwitterProfile is a synthesized microblog presence.
type TwitterProfile struct {
	Handle         string  `json:"handle"`
	URL            string  `json:"url"`
	Followers      int     `json:"followers"`
	Following      int     `json:"following"`
	Posts          int     `json:"posts"`
	EngagementRate float64 `json:"engagementRate"`
	Bio            string  `json:"bio"`
}

// FacebookProfile is a synthesized page presence.
type FacebookProfile struct {
	URL       string `json:"url"`
	Followers int    `json:"followers"`
	PageLikes int    `json:"pageLikes"`
}

// InstagramProfile is a synthesized photo-sharing presence.
type InstagramProfile struct {
	Handle         string  `json:"handle"`
	URL            string  `json:"url"`
	Followers      int     `json:"followers"`
	Posts          int     `json:"posts"`
	EngagementRate float64 `json:"engagementRate"`
	Bio            string  `json:"bio"`
}

// SocialProfiles groups the social platforms. Any entry may be nil.
type SocialProfiles struct {
	Twitter   *TwitterProfile   `json:"twitter,omitempty"`
	Facebook  *FacebookProfile  `json:"facebook,omitempty"`
	Instagram *InstagramProfile `json:"instagram,omitempty"`
}

// Empty reports whether no social platform was produced.
func (s SocialProfiles) Empty() bool {
	return s.Twitter == nil && s.Facebook == nil && s.Instagram == nil
}

// CompanyProfile is the firmographic sub-profile.
type CompanyProfile struct {
	Name          string   `json:"name"`
	Industry      string   `json:"industry"`
	Size          string   `json:"size"`
	EmployeeCount int      `json:"employeeCount"`
	Revenue       string   `json:"revenue"`
	Founded       int      `json:"founded"`
	Website       string   `json:"website"`
	Technologies  []string `json:"technologies"`
	Description   string   `json:"description"`
	Headquarters  string   `json:"headquarters"`
}

// Profile is the pre-scoring output of a profile provider.
type Profile struct {
	Professional *ProfessionalProfile `json:"professional,omitempty"`
	Social       SocialProfiles       `json:"social"`
	Company      *CompanyProfile      `json:"company,omitempty"`
	Location     string               `json:"location,omitempty"`
}

// Empty reports whether the provider produced nothing usable.
func (p *Profile) Empty() bool {
	return p == nil || (p.Professional == nil && p.Social.Empty() && p.Company == nil)
}

// TotalFollowers sums followers across every non-nil platform.
func (p *Profile) TotalFollowers() int {
	if p == nil {
		return 0
	}
	total := 0
	if p.Professional != nil {
		total += p.Professional.Followers
	}
	if p.Social.Twitter != nil {
		total += p.Social.Twitter.Followers
	}
	if p.Social.Facebook != nil {
		total += p.Social.Facebook.Followers
	}
	if p.Social.Instagram != nil {
		total += p.Social.Instagram.Followers
	}
	return total
}

// ContactPreferences captures how and when the contact is best reached.
type ContactPreferences struct {
	PreferredChannel string `json:"preferredChannel"`
	BestContactTime  string `json:"bestContactTime"`
	ResponseRate     int    `json:"responseRate"`
}

// EnrichmentRecord is the result of one enrichment run. Records are never
// mutated after creation.
type EnrichmentRecord struct {
	ID                  string               `json:"id"`
	ContactID           string               `json:"contactId"`
	Industry            string               `json:"industry"`
	Professional        *ProfessionalProfile `json:"professional,omitempty"`
	Social              SocialProfiles       `json:"social"`
	Company             *CompanyProfile      `json:"company,omitempty"`
	Location            string               `json:"location,omitempty"`
	ContactPreferences  *ContactPreferences  `json:"contactPreferences,omitempty"`
	Confidence          int                  `json:"confidence"`
	EngagementScore     int                  `json:"engagementScore"`
	InfluencerScore     int                  `json:"influencerScore"`
	SocialMediaActivity string               `json:"socialMediaActivity,omitempty"`
	TotalFollowers      int                  `json:"totalFollowers"`
	Status              string               `json:"status"`
	DataSource          string               `json:"dataSource"`
	LastEnriched        time.Time            `json:"lastEnriched"`
	Error               string               `json:"error,omitempty"`
}

// HistoryEntry is one append-only audit row of an enrichment run.
type HistoryEntry struct {
	ID            string            `json:"id"`
	ContactID     string            `json:"contactId"`
	RecordID      string            `json:"recordId"`
	FieldsChanged []string          `json:"fieldsChanged"`
	OldSnapshot   *EnrichmentRecord `json:"oldSnapshot,omitempty"`
	NewSnapshot   *EnrichmentRecord `json:"newSnapshot,omitempty"`
	Success       bool              `json:"success"`
	ErrorMessage  string            `json:"errorMessage,omitempty"`
	DataSource    string            `json:"dataSource"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// Clone returns a deep copy of r. A nil record clones to nil.
func (r *EnrichmentRecord) Clone() *EnrichmentRecord {
	if r == nil {
		return nil
	}
	out := *r
	if r.Professional != nil {
		p := *r.Professional
		p.Skills = slices.Clone(p.Skills)
		out.Professional = &p
	}
	out.Social = r.Social.clone()
	if r.Company != nil {
		c := *r.Company
		c.Technologies = slices.Clone(c.Technologies)
		out.Company = &c
	}
	if r.ContactPreferences != nil {
		cp := *r.ContactPreferences
		out.ContactPreferences = &cp
	}
	return &out
}

func (s SocialProfiles) clone() SocialProfiles {
	out := SocialProfiles{}
	if s.Twitter != nil {
		t := *s.Twitter
		out.Twitter = &t
	}
	if s.Facebook != nil {
		f := *s.Facebook
		out.Facebook = &f
	}
	if s.Instagram != nil {
		i := *s.Instagram
		out.Instagram = &i
	}
	return out
}

// Groups lists the logical field groups r carries, in reporting order.
func (r *EnrichmentRecord) Groups() []string {
	if r == nil || r.Status != EnrichmentCompleted {
		return []string{}
	}
	out := make([]string, 0, 5)
	if r.Professional != nil {
		out = append(out, GroupLinkedIn)
	}
	if !r.Social.Empty() {
		out = append(out, GroupSocialMedia)
	}
	if r.Company != nil {
		out = append(out, GroupCompanyInfo)
	}
	out = append(out, GroupEngagementMetrics)
	if r.ContactPreferences != nil {
		out = append(out, GroupContactPreferences)
	}
	return out
}

// ChangedGroups lists the groups whose values differ between prev and next.
// With no previous record every group next carries is reported.
func ChangedGroups(prev, next *EnrichmentRecord) []string {
	if prev == nil {
		return next.Groups()
	}
	if next == nil {
		return []string{}
	}
	out := make([]string, 0, 5)
	if !reflect.DeepEqual(prev.Professional, next.Professional) {
		out = append(out, GroupLinkedIn)
	}
	if !reflect.DeepEqual(prev.Social, next.Social) {
		out = append(out, GroupSocialMedia)
	}
	if !reflect.DeepEqual(prev.Company, next.Company) {
		out = append(out, GroupCompanyInfo)
	}
	if prev.EngagementScore != next.EngagementScore || prev.InfluencerScore != next.InfluencerScore ||
		prev.SocialMediaActivity != next.SocialMediaActivity || prev.TotalFollowers != next.TotalFollowers {
		out = append(out, GroupEngagementMetrics)
	}
	if !reflect.DeepEqual(prev.ContactPreferences, next.ContactPreferences) {
		out = append(out, GroupContactPreferences)
	}
	return out
}
