// Package personalize fills template placeholders with contact values.
package personalize

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/okian/leadintel/internal/domain/classify"
	"github.com/okian/leadintel/internal/domain/model"
)

// Tokens known to the personalizer.
const (
	TokenFirstName        = "first_name"
	TokenCompanyName      = "company_name"
	TokenPosition         = "position"
	TokenIndustry         = "industry"
	TokenPainPoint        = "pain_point"
	TokenSpecificResult   = "specific_result"
	TokenValueProposition = "value_proposition"
	TokenCaseStudy        = "case_study"
	TokenSenderName       = "sender_name"
	TokenMeetingTime      = "meeting_time"
	TokenOffer            = "offer"
)

// Fallback values for absent contact fields.
const (
	FallbackFirstName   = "there"
	FallbackCompany     = "your business"
	FallbackPosition    = "your role"
	FallbackIndustry    = "your industry"
	FallbackSender      = "our team"
	FallbackMeetingTime = "this week"
	FallbackOffer       = "a complimentary strategy session"
)

// ErrUnresolvedPlaceholder is returned when a template keeps a token after
// substitution.
var ErrUnresolvedPlaceholder = errors.New("unresolved template placeholder")

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// KnownTokens lists every token the personalizer resolves.
func KnownTokens() []string {
	return []string{
		TokenFirstName, TokenCompanyName, TokenPosition, TokenIndustry,
		TokenPainPoint, TokenSpecificResult, TokenValueProposition,
		TokenCaseStudy, TokenSenderName, TokenMeetingTime, TokenOffer,
	}
}

// Values builds the token map for a contact. customData overrides any entry,
// including tokens outside the known set.
func Values(c model.Contact, industry string, customData map[string]string) map[string]string {
	ind := industry
	if ind == "" || ind == classify.GeneralBusiness {
		ind = FallbackIndustry
	}
	cp := copyFor(industry)
	values := map[string]string{
		TokenFirstName:        orDefault(c.First(), FallbackFirstName),
		TokenCompanyName:      orDefault(c.Company, FallbackCompany),
		TokenPosition:         orDefault(c.Position, FallbackPosition),
		TokenIndustry:         ind,
		TokenPainPoint:        cp.painPoint,
		TokenSpecificResult:   cp.specificResult,
		TokenValueProposition: cp.valueProposition,
		TokenCaseStudy:        cp.caseStudy,
		TokenSenderName:       FallbackSender,
		TokenMeetingTime:      FallbackMeetingTime,
		TokenOffer:            FallbackOffer,
	}
	for k, v := range customData {
		if k = strings.TrimSpace(k); k != "" && strings.TrimSpace(v) != "" {
			values[k] = v
		}
	}
	return values
}

// Personalize returns a copy of t with subject and body substituted in a
// single pass. A token left in the output fails personalization, whether the
// template referenced an unknown token or a substituted value carried one.
func Personalize(t model.TemplateDefinition, c model.Contact, industry string, customData map[string]string) (model.TemplateDefinition, error) {
	values := Values(c, industry, customData)
	out := t.Clone()
	out.Subject = substitute(t.Subject, values)
	out.Body = substitute(t.Body, values)
	if left := Placeholders(out.Subject + "\n" + out.Body); len(left) > 0 {
		slices.Sort(left)
		return model.TemplateDefinition{}, fmt.Errorf("%w: template %s: %s",
			ErrUnresolvedPlaceholder, t.ID, strings.Join(left, ", "))
	}
	return out, nil
}

// Placeholders returns the distinct tokens referenced by text, in order of
// first appearance.
func Placeholders(text string) []string {
	var out []string
	for _, m := range placeholder.FindAllStringSubmatch(text, -1) {
		if !slices.Contains(out, m[1]) {
			out = append(out, m[1])
		}
	}
	return out
}

func substitute(text string, values map[string]string) string {
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		if v, ok := values[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
