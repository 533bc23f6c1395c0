// Package model contains domain models passed between layers.
package model

import "strings"

// Lead statuses recognised by the outreach path.
const (
	StatusNew         = "new"
	StatusContacted   = "contacted"
	StatusQualified   = "qualified"
	StatusProposal    = "proposal"
	StatusNegotiation = "negotiation"
	StatusClosedWon   = "closed_won"
	StatusClosedLost  = "closed_lost"
)

// AnonymousKey is the history key of a contact with no identifying fields.
const AnonymousKey = "anonymous"

// Contact is the read-only contact record handed in by the CRM.
// Every field is optional.
type Contact struct {
	ID         string `json:"id,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Name       string `json:"name,omitempty"` // full name, used when first/last are absent
	Company    string `json:"company,omitempty"`
	Position   string `json:"position,omitempty"`
	Notes      string `json:"notes,omitempty"`
	LeadStatus string `json:"leadStatus,omitempty"`
	Status     string `json:"status,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}

// First returns the trimmed first name, falling back to the first word of Name.
func (c Contact) First() string {
	if v := strings.TrimSpace(c.FirstName); v != "" {
		return v
	}
	parts := strings.Fields(c.Name)
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}

// Last returns the trimmed last name, falling back to the remaining words of Name.
func (c Contact) Last() string {
	if v := strings.TrimSpace(c.LastName); v != "" {
		return v
	}
	parts := strings.Fields(c.Name)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// EffectiveStatus is LeadStatus when set, otherwise Status, lower-cased.
func (c Contact) EffectiveStatus() string {
	s := strings.TrimSpace(c.LeadStatus)
	if s == "" {
		s = strings.TrimSpace(c.Status)
	}
	return strings.ToLower(s)
}

// HasPhone reports whether a phone number is present.
func (c Contact) HasPhone() bool { return strings.TrimSpace(c.Phone) != "" }

// HasEmail reports whether an email address is present.
func (c Contact) HasEmail() bool { return strings.TrimSpace(c.Email) != "" }

// HasCompany reports whether a company name is present.
func (c Contact) HasCompany() bool { return strings.TrimSpace(c.Company) != "" }

// Key identifies the contact in the enrichment history log.
func (c Contact) Key() string {
	switch {
	case strings.TrimSpace(c.ID) != "":
		return strings.TrimSpace(c.ID)
	case c.HasEmail():
		return strings.ToLower(strings.TrimSpace(c.Email))
	case c.HasPhone():
		return strings.TrimSpace(c.Phone)
	}
	name := strings.TrimSpace(c.First() + " " + c.Last())
	if name == "" && !c.HasCompany() {
		return AnonymousKey
	}
	return strings.ToLower(strings.TrimSpace(name + "@" + strings.TrimSpace(c.Company)))
}

// ConversationContext describes the conversation the outreach path ranks against.
type ConversationContext struct {
	ConversationStage string            `json:"conversationStage,omitempty"`
	UrgencyLevel      string            `json:"urgencyLevel,omitempty"`
	ResponseHistory   []string          `json:"responseHistory,omitempty"`
	LastMessage       string            `json:"lastMessage,omitempty"`
	Category          string            `json:"category,omitempty"`        // optional restriction to one category
	EngagementScore   *int              `json:"engagementScore,omitempty"` // from a prior enrichment run
	CustomData        map[string]string `json:"customData,omitempty"`      // placeholder overrides
}
