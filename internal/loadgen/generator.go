package loadgen

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/okian/leadintel/internal/domain/model"
	"github.com/okian/leadintel/internal/domain/random"
)

var (
	firstNames = []string{"Sarah", "Tom", "Ana", "Marcus", "Priya", "Liam", "Chen", "Olivia", "Diego", "Fatima"}
	lastNames  = []string{"Johnson", "Reed", "Ruiz", "Okafor", "Patel", "Murphy", "Wei", "Brown", "Santos", "Haddad"}
	companies  = []string{
		"Bright Smiles Dental", "Sunrise Realty", "First Federal Bank", "Cloudline SaaS", "Corner Boutique",
		"Precision Fabrication", "Northside Academy", "Smith & Jones Law Firm", "Harbor Hotel", "Summit Roofing", "Acme Widgets",
	}
	positions = []string{"Practice Manager", "CEO", "Director of Marketing", "Office Manager", "VP, Sales", "Owner", "Account Manager"}
	cities    = []string{"Chicago", "Austin", "Boston", "Seattle", "Miami", ""}
	statuses  = []string{model.StatusNew, "contacted", "qualified", "proposal", ""}
)

// generateContacts returns n contacts with unique ids. Every tenth contact
// lacks a company and surname, which the provider cannot enrich.
func generateContacts(src random.Source, n int) []model.Contact {
	out := make([]model.Contact, n)
	for i := range out {
		first := random.Pick(src, firstNames)
		last := random.Pick(src, lastNames)
		c := model.Contact{
			ID:         "load-" + uuid.NewString(),
			FirstName:  first,
			LastName:   last,
			Company:    random.Pick(src, companies),
			Position:   random.Pick(src, positions),
			LeadStatus: random.Pick(src, statuses),
			Email:      fmt.Sprintf("%s.%s%d@example.com", first, last, i),
		}
		if city := random.Pick(src, cities); city != "" {
			c.Notes = "Based in " + city
		}
		if i%10 == 9 {
			c.Company, c.LastName = "", ""
		}
		out[i] = c
	}
	return out
}
