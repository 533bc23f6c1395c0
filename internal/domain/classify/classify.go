// Package classify maps free-text contact fields to industry, seniority and
// department labels using ordered keyword rules.
package classify

import "github.com/okian/leadintel/internal/domain/model"

// Industry labels. GeneralBusiness is the fallback.
const (
	Healthcare      = "Healthcare"
	RealEstate      = "Real Estate"
	Finance         = "Finance"
	Technology      = "Technology"
	Retail          = "Retail"
	Manufacturing   = "Manufacturing"
	Education       = "Education"
	Legal           = "Legal"
	Hospitality     = "Hospitality"
	Construction    = "Construction"
	GeneralBusiness = "General Business"
)

// Seniority labels, highest first.
const (
	SeniorityCLevel   = "c_level"
	SeniorityVP       = "vp"
	SeniorityDirector = "director"
	SenioritySenior   = "senior"
	SeniorityEntry    = "entry"
	SeniorityMid      = "mid"
)

// Department labels.
const (
	DepartmentMarketing  = "marketing"
	DepartmentSales      = "sales"
	DepartmentOperations = "operations"
	DepartmentHR         = "hr"
	DepartmentFinance    = "finance"
	DepartmentIT         = "it"
)

// IndustryRules is evaluated top to bottom over notes + company. The order
// is part of the contract: a company mentioning both "dental" and
// "software" is Healthcare.
var IndustryRules = []Rule{
	{Healthcare, AnyWord("dental", "dentist", "dentistry", "orthodontic", "orthodontist", "doctor", "clinic", "clinics",
		"medical", "health", "healthcare", "hospital", "pharmacy", "pharma", "physician", "therapy", "chiropractic", "veterinary")},
	{RealEstate, AnyWord("real estate", "realty", "realtor", "property", "properties", "mortgage", "housing", "homes", "brokerage")},
	{Finance, AnyWord("bank", "banking", "finance", "financial", "insurance", "investment", "investments", "accounting",
		"wealth", "capital", "credit union", "fintech", "tax")},
	{Technology, AnyWord("software", "saas", "tech", "technology", "technologies", "cloud", "digital", "startup",
		"developer", "it services", "cybersecurity", "ai")},
	{Retail, AnyWord("retail", "store", "stores", "shop", "boutique", "ecommerce", "e commerce", "online store", "merchandise")},
	{Manufacturing, AnyWord("manufacturing", "manufacturer", "factory", "industrial", "fabrication", "machining", "production plant")},
	{Education, AnyWord("school", "schools", "education", "university", "college", "academy", "tutoring", "training center", "elearning")},
	{Legal, AnyWord("law firm", "legal", "attorney", "attorneys", "lawyer", "lawyers", "paralegal", "litigation")},
	{Hospitality, AnyWord("restaurant", "restaurants", "hotel", "hotels", "cafe", "catering", "hospitality", "bakery", "bar and grill")},
	{Construction, AnyWord("construction", "contractor", "contractors", "roofing", "plumbing", "hvac", "remodeling", "builders")},
}

// Industries lists every industry label the classifier can return, in
// rule order, followed by the fallback.
func Industries() []string {
	out := make([]string, 0, len(IndustryRules)+1)
	for _, r := range IndustryRules {
		out = append(out, r.Label)
	}
	return append(out, GeneralBusiness)
}

var cLevelKeywords = AnyWord("ceo", "cto", "cfo", "coo", "cmo", "cio", "chief", "founder", "co founder",
	"owner", "president", "managing partner")

// SeniorityRules is evaluated over the job title.
var SeniorityRules = []Rule{
	{SeniorityCLevel, All(cLevelKeywords, Not(AnyWord("vice president")))},
	{SeniorityVP, AnyWord("vp", "vice president", "svp", "evp")},
	{SeniorityDirector, AnyWord("director", "head of")},
	{SenioritySenior, AnyWord("senior", "sr", "lead", "principal", "staff")},
	{SeniorityEntry, AnyWord("junior", "jr", "intern", "assistant", "associate", "trainee", "entry level", "coordinator")},
}

// DepartmentRules is evaluated over the job title.
var DepartmentRules = []Rule{
	{DepartmentMarketing, AnyWord("marketing", "brand", "growth", "content", "seo", "communications", "cmo")},
	{DepartmentSales, AnyWord("sales", "business development", "account executive", "account manager", "bdr", "sdr", "revenue")},
	{DepartmentOperations, AnyWord("operations", "logistics", "supply chain", "coo", "office manager")},
	{DepartmentHR, AnyWord("hr", "human resources", "people", "talent", "recruiter", "recruiting")},
	{DepartmentFinance, AnyWord("finance", "financial", "accounting", "accountant", "controller", "cfo", "treasurer")},
	{DepartmentIT, AnyWord("it", "engineering", "engineer", "developer", "software", "technology", "cto", "cio", "devops")},
}

// Result is the classification of one contact.
type Result struct {
	Industry   string `json:"industry"`
	Seniority  string `json:"seniority"`
	Department string `json:"department"`
}

// Classify classifies a contact. It is a pure function of its input.
func Classify(c model.Contact) Result {
	title := Normalize(c.Position)
	return Result{
		Industry:   Industry(c),
		Seniority:  Resolve(SeniorityRules, title, SeniorityMid),
		Department: Resolve(DepartmentRules, title, DepartmentOperations),
	}
}

// Industry classifies the contact's industry from notes and company.
func Industry(c model.Contact) string {
	return Resolve(IndustryRules, Normalize(c.Notes+" "+c.Company), GeneralBusiness)
}

// Seniority classifies a free-text job title.
func Seniority(title string) string {
	return Resolve(SeniorityRules, Normalize(title), SeniorityMid)
}

// Department classifies a free-text job title.
func Department(title string) string {
	return Resolve(DepartmentRules, Normalize(title), DepartmentOperations)
}
