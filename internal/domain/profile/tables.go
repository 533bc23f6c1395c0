package profile

import "github.com/okian/leadintel/internal/domain/classify"

// Parameter tables for the synthetic provider. Entries are drawn by seeded
// random index; follower counts are spread so that totals land in every
// scoring bucket.

type linkedInParams struct {
	connections     int
	followers       int
	yearsExperience int
	education       string
}

type twitterParams struct {
	followers      int
	following      int
	posts          int
	engagementRate float64
}

type facebookParams struct {
	followers int
	pageLikes int
}

type instagramParams struct {
	followers      int
	posts          int
	engagementRate float64
}

type companyParams struct {
	size          string
	employeeCount int
	revenue       string
	age           int
}

var linkedInTable = []linkedInParams{
	{connections: 180, followers: 150, yearsExperience: 3, education: "State University"},
	{connections: 420, followers: 380, yearsExperience: 6, education: "University of Michigan"},
	{connections: 500, followers: 900, yearsExperience: 9, education: "UCLA"},
	{connections: 500, followers: 1800, yearsExperience: 12, education: "New York University"},
	{connections: 500, followers: 3500, yearsExperience: 18, education: "Northwestern University"},
	{connections: 500, followers: 6200, yearsExperience: 22, education: "Stanford University"},
}

var twitterTable = []twitterParams{
	{followers: 45, following: 120, posts: 210, engagementRate: 0.8},
	{followers: 320, following: 410, posts: 1200, engagementRate: 1.6},
	{followers: 1100, following: 600, posts: 3400, engagementRate: 2.4},
	{followers: 2600, following: 850, posts: 5200, engagementRate: 3.1},
	{followers: 7400, following: 1200, posts: 9800, engagementRate: 4.2},
}

var facebookTable = []facebookParams{
	{followers: 60, pageLikes: 55},
	{followers: 240, pageLikes: 230},
	{followers: 880, pageLikes: 820},
	{followers: 2100, pageLikes: 1950},
}

var instagramTable = []instagramParams{
	{followers: 90, posts: 40, engagementRate: 1.2},
	{followers: 560, posts: 180, engagementRate: 2.8},
	{followers: 1500, posts: 420, engagementRate: 3.9},
	{followers: 4800, posts: 960, engagementRate: 5.5},
}

var companyTable = []companyParams{
	{size: "1-10", employeeCount: 8, revenue: "<$1M", age: 4},
	{size: "11-50", employeeCount: 35, revenue: "$1M-$5M", age: 9},
	{size: "51-200", employeeCount: 120, revenue: "$5M-$20M", age: 15},
	{size: "201-500", employeeCount: 340, revenue: "$20M-$50M", age: 22},
	{size: "501-1000", employeeCount: 780, revenue: "$50M-$100M", age: 31},
	{size: "1000+", employeeCount: 2400, revenue: "$100M+", age: 45},
}

// industryParams holds the vocabulary used when templating text fields.
type industryParams struct {
	titles       []string
	skills       []string
	topics       []string
	technologies []string
}

var industryTable = map[string]industryParams{
	classify.Healthcare: {
		titles:       []string{"Practice Manager", "Office Manager", "Clinical Director", "Practice Owner"},
		skills:       []string{"Patient Care", "Practice Management", "HIPAA Compliance", "Medical Billing", "Team Leadership"},
		topics:       []string{"patient experience", "preventive care", "practice growth", "healthcare innovation"},
		technologies: []string{"Dentrix", "Epic", "Athenahealth", "Weave", "Google Workspace"},
	},
	classify.RealEstate: {
		titles:       []string{"Broker", "Realtor", "Property Manager", "Team Lead"},
		skills:       []string{"Negotiation", "Market Analysis", "Property Marketing", "Client Relations", "Contract Management"},
		topics:       []string{"local housing markets", "first-time buyers", "property investment", "home staging"},
		technologies: []string{"Zillow Premier Agent", "DocuSign", "MLS", "Follow Up Boss", "Canva"},
	},
	classify.Finance: {
		titles:       []string{"Financial Advisor", "Branch Manager", "Controller", "Wealth Manager"},
		skills:       []string{"Financial Planning", "Risk Management", "Compliance", "Portfolio Management", "Client Advisory"},
		topics:       []string{"retirement planning", "financial literacy", "wealth management", "market trends"},
		technologies: []string{"Salesforce Financial Cloud", "QuickBooks", "Bloomberg Terminal", "Redtail CRM", "Excel"},
	},
	classify.Technology: {
		titles:       []string{"Product Manager", "Engineering Manager", "CTO", "Solutions Architect"},
		skills:       []string{"Cloud Architecture", "Agile", "Product Strategy", "SaaS", "Data Analytics"},
		topics:       []string{"developer productivity", "cloud computing", "AI", "product-led growth"},
		technologies: []string{"AWS", "Kubernetes", "GitHub", "Slack", "Jira", "HubSpot"},
	},
	classify.Retail: {
		titles:       []string{"Store Manager", "E-commerce Manager", "Merchandising Lead", "Owner"},
		skills:       []string{"Merchandising", "Inventory Management", "Customer Experience", "E-commerce", "Visual Display"},
		topics:       []string{"customer loyalty", "omnichannel retail", "seasonal trends", "small business"},
		technologies: []string{"Shopify", "Square", "Lightspeed", "Klaviyo", "Instagram Shopping"},
	},
	classify.Manufacturing: {
		titles:       []string{"Plant Manager", "Operations Director", "Quality Manager", "Supply Chain Lead"},
		skills:       []string{"Lean Manufacturing", "Six Sigma", "Quality Control", "Supply Chain", "Process Improvement"},
		topics:       []string{"operational efficiency", "automation", "supply chain resilience", "safety culture"},
		technologies: []string{"SAP", "Oracle NetSuite", "Fishbowl", "AutoCAD", "Tableau"},
	},
	classify.Education: {
		titles:       []string{"Principal", "Program Director", "Admissions Director", "Academic Coordinator"},
		skills:       []string{"Curriculum Design", "Student Engagement", "EdTech", "Program Management", "Enrollment"},
		topics:       []string{"student success", "lifelong learning", "education technology", "community outreach"},
		technologies: []string{"Canvas", "Google Classroom", "Blackboard", "Zoom", "PowerSchool"},
	},
	classify.Legal: {
		titles:       []string{"Managing Partner", "Attorney", "Legal Operations Manager", "Paralegal"},
		skills:       []string{"Litigation", "Contract Law", "Client Intake", "Legal Research", "Case Management"},
		topics:       []string{"access to justice", "legal technology", "client service", "practice management"},
		technologies: []string{"Clio", "MyCase", "LexisNexis", "DocuSign", "Microsoft 365"},
	},
	classify.Hospitality: {
		titles:       []string{"General Manager", "Owner", "Events Manager", "Operations Manager"},
		skills:       []string{"Guest Experience", "Event Planning", "Revenue Management", "Staff Training", "Food & Beverage"},
		topics:       []string{"guest experience", "local dining", "event hosting", "hospitality trends"},
		technologies: []string{"Toast", "OpenTable", "Opera PMS", "Square", "Mailchimp"},
	},
	classify.Construction: {
		titles:       []string{"Project Manager", "Owner", "Estimator", "Site Superintendent"},
		skills:       []string{"Project Management", "Estimating", "Safety Compliance", "Scheduling", "Subcontractor Management"},
		topics:       []string{"project delivery", "job site safety", "sustainable building", "home improvement"},
		technologies: []string{"Procore", "Buildertrend", "QuickBooks", "Bluebeam", "CompanyCam"},
	},
	classify.GeneralBusiness: {
		titles:       []string{"Operations Manager", "Business Owner", "General Manager", "Account Manager"},
		skills:       []string{"Business Strategy", "Customer Service", "Team Leadership", "Project Management", "Sales"},
		topics:       []string{"business growth", "customer success", "productivity", "entrepreneurship"},
		technologies: []string{"Microsoft 365", "Google Workspace", "QuickBooks", "Slack", "Zoom"},
	},
}

// knownCities maps a mention found in free text to a display location.
// Matching walks the slice in order.
var knownCities = []struct {
	mention  string
	location string
}{
	{"new york", "New York, NY"},
	{"nyc", "New York, NY"},
	{"los angeles", "Los Angeles, CA"},
	{"san francisco", "San Francisco, CA"},
	{"san diego", "San Diego, CA"},
	{"chicago", "Chicago, IL"},
	{"houston", "Houston, TX"},
	{"dallas", "Dallas, TX"},
	{"austin", "Austin, TX"},
	{"phoenix", "Phoenix, AZ"},
	{"philadelphia", "Philadelphia, PA"},
	{"seattle", "Seattle, WA"},
	{"denver", "Denver, CO"},
	{"boston", "Boston, MA"},
	{"miami", "Miami, FL"},
	{"atlanta", "Atlanta, GA"},
	{"toronto", "Toronto, ON"},
	{"london", "London, UK"},
}

// majorMarkets is the uniform fallback when no city is mentioned.
var majorMarkets = []string{
	"New York, NY",
	"Los Angeles, CA",
	"Chicago, IL",
	"Houston, TX",
	"Dallas, TX",
	"Miami, FL",
	"Atlanta, GA",
	"Seattle, WA",
	"Boston, MA",
	"San Francisco, CA",
}
