package personalize

import "github.com/okian/leadintel/internal/domain/classify"

// industryCopy holds the industry-derived token values.
type industryCopy struct {
	painPoint        string
	specificResult   string
	valueProposition string
	caseStudy        string
}

var industryTable = map[string]industryCopy{
	classify.Healthcare: {
		painPoint:        "missed appointments and no-shows",
		specificResult:   "a 30% drop in appointment no-shows",
		valueProposition: "automated reminders keep your schedule full without extra front desk work",
		caseStudy:        "a three-location dental group cut no-shows by 35% in its first quarter",
	},
	classify.RealEstate: {
		painPoint:        "leads going cold between showings",
		specificResult:   "40% faster response times to new buyer inquiries",
		valueProposition: "every inquiry gets an instant, personal follow-up",
		caseStudy:        "a boutique brokerage closed 18% more deals in six months",
	},
	classify.Finance: {
		painPoint:        "time lost on manual client follow-ups",
		specificResult:   "advisors reclaiming about 6 hours a week",
		valueProposition: "compliant outreach runs on autopilot while you focus on clients",
		caseStudy:        "a regional advisory firm grew its client base by 22% in a year",
	},
	classify.Technology: {
		painPoint:        "long sales cycles and stalled trials",
		specificResult:   "a 25% lift in trial-to-paid conversion",
		valueProposition: "product signals trigger the right message at the right time",
		caseStudy:        "a B2B SaaS team shortened its sales cycle by three weeks",
	},
	classify.Retail: {
		painPoint:        "one-time shoppers who never come back",
		specificResult:   "a 20% increase in repeat purchases",
		valueProposition: "personal follow-ups turn first purchases into loyal customers",
		caseStudy:        "an independent boutique doubled its returning customer rate",
	},
	classify.Manufacturing: {
		painPoint:        "quote requests that slip through the cracks",
		specificResult:   "a 30% faster quote turnaround",
		valueProposition: "every quote request is tracked and followed up automatically",
		caseStudy:        "a precision parts maker won 15% more bids in two quarters",
	},
	classify.Education: {
		painPoint:        "inquiries that never turn into enrollments",
		specificResult:   "a 25% increase in enrollment conversions",
		valueProposition: "prospective students hear back while their interest is high",
		caseStudy:        "a private academy filled its fall cohort two months early",
	},
	classify.Legal: {
		painPoint:        "potential clients who call once and disappear",
		specificResult:   "35% more consultations booked from the same inquiries",
		valueProposition: "intake follow-up happens within minutes, even after hours",
		caseStudy:        "a family law practice booked 40% more consultations in a quarter",
	},
	classify.Hospitality: {
		painPoint:        "empty tables on weeknights",
		specificResult:   "a 20% lift in repeat bookings",
		valueProposition: "guests get timely, personal invitations to return",
		caseStudy:        "a neighborhood restaurant group filled 30% more weeknight covers",
	},
	classify.Construction: {
		painPoint:        "estimates that never get a reply",
		specificResult:   "25% more estimates turning into signed jobs",
		valueProposition: "every estimate gets a timely, professional follow-up",
		caseStudy:        "a roofing contractor booked its busiest season on record",
	},
	classify.GeneralBusiness: {
		painPoint:        "leads falling through the cracks",
		specificResult:   "a 25% increase in qualified conversations",
		valueProposition: "consistent follow-up happens without adding to your workload",
		caseStudy:        "a growing services firm doubled its reply rate in 90 days",
	},
}

// copyFor returns the industry copy, falling back to general business.
func copyFor(industry string) industryCopy {
	if v, ok := industryTable[industry]; ok {
		return v
	}
	return industryTable[classify.GeneralBusiness]
}
