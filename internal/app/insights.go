package service

import (
	"fmt"
	"strings"

	"github.com/okian/leadintel/internal/domain/classify"
	"github.com/okian/leadintel/internal/domain/model"
)

// urgentSendWindow replaces the industry window for high urgency replies.
const urgentSendWindow = "Within the next 2 hours"

type industryInsights struct {
	sendWindow string
	insights   []string
	tip        string
}

var insightTable = map[string]industryInsights{
	classify.Healthcare: {
		sendWindow: "Tuesday-Thursday, 7:30-9:00 AM or 12:00-1:00 PM",
		insights: []string{
			"Practices respond best outside patient hours.",
			"Compliance and patient privacy are common first questions.",
			"Front-desk staff often screen vendor outreach.",
		},
		tip: "Mention patient experience rather than technology.",
	},
	classify.RealEstate: {
		sendWindow: "Monday-Friday, 9:00-11:00 AM",
		insights: []string{
			"Agents are most reachable before showings start.",
			"Lead response speed is the top concern for brokerages.",
			"Weekends are busy with open houses.",
		},
		tip: "Tie the offer to closing more deals per month.",
	},
	classify.Finance: {
		sendWindow: "Tuesday-Thursday, 8:00-10:00 AM",
		insights: []string{
			"Decision makers expect security and audit questions answered up front.",
			"Quarter ends are a poor time to start a conversation.",
		},
		tip: "Lead with compliance and client trust.",
	},
	classify.Technology: {
		sendWindow: "Tuesday-Thursday, 10:00 AM-12:00 PM",
		insights: []string{
			"Technical buyers prefer concise messages with a clear integration story.",
			"Free trials and sandboxes shorten evaluation.",
		},
		tip: "Reference the tools they already use.",
	},
	classify.Retail: {
		sendWindow: "Monday-Wednesday, 9:00-11:00 AM",
		insights: []string{
			"Holiday seasons leave little room for new projects.",
			"Repeat-customer growth resonates more than acquisition.",
		},
		tip: "Speak to foot traffic and repeat purchases.",
	},
	classify.Manufacturing: {
		sendWindow: "Tuesday-Thursday, 7:00-9:00 AM",
		insights: []string{
			"Operations leaders start early and plan around shifts.",
			"Downtime and throughput are the metrics that matter.",
		},
		tip: "Quantify time saved on the floor.",
	},
	classify.Education: {
		sendWindow: "Monday-Thursday, 3:00-5:00 PM",
		insights: []string{
			"Budgets are set well ahead of the academic year.",
			"Summer is the best window for rollout conversations.",
		},
		tip: "Focus on student and parent outcomes.",
	},
	classify.Legal: {
		sendWindow: "Tuesday-Thursday, 8:00-9:30 AM",
		insights: []string{
			"Attorneys bill in small increments and value brevity.",
			"Confidentiality is a hard requirement.",
		},
		tip: "Keep the message short and precise.",
	},
	classify.Hospitality: {
		sendWindow: "Monday-Wednesday, 2:00-4:00 PM",
		insights: []string{
			"Owners are free between lunch and dinner service.",
			"Online reviews drive most new business.",
		},
		tip: "Connect the offer to guest reviews and bookings.",
	},
	classify.Construction: {
		sendWindow: "Monday-Friday, 6:30-8:00 AM",
		insights: []string{
			"Contractors check messages before heading to job sites.",
			"Bid volume and scheduling are recurring pain points.",
		},
		tip: "Mention winning more bids with less paperwork.",
	},
	classify.GeneralBusiness: {
		sendWindow: "Tuesday-Thursday, 10:00 AM-2:00 PM",
		insights: []string{
			"Mid-week messages get the highest open rates.",
			"Personalized subject lines lift replies noticeably.",
		},
		tip: "Reference something specific about their business.",
	},
}

func insightsFor(industry string) industryInsights {
	if v, ok := insightTable[industry]; ok {
		return v
	}
	return insightTable[classify.GeneralBusiness]
}

// bestSendTime is the recommended window for the reply.
func bestSendTime(industry, urgency string) string {
	if urgency == model.UrgencyHigh {
		return urgentSendWindow
	}
	return insightsFor(industry).sendWindow
}

// personalizationTips lists advice for editing the drafted message.
func personalizationTips(c model.Contact, industry string, cc model.ConversationContext) []string {
	tips := []string{insightsFor(industry).tip}
	if c.First() == "" {
		tips = append(tips, "Add the contact's first name before sending.")
	}
	if !c.HasCompany() {
		tips = append(tips, "Confirm the company name to make the message specific.")
	}
	if p := strings.TrimSpace(c.Position); p != "" {
		tips = append(tips, fmt.Sprintf("Frame the benefit around the %s role.", p))
	}
	if strings.TrimSpace(cc.LastMessage) != "" {
		tips = append(tips, "Reply to the points raised in their last message.")
	}
	if len(cc.ResponseHistory) == 0 {
		tips = append(tips, "This is a first touch. Keep it short and ask one question.")
	}
	return tips
}

// industryInsightsList returns a copy of the industry's insight lines.
func industryInsightsList(industry string) []string {
	return append([]string(nil), insightsFor(industry).insights...)
}
