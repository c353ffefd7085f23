// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import "github.com/pdiddy/email-engine/pkg/types"

// Fixed lookup tables for classification. Kept as data, not branching logic.

// intentKeywords seed the keyword pass; a category scores one point per
// keyword found in the lower-cased request.
var intentKeywords = map[types.IntentType][]string{
	types.IntentInformationRequest: {
		"information", "clarify", "explain", "details", "question",
		"know", "understand", "learn", "find out",
	},
	types.IntentActionRequired: {
		"action", "do", "complete", "send", "provide", "submit",
		"deadline", "due", "required", "need", "must",
	},
	types.IntentFollowUp: {
		"follow up", "checking in", "status", "progress", "update",
		"previous", "meeting", "discussion", "last time",
	},
	types.IntentIntroduction: {
		"introduce", "meet", "new", "welcome", "presentation",
		"first time", "get to know", "introduction",
	},
	types.IntentApology: {
		"sorry", "apologize", "apology", "mistake", "error",
		"problem", "issue", "incorrect", "wrong",
	},
	types.IntentThankYou: {
		"thank", "thanks", "grateful", "appreciate", "gratitude",
		"help", "support", "assistance", "kindness",
	},
	types.IntentSalesPitch: {
		"buy", "purchase", "sale", "offer", "deal", "price",
		"product", "service", "promotion", "discount",
	},
	types.IntentAnnouncement: {
		"announce", "announcement", "news", "update", "change",
		"launch", "release", "new", "inform",
	},
	types.IntentInquiry: {
		"inquire", "inquiry", "available", "price", "cost",
		"interested", "considering", "option",
	},
}

// intentQuestions is the per-intent clarification question bank; at most two
// are asked per run.
var intentQuestions = map[types.IntentType][]string{
	types.IntentInformationRequest: {
		"Are you asking for information or clarification?",
		"Do you need specific details or explanations?",
		"Is this a general question or specific inquiry?",
	},
	types.IntentActionRequired: {
		"Do you need the recipient to take any action?",
		"Is there a deadline or timeline involved?",
		"What specific action do you need them to perform?",
	},
	types.IntentFollowUp: {
		"Are you following up on a previous conversation?",
		"Was there a prior discussion or meeting?",
		"Do you need to check on progress or status?",
	},
	types.IntentIntroduction: {
		"Are you introducing yourself or someone else?",
		"Is this a professional or personal introduction?",
		"What is the purpose of this introduction?",
	},
	types.IntentApology: {
		"Are you apologizing for something?",
		"Is this related to a mistake or issue?",
		"Do you need to make amends or correct something?",
	},
	types.IntentThankYou: {
		"Are you expressing gratitude?",
		"What are you thankful for?",
		"Is this for help, support, or something else?",
	},
	types.IntentSalesPitch: {
		"Are you promoting a product or service?",
		"Are you trying to make a sale?",
		"Is this about business development?",
	},
	types.IntentAnnouncement: {
		"Are you making an announcement?",
		"Is this about news, updates, or changes?",
		"Who needs to know about this?",
	},
	types.IntentInquiry: {
		"Are you inquiring about something specific?",
		"Is this about availability, pricing, or services?",
		"What information do you need?",
	},
}

// Urgency keyword tiers, scanned in priority order: urgent > high > low.
var (
	urgentKeywords = []string{"urgent", "asap", "immediately", "emergency", "critical", "deadline today"}
	highKeywords   = []string{"soon", "quickly", "promptly", "as soon as possible", "this week", "few days"}
	lowKeywords    = []string{"when you have time", "no rush", "whenever", "eventually", "next month"}
)

// Formality indicator sets, scanned in both recipient and content.
var (
	formalityFormal = []string{
		"dear", "sincerely", "regards", "professional", "formal", "respectfully",
		"mr.", "mrs.", "ms.", "dr.", "professor", "manager", "director", "ceo",
	}
	formalityCasual = []string{
		"hi", "hey", "hello", "thanks", "cheers", "best", "friend", "buddy",
		"lol", "haha", "cool", "awesome", "great",
	}
)

// clarifyOption is one entry of the fixed, ordered clarification menu.
type clarifyOption struct {
	Label  string
	Intent types.IntentType
}

var clarifyOptions = []clarifyOption{
	{"Information Request", types.IntentInformationRequest},
	{"Action Required", types.IntentActionRequired},
	{"Follow Up", types.IntentFollowUp},
	{"Introduction", types.IntentIntroduction},
	{"Thank You", types.IntentThankYou},
	{"Apology", types.IntentApology},
	{"Sales/Promotional", types.IntentSalesPitch},
	{"Announcement", types.IntentAnnouncement},
	{"Inquiry", types.IntentInquiry},
	{"Other", types.IntentOther},
}
