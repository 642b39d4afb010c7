// Package dialogue holds the static consultation script: a read-only graph of
// steps keyed by opaque string ids.
//
// The graph covers the discovery phase of a consultation (who the visitor is,
// what they want). It is intentionally irregular: country steps acknowledge
// and chain into a shared visa_types step, menu steps branch, and some menu
// values have no step at all. A missing step is not an error; it routes the
// engine into its personalized-response fallback, which covers the advisory
// phase.
package dialogue

import "github.com/ae-wizard/worldimmigration/internal/models"

// Well-known step ids referenced by the engine.
const (
	// StepWelcome is the entry point of every session.
	StepWelcome = "welcome"
	// StepVisaTypes is the shared hub every country step funnels into.
	StepVisaTypes = "visa_types"
	// StepFromOther collects a free-text country before joining the hub.
	StepFromOther = "from_other"
)

// Lookup returns the step definition for the given id. The second return is
// false when the id names no step, which signals fallback handling rather
// than an error.
func Lookup(stepID string) (models.StepDefinition, bool) {
	step, ok := steps[stepID]
	return step, ok
}

// Steps returns a copy of the step ids in the graph, for validation in tests.
func Steps() []string {
	ids := make([]string, 0, len(steps))
	for id := range steps {
		ids = append(ids, id)
	}
	return ids
}

var steps = map[string]models.StepDefinition{
	StepWelcome: {
		Message:     "Hello! I'm Sarah, your personal immigration consultant. I'm here to help you navigate U.S. immigration - completely free.",
		NextMessage: "I use the latest USCIS data, updated every hour, to give you the most current guidance. Let's start - what country are you from?",
		InputType:   models.InputTypeSelect,
		Placeholder: "Select your country",
		Options: []models.Option{
			{Text: "India", Value: "from_india"},
			{Text: "China", Value: "from_china"},
			{Text: "Mexico", Value: "from_mexico"},
			{Text: "Canada", Value: "from_canada"},
			{Text: "United Kingdom", Value: "from_uk"},
			{Text: "Germany", Value: "from_germany"},
			{Text: "Philippines", Value: "from_philippines"},
			{Text: "Brazil", Value: "from_brazil"},
			{Text: "Nigeria", Value: "from_nigeria"},
			{Text: "Peru", Value: "from_peru"},
			{Text: "South Korea", Value: "from_south_korea"},
			{Text: "Japan", Value: "from_japan"},
			{Text: "Australia", Value: "from_australia"},
			{Text: "Other country", Value: "from_other"},
		},
	},
	"from_india": {
		Message:  "Perfect! India is one of the largest sources of U.S. immigrants. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	"from_china": {
		Message:  "Great! China has many pathways to U.S. immigration. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	"from_mexico": {
		Message:  "Excellent! Mexico has special programs and pathways. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	"from_canada": {
		Message:  "Wonderful! Canadians have some streamlined processes. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	"from_uk": {
		Message:  "Great choice! UK citizens have various pathways available. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	"from_germany": {
		Message:  "Perfect! Germany has strong ties with U.S. immigration programs. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	"from_philippines": {
		Message:  "Excellent! The Philippines has established immigration pathways. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	"from_brazil": {
		Message:  "Great! Brazil has growing opportunities for U.S. immigration. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	"from_nigeria": {
		Message:  "Perfect! Nigeria has increasing immigration success stories. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	"from_peru": {
		Message:  "Excellent! Peru has good relationships with U.S. immigration programs. What type of visa are you interested in?",
		FollowUp: StepVisaTypes,
	},
	StepFromOther: {
		Message:     "Please tell me which country you're from:",
		InputType:   models.InputTypeText,
		Placeholder: "Enter your country of citizenship...",
		FollowUp:    StepVisaTypes,
	},
	StepVisaTypes: {
		Message:     "Here are the main U.S. visa categories. Which one interests you most?",
		InputType:   models.InputTypeSelect,
		Placeholder: "Select visa type",
		Options: []models.Option{
			{Text: "Work visas (H1B, L1, O1)", Value: "work_visas"},
			{Text: "Student visas (F1, M1)", Value: "student_visas"},
			{Text: "Family-based Green Cards", Value: "family_green_card"},
			{Text: "Employment Green Cards", Value: "employment_green_card"},
			{Text: "Investment visas (EB5)", Value: "investment_visas"},
			{Text: "Tourist/Business (B1/B2)", Value: "tourist_business"},
			{Text: "Other visa types", Value: "other_visas"},
		},
	},
	"work_visas": {
		Message: "Work visas are popular! Let me give you specific guidance based on your background.",
		Options: []models.Option{
			{Text: "I have a job offer", Value: "has_job_offer", Icon: "✅"},
			{Text: "Looking for work", Value: "seeking_job", Icon: "🔍"},
			{Text: "Self-employed/Business", Value: "self_employed", Icon: "🚀"},
			{Text: "Intra-company transfer", Value: "l1_transfer", Icon: "🏢"},
		},
	},
	"student_visas": {
		Message: "Student visas are a great pathway! What's your education goal?",
		Options: []models.Option{
			{Text: "Bachelor's degree", Value: "bachelors_study", Icon: "🎓"},
			{Text: "Master's degree", Value: "masters_study", Icon: "📚"},
			{Text: "PhD/Doctorate", Value: "phd_study", Icon: "🔬"},
			{Text: "Vocational training", Value: "vocational_study", Icon: "🔧"},
		},
	},
	"employment_green_card": {
		Message: "Employment-based Green Cards are excellent for permanent residence! What's your situation?",
		Options: []models.Option{
			{Text: "I have a job offer", Value: "has_job_offer", Icon: "✅"},
			{Text: "Extraordinary ability", Value: "extraordinary_ability", Icon: "⭐"},
			{Text: "Advanced degree", Value: "advanced_degree", Icon: "🎓"},
			{Text: "Skilled worker", Value: "skilled_worker", Icon: "💼"},
		},
	},
	"has_job_offer": {
		Message: "Excellent! Having a job offer gives you strong options. What's your education level?",
		Options: []models.Option{
			{Text: "Bachelor's degree or higher", Value: "bachelors_plus", Icon: "🎓"},
			{Text: "Some college", Value: "some_college", Icon: "📚"},
			{Text: "High school", Value: "high_school", Icon: "🏫"},
		},
	},
	"seeking_job": {
		Message: "I can help you understand what employers look for and visa requirements. What's your field?",
		Options: []models.Option{
			{Text: "Technology/Engineering", Value: "tech_field", Icon: "💻"},
			{Text: "Healthcare/Medicine", Value: "healthcare_field", Icon: "🏥"},
			{Text: "Business/Finance", Value: "business_field", Icon: "💰"},
			{Text: "Research/Academia", Value: "research_field", Icon: "🔬"},
			{Text: "Other field", Value: "other_field", Icon: "💼"},
		},
	},
}
