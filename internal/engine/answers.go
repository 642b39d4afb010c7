package engine

import "github.com/ae-wizard/worldimmigration/internal/models"

// Canned advisory answers. These are the deterministic reply bodies the
// keyword classifier and the personalized responder draw from.

const answerTimelineFamily = "Family-based Green Card processing times vary significantly:\n\n• **Immediate relatives** (spouse, unmarried children under 21, parents of US citizens): 8-12 months\n• **F1 category** (unmarried adult children of US citizens): 1-2 years\n• **F2A** (spouses/children of permanent residents): 2-3 years\n• **F3/F4** (siblings, married children): 10-20+ years\n\nProcessing also depends on your country - some countries have longer waits due to per-country limits."

const answerTimelineWork = "Work visa processing times:\n\n• **H1B**: 3-8 months (faster with premium processing)\n• **L1**: 2-4 months\n• **O1**: 2-3 months\n• **TN** (for Canadians/Mexicans): Same day at border\n\nEmployer petition filing + consular processing if outside US adds 2-3 months."

const answerTimelineStudent = "Student visa processing:\n\n• **F1 visa application**: 2-8 weeks\n• **I-20 processing** by school: 2-4 weeks\n• **Consular interview**: 1-4 weeks wait time\n\nTotal timeline: 2-4 months from application to arrival in US."

const answerTimelineGeneric = "Processing times depend on your specific visa type:\n\n• **Tourist visas**: 2-4 weeks\n• **Work visas**: 3-8 months\n• **Student visas**: 2-4 months\n• **Family Green Cards**: 8 months to 20+ years\n• **Employment Green Cards**: 1-5+ years\n\nI'd be happy to give you specific timelines once you share your visa goals!"

const answerCost = "Immigration costs vary by visa type:\n\n**Work Visas:**\n• H1B: $2,000-$5,000 (employer pays most)\n• L1: $1,500-$3,000\n\n**Family Green Cards:**\n• $1,760 USCIS fees + $325 consular fees\n• Plus medical exam ($200-$500)\n\n**Student Visas:**\n• $160 visa fee + $350 SEVIS fee\n• Plus school costs\n\nAttorney fees typically add $2,000-$8,000 depending on complexity."

const answerDocuments = "Required documents typically include:\n\n**All visa types:**\n• Valid passport\n• Photos\n• Form DS-160 or equivalent\n• Financial support evidence\n\n**Work visas:** Employment letter, educational credentials\n**Family visas:** Marriage/birth certificates, sponsor's documents\n**Student visas:** I-20, acceptance letter, transcripts\n\nI can provide a specific checklist once you tell me your visa type!"

const answerPathway = "To move to the US permanently, your main options are:\n\n**1. Family-based Green Card** (if you have US citizen/resident relatives)\n**2. Employment-based Green Card** (through job offer)\n**3. Investment visa** (EB-5, $800K+ investment)\n**4. Diversity visa lottery** (if your country qualifies)\n\nMost people start with a temporary visa (work/student) then transition to permanent residence. What's your current situation?"

const answerGeneric = "That's a great question! Based on your interest in US immigration, here are some key points:\n\n• The path depends on your specific situation and goals\n• Most successful cases involve careful planning and proper documentation\n• Timeline and costs vary significantly by visa type\n• Having the right legal guidance makes a huge difference\n\nFor the most accurate advice, I'd recommend getting a personalized assessment based on your specific circumstances."

// timelineAnswer selects the timeline reply for the most specific visa track
// in the profile.
func timelineAnswer(p models.Profile) string {
	switch p.Track() {
	case models.VisaTrackFamily:
		return answerTimelineFamily
	case models.VisaTrackWork:
		return answerTimelineWork
	case models.VisaTrackStudent:
		return answerTimelineStudent
	default:
		return answerTimelineGeneric
	}
}
