package engine

import (
	"log/slog"

	"github.com/ae-wizard/worldimmigration/internal/models"
)

// respond synthesizes a reply for a submitted value that names no graph step.
// These are the advisory-phase branches: enumerating them combinatorially in
// the static graph would blow up, so they key off the accumulated profile
// instead. Every branch ends in a reopened gate or the handoff; unrecognized
// values get the generic fallback menu, so the conversation never deadlocks.
func (s *Session) respond(value string) {
	slog.Debug("engine.respond: personalized response", "sessionID", s.id, "value", value)
	switch value {
	case "bachelors_plus":
		s.say("Perfect! With a bachelor's degree and a job offer, you're well-positioned for an H1B visa. The process typically takes 6-8 months.")
		if !s.compose(followUpPause) {
			return
		}
		s.say("Key steps: 1) Employer files H1B petition 2) Wait for approval 3) Apply for visa at consulate. Would you like me to explain any of these steps in detail?")
		if !s.compose(optionsPause) {
			return
		}
		s.sayOptions([]models.Option{
			{Text: "Explain the H1B process", Value: "h1b_process", Icon: "📋"},
			{Text: "Timeline and costs", Value: "h1b_timeline", Icon: "⏰"},
			{Text: "Get my personalized plan", Value: "get_assessment", Icon: "📋"},
		}, "", "")
		s.openChoiceGate()

	case "tech_field":
		s.say("Technology professionals have excellent opportunities! With current demand for tech talent, you have several visa paths.")
		if !s.compose(followUpPause) {
			return
		}
		s.say("Your best options are likely H1B for specialty positions or L1 if transferring from an overseas office. What specific role is your job offer for?")
		s.openTextGate("Describe your job role (e.g., Software Engineer, Data Scientist)...")

	case "work_to_green_card":
		s.say("Excellent goal! The path from work visa to Green Card typically involves your employer sponsoring you for permanent residence.")
		if !s.compose(followUpPause) {
			return
		}
		s.say("This usually takes 1-3 years depending on your country of birth and the specific process. What type of work visa do you currently have?")
		s.openTextGate("e.g., H1B, L1, O1, etc.")

	case "extend_work_visa":
		s.say("Work visa extensions are common and usually straightforward if you meet the requirements.")
		if !s.compose(followUpPause) {
			return
		}
		s.say("The process varies by visa type. What work visa are you currently on?")
		s.openTextGate("e.g., H1B, L1, O1, etc.")

	case "citizenship":
		s.say("That's exciting! To apply for U.S. citizenship, you generally need to have been a permanent resident for at least 5 years (or 3 years if married to a U.S. citizen).")
		if !s.compose(followUpPause) {
			return
		}
		s.say("How long have you had your Green Card?")
		s.openTextGate("e.g., 2 years, 5 years, etc.")

	case "student_to_h1b":
		s.say("Great choice! The F-1 to H1B path is very common. You'll typically use OPT first, then your employer can sponsor you for H1B.")
		if !s.compose(followUpPause) {
			return
		}
		s.say("Do you have a job offer or are you still looking?")
		if !s.compose(optionsPause) {
			return
		}
		s.sayOptions([]models.Option{
			{Text: "I have a job offer", Value: "has_job_offer", Icon: "✅"},
			{Text: "Still looking for work", Value: "seeking_job", Icon: "🔍"},
			{Text: "Currently on OPT", Value: "on_opt", Icon: "💼"},
		}, "", "")
		s.openChoiceGate()

	case "free_questions":
		s.say("Great! I'm here to answer any immigration questions you have. What would you like to know?")
		s.openTextGate("Ask me anything about immigration...")

	case "h1b_process":
		s.say("The H1B process has 3 main phases:")
		if !s.compose(textReplyPause) {
			return
		}
		s.say("1. **Employer files petition** (March-April) - Your employer submits Form I-129 with supporting documents")
		if !s.compose(processStepPause) {
			return
		}
		s.say("2. **USCIS processing** (April-September) - Wait for petition approval, premium processing available for faster results")
		if !s.compose(processStepPause) {
			return
		}
		s.say("3. **Visa application** (After approval) - Apply at U.S. consulate in your country")
		if !s.compose(replyPause) {
			return
		}
		s.sayOptions([]models.Option{
			{Text: "What documents do I need?", Value: "h1b_documents", Icon: "📄"},
			{Text: "How much does it cost?", Value: "h1b_timeline", Icon: "💰"},
			{Text: "Get my personalized plan", Value: "get_assessment", Icon: "📋"},
		}, "", "")
		s.openChoiceGate()

	case "h1b_timeline":
		s.say(answerCost)
		if !s.compose(textReplyPause) {
			return
		}
		s.sayMenu("Anything else I can clarify?", []models.Option{
			{Text: "What documents do I need?", Value: "h1b_documents", Icon: "📄"},
			{Text: "I have other questions", Value: "free_questions", Icon: "❓"},
			{Text: "Get my personalized plan", Value: "get_assessment", Icon: "📋"},
		})
		s.openChoiceGate()

	case "h1b_documents":
		s.say(answerDocuments)
		if !s.compose(textReplyPause) {
			return
		}
		s.sayMenu("Anything else I can clarify?", []models.Option{
			{Text: "How much does it cost?", Value: "h1b_timeline", Icon: "💰"},
			{Text: "I have other questions", Value: "free_questions", Icon: "❓"},
			{Text: "Get my personalized plan", Value: "get_assessment", Icon: "📋"},
		})
		s.openChoiceGate()

	case "get_assessment":
		s.say("I'd love to prepare a detailed assessment for you! To provide the most accurate guidance, I'll need to connect you with our assessment team.")
		if !s.compose(followUpPause) {
			return
		}
		s.say("This will give you a personalized roadmap with timelines, costs, and next steps specific to your situation.")
		if !s.wait(handoffPause) {
			return
		}
		s.requestHandoff()

	default:
		s.say("Thank you for that information! Let me provide you with some guidance based on your situation.")
		if !s.compose(followUpPause) {
			return
		}
		s.say("Every immigration case is unique. I'd recommend getting a personalized assessment to give you the most accurate guidance for your specific situation.")
		if !s.compose(optionsPause) {
			return
		}
		s.sayOptions([]models.Option{
			{Text: "Get personalized assessment", Value: "get_assessment", Icon: "📋"},
			{Text: "I have more questions", Value: "free_questions", Icon: "❓"},
		}, "", "")
		s.openChoiceGate()
	}
}
