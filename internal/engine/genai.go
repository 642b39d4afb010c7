package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ae-wizard/worldimmigration/internal/genai"
	"github.com/ae-wizard/worldimmigration/internal/models"
)

const consultantSystemPrompt = "You are Sarah, a friendly U.S. immigration consultant. " +
	"Answer the visitor's question concisely and factually based on current USCIS practice. " +
	"Do not invent case-specific legal advice; recommend a personalized assessment for anything situational."

// GenAIClassifier answers free-text questions with a GenAI client, falling
// back to the deterministic keyword classifier when the client fails. The
// state machine sees the same Classifier contract either way.
type GenAIClassifier struct {
	client   genai.ClientInterface
	fallback Classifier
}

// NewGenAIClassifier wraps a GenAI client with a keyword fallback.
func NewGenAIClassifier(client genai.ClientInterface) *GenAIClassifier {
	return &GenAIClassifier{client: client, fallback: NewKeywordClassifier()}
}

// Classify asks the GenAI client for an answer, giving it the visitor's
// profile as context. Errors degrade to the keyword answer, never to the
// caller.
func (c *GenAIClassifier) Classify(ctx context.Context, question string, profile models.Profile) (string, error) {
	answer, err := c.client.GenerateAnswer(ctx, consultantSystemPrompt, profileContext(profile)+question)
	if err != nil {
		slog.Warn("engine.GenAIClassifier: generation failed, falling back to keywords", "error", err)
		return c.fallback.Classify(ctx, question, profile)
	}
	return answer, nil
}

// profileContext renders the accumulated profile as a short preamble for the
// model.
func profileContext(p models.Profile) string {
	var sb strings.Builder
	sb.WriteString("Visitor context: ")
	if p.Origin != "" {
		sb.WriteString("origin=" + strings.TrimPrefix(p.Origin, "from_") + "; ")
	}
	if p.OriginText != "" {
		sb.WriteString("origin=" + p.OriginText + "; ")
	}
	if p.VisaCategory != "" {
		sb.WriteString("visa interest=" + p.VisaCategory + "; ")
	}
	if p.Situation != "" {
		sb.WriteString("situation=" + p.Situation + "; ")
	}
	if p.Education != "" {
		sb.WriteString("education=" + p.Education + "; ")
	}
	sb.WriteString("\nQuestion: ")
	return sb.String()
}
