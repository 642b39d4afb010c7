package engine

import (
	"context"
	"strings"

	"github.com/ae-wizard/worldimmigration/internal/models"
)

// Classifier produces an advisory reply for a free-text question. It is a
// strategy so the deterministic keyword matcher can later be swapped for a
// real intent classifier without touching the state machine.
type Classifier interface {
	Classify(ctx context.Context, question string, profile models.Profile) (string, error)
}

// responseCategory is the coarse intent bucket a question falls into.
type responseCategory string

const (
	categoryTimeline  responseCategory = "timeline"
	categoryCost      responseCategory = "cost"
	categoryDocuments responseCategory = "documents"
	categoryPathway   responseCategory = "pathway"
	categoryFallback  responseCategory = "fallback"
)

// categoryKeywords maps each category to the substrings that select it.
// Categories are tried in the order listed in categoryOrder; first match wins.
var categoryKeywords = map[responseCategory][]string{
	categoryTimeline:  {"how long", "timeline", "time"},
	categoryCost:      {"cost", "fee", "money", "expensive"},
	categoryDocuments: {"document", "paperwork", "requirement"},
	categoryPathway:   {"move", "immigrate", "live"},
}

var categoryOrder = []responseCategory{categoryTimeline, categoryCost, categoryDocuments, categoryPathway}

// KeywordClassifier resolves questions by lower-cased substring matching
// against fixed keyword sets. It is deterministic and never errors.
type KeywordClassifier struct{}

// NewKeywordClassifier creates the default classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify picks a response category from the question text, then renders the
// reply from the accumulated profile. Timeline answers additionally depend on
// the most specific visa track found in the profile.
func (c *KeywordClassifier) Classify(_ context.Context, question string, profile models.Profile) (string, error) {
	switch classifyCategory(question) {
	case categoryTimeline:
		return timelineAnswer(profile), nil
	case categoryCost:
		return answerCost, nil
	case categoryDocuments:
		return answerDocuments, nil
	case categoryPathway:
		return answerPathway, nil
	default:
		return answerGeneric, nil
	}
}

// classifyCategory lower-cases the question and returns the first category
// with a matching keyword.
func classifyCategory(question string) responseCategory {
	q := strings.ToLower(question)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(q, kw) {
				return cat
			}
		}
	}
	return categoryFallback
}
