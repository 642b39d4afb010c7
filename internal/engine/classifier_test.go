package engine

import (
	"context"
	"testing"

	"github.com/ae-wizard/worldimmigration/internal/models"
)

func TestClassifyCategory(t *testing.T) {
	cases := []struct {
		question string
		want     responseCategory
	}{
		{"How long does the process take?", categoryTimeline},
		{"what's the TIMELINE here", categoryTimeline},
		{"How much does it cost?", categoryCost},
		{"are the fees expensive", categoryCost},
		{"What documents do I need?", categoryDocuments},
		{"paperwork requirements", categoryDocuments},
		{"I want to move to the US", categoryPathway},
		{"can I immigrate permanently", categoryPathway},
		{"tell me about sponsorship", categoryFallback},
		{"", categoryFallback},
	}
	for _, tc := range cases {
		if got := classifyCategory(tc.question); got != tc.want {
			t.Errorf("classifyCategory(%q) = %q, want %q", tc.question, got, tc.want)
		}
	}
}

func TestKeywordClassifier_Answers(t *testing.T) {
	c := NewKeywordClassifier()
	ctx := context.Background()

	got, err := c.Classify(ctx, "how much money will this cost?", models.Profile{})
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if got != answerCost {
		t.Errorf("cost question should yield the cost answer, got %q", got)
	}

	got, _ = c.Classify(ctx, "which documents are required?", models.Profile{})
	if got != answerDocuments {
		t.Errorf("documents question should yield the documents answer, got %q", got)
	}

	got, _ = c.Classify(ctx, "I want to live in America", models.Profile{})
	if got != answerPathway {
		t.Errorf("pathway question should yield the pathway answer, got %q", got)
	}

	got, _ = c.Classify(ctx, "what about sponsorship?", models.Profile{})
	if got != answerGeneric {
		t.Errorf("unmatched question should yield the generic answer, got %q", got)
	}
}

func TestKeywordClassifier_TimelineByTrack(t *testing.T) {
	c := NewKeywordClassifier()
	ctx := context.Background()

	var family models.Profile
	family.Record("visa_types", "family_green_card")
	got, _ := c.Classify(ctx, "how long will it take?", family)
	if got != answerTimelineFamily {
		t.Errorf("family profile should yield family timeline, got %q", got)
	}

	var work models.Profile
	work.Record("visa_types", "work_visas")
	got, _ = c.Classify(ctx, "how long will it take?", work)
	if got != answerTimelineWork {
		t.Errorf("work profile should yield work timeline, got %q", got)
	}

	var student models.Profile
	student.Record("visa_types", "student_visas")
	got, _ = c.Classify(ctx, "how long will it take?", student)
	if got != answerTimelineStudent {
		t.Errorf("student profile should yield student timeline, got %q", got)
	}

	got, _ = c.Classify(ctx, "how long will it take?", models.Profile{})
	if got != answerTimelineGeneric {
		t.Errorf("trackless profile should yield generic timeline, got %q", got)
	}
}

func TestKeywordClassifier_TimelinePrecedence(t *testing.T) {
	// A visitor who explored both work and family tracks gets the family
	// answer: family-based beats work, work beats student.
	var p models.Profile
	p.Record("visa_types", "work_visas")
	p.Record("visa_types", "family_green_card")

	c := NewKeywordClassifier()
	got, err := c.Classify(context.Background(), "how long does this take?", p)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if got != answerTimelineFamily {
		t.Errorf("family should win over work in timeline selection, got %q", got)
	}
}

func TestTimelineAnswer_StudentAndWork(t *testing.T) {
	var p models.Profile
	p.Record("visa_types", "student_visas")
	p.Record("visa_types", "work_visas")
	if got := timelineAnswer(p); got != answerTimelineWork {
		t.Errorf("work should win over student, got %q", got)
	}
}
