// Package moderation screens conversation text against a content policy.
// Both user input and model output pass through the gate before they may
// enter the conversation or be shown on the terminal.
package moderation

import (
	"context"
	"log"
)

// Verdict is the outcome of classifying a single text payload. The
// upstream service reports richer category data; only the flagged bit
// crosses this boundary.
type Verdict struct {
	Flagged bool
}

// Classifier asks an external service whether text violates the content
// policy. Implementations make exactly one call per invocation and do not
// retry.
type Classifier interface {
	Classify(ctx context.Context, text string) (Verdict, error)
}

// Gate wraps a Classifier with the fail-open policy: any classification
// failure counts as flagged. An inability to classify is never treated as
// clean content, because an undetected violation reaching the user is worse
// than an unnecessary escalation.
type Gate struct {
	classifier Classifier
}

func NewGate(c Classifier) *Gate {
	return &Gate{classifier: c}
}

// Check classifies text and applies the fail-open policy. This is the only
// place a classification error is converted into a verdict.
func (g *Gate) Check(ctx context.Context, text string) Verdict {
	v, err := g.classifier.Classify(ctx, text)
	if err != nil {
		log.Printf("moderation check failed, treating as flagged: %v", err)
		return Verdict{Flagged: true}
	}
	return v
}
