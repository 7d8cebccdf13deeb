package moderation

import (
	"context"
	"fmt"
	"testing"
)

type fakeClassifier struct {
	verdict Verdict
	err     error
	calls   int
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) (Verdict, error) {
	f.calls++
	return f.verdict, f.err
}

func TestGatePassesVerdictThrough(t *testing.T) {
	fc := &fakeClassifier{verdict: Verdict{Flagged: false}}
	g := NewGate(fc)
	if v := g.Check(context.Background(), "hello"); v.Flagged {
		t.Fatalf("clean verdict mangled: %+v", v)
	}

	fc = &fakeClassifier{verdict: Verdict{Flagged: true}}
	g = NewGate(fc)
	if v := g.Check(context.Background(), "bad"); !v.Flagged {
		t.Fatalf("flagged verdict mangled: %+v", v)
	}
}

func TestGateFailsOpenOnClassifierError(t *testing.T) {
	fc := &fakeClassifier{err: fmt.Errorf("connection refused")}
	g := NewGate(fc)
	v := g.Check(context.Background(), "anything")
	if !v.Flagged {
		t.Fatalf("classifier error must yield flagged, got %+v", v)
	}
	if fc.calls != 1 {
		t.Fatalf("expected exactly one classify call, got %d", fc.calls)
	}
}
