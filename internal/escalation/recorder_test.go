package escalation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakePublisher struct {
	published []string
	err       error
}

func (f *fakePublisher) Publish(filename string) error {
	f.published = append(f.published, filename)
	return f.err
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
}

func TestRecordWritesArtifactAndPublishesOnce(t *testing.T) {
	dir := t.TempDir()
	fp := &fakePublisher{}
	r := NewRecorder(dir, fp)
	r.now = fixedClock

	outcome := r.Record("some disallowed text")
	if outcome != Published {
		t.Fatalf("expected Published, got %v", outcome)
	}
	if len(fp.published) != 1 {
		t.Fatalf("expected exactly one publish attempt, got %d", len(fp.published))
	}

	want := "flagged_event_20240315_103045.txt"
	if fp.published[0] != want {
		t.Fatalf("unexpected artifact name: %s", fp.published[0])
	}

	data, err := os.ReadFile(filepath.Join(dir, want))
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	body := string(data)
	if !strings.HasPrefix(body, "Flagged content detected at 20240315_103045\nOffending text:\n") {
		t.Fatalf("unexpected artifact header: %q", body)
	}
	if !strings.Contains(body, "some disallowed text") {
		t.Fatalf("offending text missing from artifact: %q", body)
	}
}

func TestRecordPublishFailureIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	fp := &fakePublisher{err: fmt.Errorf("remote rejected")}
	r := NewRecorder(dir, fp)
	r.now = fixedClock

	outcome := r.Record("bad text")
	if outcome != PublishFailed {
		t.Fatalf("expected PublishFailed, got %v", outcome)
	}
	// Evidence stays on disk even when delivery fails
	if _, err := os.Stat(filepath.Join(dir, "flagged_event_20240315_103045.txt")); err != nil {
		t.Fatalf("artifact should remain after failed publish: %v", err)
	}
}

func TestRecordArtifactWriteFailureSkipsPublish(t *testing.T) {
	fp := &fakePublisher{}
	r := NewRecorder(filepath.Join(t.TempDir(), "does-not-exist"), fp)
	r.now = fixedClock

	if outcome := r.Record("bad text"); outcome != PublishFailed {
		t.Fatalf("expected PublishFailed, got %v", outcome)
	}
	if len(fp.published) != 0 {
		t.Fatalf("publish must not run when the artifact write fails")
	}
}
