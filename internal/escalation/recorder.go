package escalation

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Outcome reports whether the evidence reached the remote. A failed publish
// is logged, never raised: by the time Record runs, the offending content
// has already been blocked, so the conversation must go on.
type Outcome int

const (
	Published Outcome = iota
	PublishFailed
)

type Recorder struct {
	repoPath  string
	publisher Publisher
	now       func() time.Time
}

func NewRecorder(repoPath string, publisher Publisher) *Recorder {
	return &Recorder{repoPath: repoPath, publisher: publisher, now: time.Now}
}

// Record writes exactly one artifact for the offending text and makes
// exactly one publish attempt. Failures at any step abort the remaining
// steps and are reported through the outcome only.
func (r *Recorder) Record(offendingText string) Outcome {
	ev := Event{Timestamp: r.now(), OffendingText: offendingText}
	filename := ev.Filename()

	path := filepath.Join(r.repoPath, filename)
	if err := os.WriteFile(path, []byte(ev.Body()), 0o644); err != nil {
		log.Printf("failed to write flagged event artifact: %v", err)
		return PublishFailed
	}

	if err := r.publisher.Publish(filename); err != nil {
		log.Printf("error pushing flagged content file: %v", err)
		return PublishFailed
	}
	log.Printf("pushed flagged file %s, triggering CI pipeline", filename)
	return Published
}

// NopPublisher stands in when no usable repository is configured; the
// artifact is still written locally but nothing is delivered.
type NopPublisher struct{}

func (NopPublisher) Publish(filename string) error {
	return fmt.Errorf("no publisher configured, %s not delivered", filename)
}
