// Package escalation records flagged conversation content and notifies an
// external CI pipeline by pushing an evidence artifact to a shared
// repository. Delivery is best-effort: there is no feedback loop confirming
// the pipeline acted on the artifact.
package escalation

import (
	"fmt"
	"time"
)

const stampLayout = "20060102_150405"

// Event captures one flagged moderation verdict. It is serialized once and
// never mutated afterward.
type Event struct {
	Timestamp     time.Time
	OffendingText string
}

// Filename derives the artifact name from the event timestamp. One event
// per conversation turn keeps second granularity collision-free.
func (e Event) Filename() string {
	return fmt.Sprintf("flagged_event_%s.txt", e.Timestamp.Format(stampLayout))
}

// Body renders the artifact content: a fixed header with the timestamp
// followed by the offending text verbatim.
func (e Event) Body() string {
	return fmt.Sprintf("Flagged content detected at %s\nOffending text:\n%s\n",
		e.Timestamp.Format(stampLayout), e.OffendingText)
}
