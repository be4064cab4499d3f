// ABOUTME: Per-run counters for entity sync batches
// ABOUTME: Surfaces inserted/skipped/failed detail through logs
package sync

import "fmt"

// Stats tracks the outcome of one entity sync batch. A failed record does not
// abort the batch; it only shows up here and in the logs.
type Stats struct {
	Inserted int
	Skipped  int
	Failed   int
}

func (s Stats) String() string {
	return fmt.Sprintf("inserted=%d skipped=%d failed=%d", s.Inserted, s.Skipped, s.Failed)
}
