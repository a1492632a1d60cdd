// Package journal defines the port for the bounded task execution journal.
package journal

import "github.com/triniti-dev/triniti-backend/internal/domain/task"

// Journal is a bounded, append-only-with-eviction store of task records.
// Appending past capacity evicts the oldest record; eviction is normal
// operation, not an error.
//
// The paged view is newest-first: Page(0, n) returns the n most recent
// records, most recent first, and Recent(n) is shorthand for it. Out-of-range
// offsets yield an empty slice.
type Journal interface {
	// Append stores a record, evicting the oldest one at capacity.
	Append(rec task.Record) error

	// Recent returns the n most recent records, newest first.
	Recent(n int) []task.Record

	// Page returns a slice of the newest-first view.
	Page(offset, limit int) []task.Record

	// Snapshot returns a copy of all records in insertion order,
	// oldest first.
	Snapshot() []task.Record

	// Size returns the current record count.
	Size() int

	// Clear atomically empties the journal.
	Clear()
}
