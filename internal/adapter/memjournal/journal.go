// Package memjournal implements the journal port as a bounded in-memory
// ring buffer guarded by a single mutex.
package memjournal

import (
	"fmt"
	"sync"

	"github.com/triniti-dev/triniti-backend/internal/domain"
	"github.com/triniti-dev/triniti-backend/internal/domain/task"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 1000

// Journal is a bounded in-memory journal of task records backed by a ring
// buffer, so appends stay O(1) even when eviction kicks in. All methods are
// safe for concurrent use; reads operate on copied snapshots so an in-flight
// eviction can never be observed half-applied.
type Journal struct {
	mu       sync.RWMutex
	records  []task.Record // ring storage, len == capacity
	head     int           // index of the oldest record
	size     int
	capacity int
}

// New creates a journal holding at most capacity records.
func New(capacity int) *Journal {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Journal{
		records:  make([]task.Record, capacity),
		capacity: capacity,
	}
}

// Append stores rec, overwriting the oldest record when the journal is full.
// A record with a negative duration indicates corruption upstream and is
// rejected with domain.ErrJournal.
func (j *Journal) Append(rec task.Record) error {
	if rec.DurationMs < 0 {
		return fmt.Errorf("record %s has negative duration %d: %w", rec.ID, rec.DurationMs, domain.ErrJournal)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.records[(j.head+j.size)%j.capacity] = rec
	if j.size == j.capacity {
		j.head = (j.head + 1) % j.capacity
	} else {
		j.size++
	}
	return nil
}

// at returns the record i positions from the oldest. Callers hold the lock.
func (j *Journal) at(i int) task.Record {
	return j.records[(j.head+i)%j.capacity]
}

// Recent returns the n most recent records, newest first.
func (j *Journal) Recent(n int) []task.Record {
	return j.Page(0, n)
}

// Page returns a slice of the newest-first view. Out-of-range offsets and
// non-positive limits yield an empty slice.
func (j *Journal) Page(offset, limit int) []task.Record {
	j.mu.RLock()
	defer j.mu.RUnlock()

	total := j.size
	if offset < 0 || limit <= 0 || offset >= total {
		return []task.Record{}
	}

	count := limit
	if remaining := total - offset; count > remaining {
		count = remaining
	}

	out := make([]task.Record, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, j.at(total-1-offset-i))
	}
	return out
}

// Snapshot returns a copy of all records in insertion order, oldest first.
func (j *Journal) Snapshot() []task.Record {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]task.Record, 0, j.size)
	for i := 0; i < j.size; i++ {
		out = append(out, j.at(i))
	}
	return out
}

// Size returns the current record count.
func (j *Journal) Size() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.size
}

// Clear atomically empties the journal. Capacity is unchanged. Slots are
// zeroed so evicted result payloads become collectable.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := range j.records {
		j.records[i] = task.Record{}
	}
	j.head, j.size = 0, 0
}
