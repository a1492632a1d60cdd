package memjournal

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/triniti-dev/triniti-backend/internal/domain"
	"github.com/triniti-dev/triniti-backend/internal/domain/task"
)

func rec(id string) task.Record {
	return task.Record{ID: id, Task: "task " + id, Success: true}
}

func TestAppendAndSize(t *testing.T) {
	j := New(10)
	if j.Size() != 0 {
		t.Fatalf("expected empty journal, got size %d", j.Size())
	}
	if err := j.Append(rec("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Size() != 1 {
		t.Fatalf("expected size 1, got %d", j.Size())
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	const capacity = 3
	j := New(capacity)
	for i := 0; i < capacity+1; i++ {
		if err := j.Append(rec(fmt.Sprintf("r%d", i))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if j.Size() != capacity {
		t.Fatalf("expected size %d after overflow, got %d", capacity, j.Size())
	}
	for _, r := range j.Recent(capacity) {
		if r.ID == "r0" {
			t.Fatal("oldest record should have been evicted")
		}
	}
}

func TestEvictionWrapsAround(t *testing.T) {
	const capacity = 3
	j := New(capacity)
	// Push far past capacity so the ring wraps several times.
	for i := 0; i < 10; i++ {
		if err := j.Append(rec(fmt.Sprintf("r%d", i))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	snap := j.Snapshot()
	if len(snap) != capacity {
		t.Fatalf("expected %d records, got %d", capacity, len(snap))
	}
	for i, want := range []string{"r7", "r8", "r9"} {
		if snap[i].ID != want {
			t.Fatalf("snapshot[%d] = %s, want %s", i, snap[i].ID, want)
		}
	}

	page := j.Page(0, capacity)
	for i, want := range []string{"r9", "r8", "r7"} {
		if page[i].ID != want {
			t.Fatalf("page[%d] = %s, want %s", i, page[i].ID, want)
		}
	}
}

func TestAppendAfterClearRestartsRing(t *testing.T) {
	j := New(2)
	_ = j.Append(rec("a"))
	_ = j.Append(rec("b"))
	_ = j.Append(rec("c"))
	j.Clear()

	_ = j.Append(rec("d"))
	snap := j.Snapshot()
	if len(snap) != 1 || snap[0].ID != "d" {
		t.Fatalf("expected [d] after clear, got %v", snap)
	}
}

func TestPageNewestFirst(t *testing.T) {
	j := New(10)
	for _, id := range []string{"a", "b", "c"} {
		if err := j.Append(rec(id)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	page := j.Page(0, 2)
	if len(page) != 2 {
		t.Fatalf("expected 2 records, got %d", len(page))
	}
	if page[0].ID != "c" || page[1].ID != "b" {
		t.Fatalf("expected [c b], got [%s %s]", page[0].ID, page[1].ID)
	}

	// Offset walks backwards through history.
	page = j.Page(1, 2)
	if len(page) != 2 || page[0].ID != "b" || page[1].ID != "a" {
		t.Fatalf("expected [b a] at offset 1, got %v", page)
	}
}

func TestPageOutOfRange(t *testing.T) {
	j := New(10)
	_ = j.Append(rec("a"))

	if got := j.Page(5, 10); len(got) != 0 {
		t.Fatalf("expected empty page for out-of-range offset, got %d records", len(got))
	}
	if got := j.Page(0, 0); len(got) != 0 {
		t.Fatalf("expected empty page for zero limit, got %d records", len(got))
	}
}

func TestRecentEqualsFirstPage(t *testing.T) {
	j := New(10)
	for _, id := range []string{"a", "b", "c"} {
		_ = j.Append(rec(id))
	}
	recent := j.Recent(2)
	page := j.Page(0, 2)
	if len(recent) != len(page) || recent[0].ID != page[0].ID || recent[1].ID != page[1].ID {
		t.Fatalf("Recent(2) = %v, Page(0,2) = %v; expected them equal", recent, page)
	}
}

func TestSnapshotInsertionOrder(t *testing.T) {
	j := New(10)
	for _, id := range []string{"a", "b", "c"} {
		_ = j.Append(rec(id))
	}
	snap := j.Snapshot()
	if len(snap) != 3 || snap[0].ID != "a" || snap[2].ID != "c" {
		t.Fatalf("expected snapshot [a b c], got %v", snap)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	j := New(10)
	_ = j.Append(rec("a"))

	j.Clear()
	if j.Size() != 0 {
		t.Fatalf("expected size 0 after clear, got %d", j.Size())
	}
	j.Clear()
	if j.Size() != 0 {
		t.Fatalf("expected size 0 after second clear, got %d", j.Size())
	}
}

func TestAppendRejectsNegativeDuration(t *testing.T) {
	j := New(10)
	err := j.Append(task.Record{ID: "bad", DurationMs: -1})
	if !errors.Is(err, domain.ErrJournal) {
		t.Fatalf("expected ErrJournal, got: %v", err)
	}
	if j.Size() != 0 {
		t.Fatal("rejected record must not be stored")
	}
}

func TestConcurrentAppends(t *testing.T) {
	const n = 100
	const capacity = 40
	j := New(capacity)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := j.Append(rec(fmt.Sprintf("r%d", i))); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if j.Size() != capacity {
		t.Fatalf("expected size %d after %d concurrent appends, got %d", capacity, n, j.Size())
	}

	seen := map[string]bool{}
	for _, r := range j.Snapshot() {
		if seen[r.ID] {
			t.Fatalf("record %s duplicated", r.ID)
		}
		seen[r.ID] = true
	}
}
