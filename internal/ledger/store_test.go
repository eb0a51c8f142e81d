package ledger

import (
	"errors"
	"math"
	"testing"
	"time"
)

// checkTotal asserts the derived total matches a fresh summation to
// within display-rounding tolerance.
func checkTotal(t *testing.T, s *Store) {
	t.Helper()
	var sum float64
	for _, rec := range s.All() {
		sum += rec.Amount
	}
	if math.Abs(s.Total()-sum) > 1e-9 {
		t.Fatalf("Total() = %v, fresh sum = %v", s.Total(), sum)
	}
}

func TestStoreCreate(t *testing.T) {
	s := NewStore(nil)

	rec, err := s.Create(12.50, "food")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.ID == "" || rec.Date.IsZero() {
		t.Fatalf("Create() returned incomplete record: %+v", rec)
	}
	checkTotal(t, s)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := s.Create(bad, "food"); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("Create(%v) error = %v, want %v", bad, err, ErrInvalidAmount)
		}
	}
	if s.Len() != 1 {
		t.Fatalf("rejected creates mutated the store, len = %d", s.Len())
	}
}

func TestStoreIDsUnique(t *testing.T) {
	s := NewStore(nil)
	// Freeze the clock so every id would collide without the bump.
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		rec, err := s.Create(1, "food")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if seen[rec.ID] {
			t.Fatalf("duplicate record id %q", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore(nil)
	rec, _ := s.Create(10, "food")

	amount := 25.25
	category := "daily"
	got, err := s.Update(rec.ID, &amount, &category)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Amount != 25.25 || got.CategoryID != "daily" {
		t.Fatalf("Update() = %+v", got)
	}
	if !got.Date.Equal(rec.Date) {
		t.Fatalf("Update() changed the date: %v -> %v", rec.Date, got.Date)
	}
	checkTotal(t, s)

	// Partial update leaves the other field alone.
	newCat := "food"
	got, err = s.Update(rec.ID, nil, &newCat)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Amount != 25.25 {
		t.Fatalf("category-only update changed amount to %v", got.Amount)
	}

	for _, bad := range []float64{0, math.NaN(), math.Inf(1)} {
		if _, err := s.Update(rec.ID, &bad, nil); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("Update(%v) error = %v, want %v", bad, err, ErrInvalidAmount)
		}
	}
	if _, err := s.Update("missing", &amount, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id error = %v, want %v", err, ErrNotFound)
	}
}

func TestStoreDeleteIdempotent(t *testing.T) {
	s := NewStore(nil)
	rec, _ := s.Create(5, "food")

	s.Delete(rec.ID)
	if s.Len() != 0 {
		t.Fatalf("len = %d after delete, want 0", s.Len())
	}
	checkTotal(t, s)

	// Unknown id is a silent no-op.
	s.Delete(rec.ID)
	s.Delete("never-existed")
	checkTotal(t, s)
}

func TestStoreTotalInvariantAcrossSequence(t *testing.T) {
	s := NewStore(nil)

	r1, _ := s.Create(12.50, "food")
	checkTotal(t, s)
	s.Create(7.25, "daily")
	checkTotal(t, s)
	s.Create(0.10, "daily")
	checkTotal(t, s)

	amount := 99.99
	if _, err := s.Update(r1.ID, &amount, nil); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	checkTotal(t, s)

	s.Delete(r1.ID)
	checkTotal(t, s)
}

func TestStoreReassignCategory(t *testing.T) {
	s := NewStore(nil)
	s.Create(1, "daily")
	s.Create(2, "food")
	s.Create(3, "daily")
	before := s.Total()

	n := s.ReassignCategory("daily", "others")
	if n != 2 {
		t.Fatalf("ReassignCategory moved %d records, want 2", n)
	}
	for _, rec := range s.All() {
		if rec.CategoryID == "daily" {
			t.Fatalf("record %s still in daily", rec.ID)
		}
	}
	if s.Total() != before {
		t.Fatalf("reassignment changed total: %v -> %v", before, s.Total())
	}
	checkTotal(t, s)
}

func TestStoreDeleteByCategory(t *testing.T) {
	s := NewStore(nil)
	s.Create(1, "daily")
	s.Create(2, "food")
	s.Create(3, "daily")

	n := s.DeleteByCategory("daily")
	if n != 2 {
		t.Fatalf("DeleteByCategory removed %d records, want 2", n)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if s.Total() != 2 {
		t.Fatalf("Total() = %v, want 2", s.Total())
	}
	checkTotal(t, s)
}

func TestStoreRecordsMostRecentFirst(t *testing.T) {
	s := NewStore(nil)
	first, _ := s.Create(1, "food")
	second, _ := s.Create(2, "food")

	recs := s.Records()
	if recs[0].ID != second.ID || recs[1].ID != first.ID {
		t.Fatalf("Records() order = [%s %s], want newest first", recs[0].ID, recs[1].ID)
	}

	// All() keeps insertion order for snapshots.
	all := s.All()
	if all[0].ID != first.ID {
		t.Fatalf("All() order = [%s ...], want insertion order", all[0].ID)
	}
}
