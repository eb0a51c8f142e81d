package ledger

import (
	"math"
	"strconv"
	"time"

	"tally/internal/model"
)

// Store is the ordered collection of expense records plus the running
// total derived from them. The total is recomputed from a fresh sum
// after every mutation, so it can never drift from the record set.
type Store struct {
	records []model.Record
	total   float64

	now func() time.Time
}

// NewStore builds a store over an initial record set (usually the
// snapshot loaded from the persistence gateway).
func NewStore(initial []model.Record) *Store {
	s := &Store{
		records: append([]model.Record(nil), initial...),
		now:     time.Now,
	}
	s.recompute()
	return s
}

func (s *Store) recompute() {
	var sum float64
	for _, rec := range s.records {
		sum += rec.Amount
	}
	s.total = sum
}

// Total returns the sum of all record amounts.
func (s *Store) Total() float64 {
	return s.total
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns the records in insertion order. Snapshots persist this
// order so a load reproduces the store exactly.
func (s *Store) All() []model.Record {
	return append([]model.Record(nil), s.records...)
}

// Records returns the records most-recent-first for display.
func (s *Store) Records() []model.Record {
	out := make([]model.Record, len(s.records))
	for i, rec := range s.records {
		out[len(s.records)-1-i] = rec
	}
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (model.Record, bool) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return model.Record{}, false
}

// nextID derives a creation-timestamp id, bumping until it is unique.
// Ordering between ids is not guaranteed, uniqueness is.
func (s *Store) nextID() string {
	ms := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if _, taken := s.Get(id); !taken {
			return id
		}
		ms++
	}
}

// invalidAmount reports values no record may hold. NaN and the
// infinities fail ordinary comparisons, so they are checked explicitly;
// a stored NaN would also poison the JSON snapshot encoding.
func invalidAmount(v float64) bool {
	return v <= 0 || math.IsNaN(v) || math.IsInf(v, 0)
}

// Create appends a new record with a fresh id and the current time.
// Zero, negative, and non-finite amounts are rejected; no zero-amount
// record can be created from scratch.
func (s *Store) Create(amount float64, categoryID string) (model.Record, error) {
	if invalidAmount(amount) {
		return model.Record{}, ErrInvalidAmount
	}
	rec := model.Record{
		ID:         s.nextID(),
		Amount:     amount,
		Date:       s.now(),
		CategoryID: categoryID,
	}
	s.records = append(s.records, rec)
	s.recompute()
	return rec, nil
}

// Update mutates the amount and/or category of an existing record; nil
// leaves a field untouched. Date never changes. A zero, negative, or
// non-finite amount is rejected here: deleting via a zero amount is an
// edit-session rule, the store never persists a zero-amount record.
func (s *Store) Update(id string, amount *float64, categoryID *string) (model.Record, error) {
	if amount != nil && invalidAmount(*amount) {
		return model.Record{}, ErrInvalidAmount
	}
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if amount != nil {
			s.records[i].Amount = *amount
		}
		if categoryID != nil {
			s.records[i].CategoryID = *categoryID
		}
		s.recompute()
		return s.records[i], nil
	}
	return model.Record{}, ErrNotFound
}

// Delete removes a record. Unknown ids are a no-op, so deletion is
// idempotent.
func (s *Store) Delete(id string) {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.recompute()
			return
		}
	}
}

// ReassignCategory moves every record in fromID to toID in one step.
// The total is untouched by construction but recomputed anyway to keep
// the invariant mechanical.
func (s *Store) ReassignCategory(fromID, toID string) int {
	n := 0
	for i := range s.records {
		if s.records[i].CategoryID == fromID {
			s.records[i].CategoryID = toID
			n++
		}
	}
	s.recompute()
	return n
}

// DeleteByCategory removes every record referencing the category.
func (s *Store) DeleteByCategory(categoryID string) int {
	kept := s.records[:0]
	n := 0
	for _, rec := range s.records {
		if rec.CategoryID == categoryID {
			n++
			continue
		}
		kept = append(kept, rec)
	}
	s.records = kept
	s.recompute()
	return n
}
