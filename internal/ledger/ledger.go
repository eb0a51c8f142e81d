// Package ledger implements the expense-tracking core: amount entry,
// the category registry, the record store with its derived total, and
// the edit session that ties them together. All mutation funnels
// through the Ledger controller; there is no ambient state.
package ledger

import (
	"github.com/sirupsen/logrus"

	"tally/internal/model"
)

// Ledger owns the whole state-transition core. Every user action maps
// to one synchronous method call; each call completes fully (including
// the fire-and-forget snapshot write) before the next is accepted.
type Ledger struct {
	store    *Store
	registry *Registry
	entry    *AmountEntry
	sess     session

	gw  Gateway
	log *logrus.Logger
}

// View is the full snapshot handed to presentation layers after any
// mutation. Nothing else crosses that boundary.
type View struct {
	Categories []model.Category
	Records    []model.Record
	Total      float64
	Buffer     string
	State      SessionState
	EditingID  string // id of the record being edited, empty otherwise
	Pending    float64
}

// New builds a ledger over the given gateway, loading the persisted
// snapshots. A failed or missing load yields an empty record set and
// the default categories.
func New(gw Gateway, log *logrus.Logger) *Ledger {
	if log == nil {
		log = logrus.New()
	}
	if gw == nil {
		gw = nopGateway{}
	}
	l := &Ledger{gw: gw, log: log, entry: NewAmountEntry()}
	l.store = NewStore(l.loadRecords())
	l.registry = NewRegistry(l.loadCategories())
	return l
}

// View returns the current presentation snapshot.
func (l *Ledger) View() View {
	return View{
		Categories: l.registry.List(),
		Records:    l.store.Records(),
		Total:      l.store.Total(),
		Buffer:     l.entry.String(),
		State:      l.sess.state,
		EditingID:  l.editingID(),
		Pending:    l.sess.pending,
	}
}

func (l *Ledger) editingID() string {
	if l.sess.editing {
		return l.sess.targetID
	}
	return ""
}

// Total returns the running total.
func (l *Ledger) Total() float64 { return l.store.Total() }

// Records returns the records most-recent-first.
func (l *Ledger) Records() []model.Record { return l.store.Records() }

// Record returns one record by id.
func (l *Ledger) Record(id string) (model.Record, bool) { return l.store.Get(id) }

// Categories returns the categories in display order.
func (l *Ledger) Categories() []model.Category { return l.registry.List() }

// Category returns one category by id.
func (l *Ledger) Category(id string) (model.Category, bool) { return l.registry.Get(id) }

// Buffer returns the current amount-entry text.
func (l *Ledger) Buffer() string { return l.entry.String() }

// State returns the current session state.
func (l *Ledger) State() SessionState { return l.sess.state }

// EditingID returns the id of the record being edited, if any.
func (l *Ledger) EditingID() (string, bool) {
	return l.editingID(), l.sess.editing
}

// Input feeds one keypad token into the amount buffer. Ignored while a
// category pick is pending.
func (l *Ledger) Input(r rune) {
	if l.sess.state == StateSelecting {
		return
	}
	l.entry.Input(r)
	l.sess.touch()
}

// Backspace removes the last buffer character. Ignored while a category
// pick is pending.
func (l *Ledger) Backspace() {
	if l.sess.state == StateSelecting {
		return
	}
	l.entry.Backspace()
	l.sess.touch()
}

// Clear abandons the buffer and any pending entry or edit wholesale.
func (l *Ledger) Clear() {
	l.entry.Clear()
	l.sess.reset()
}

// ConfirmAmount parses the buffer and moves to category selection. An
// unparseable buffer is rejected and nothing changes. A zero amount is
// allowed through here: during an edit it means delete, and the
// new-record path rejects it at commit.
func (l *Ledger) ConfirmAmount() error {
	if l.sess.state == StateSelecting {
		return nil
	}
	v, err := l.entry.Confirm()
	if err != nil {
		return err
	}
	l.sess.beginSelect(v)
	return nil
}

// StartEdit begins editing an existing record: the buffer is seeded
// with its current amount and the session remembers the target.
func (l *Ledger) StartEdit(recordID string) error {
	rec, ok := l.store.Get(recordID)
	if !ok {
		return ErrNotFound
	}
	l.entry.Set(FormatAmount(rec.Amount))
	l.sess.reset()
	l.sess.editing = true
	l.sess.targetID = rec.ID
	l.sess.originalAmount = rec.Amount
	l.sess.state = StateEntering
	return nil
}

// CancelSelection abandons the pending entry. The buffer returns to "0"
// for a new record, or to the original amount text when an edit was in
// progress.
func (l *Ledger) CancelSelection() {
	if l.sess.editing {
		l.entry.Set(FormatAmount(l.sess.originalAmount))
	} else {
		l.entry.Clear()
	}
	l.sess.reset()
}

// CommitCategory finishes the pending entry against the picked
// category. On the new-record path a zero amount is rejected and the
// entry resets; on the edit path a zero amount deletes the target
// record. Either way the session ends idle with the buffer at "0".
func (l *Ledger) CommitCategory(categoryID string) error {
	if l.sess.state != StateSelecting {
		return nil
	}
	if !l.registry.Has(categoryID) {
		return ErrNotFound
	}

	pending := l.sess.pending
	editing, targetID := l.sess.editing, l.sess.targetID
	l.entry.Clear()
	l.sess.reset()

	if editing {
		if pending == 0 {
			l.store.Delete(targetID)
		} else if _, err := l.store.Update(targetID, &pending, &categoryID); err != nil {
			// The target vanished between edit start and commit; absorb it
			// like any other delete/update of a missing record.
			l.log.WithField("record", targetID).Debug("edit target no longer exists")
			return nil
		}
		l.saveRecords()
		return nil
	}

	if pending == 0 {
		return ErrInvalidAmount
	}
	if _, err := l.store.Create(pending, categoryID); err != nil {
		return err
	}
	l.saveRecords()
	return nil
}

// AddExpense records a new expense directly, outside the keypad flow.
func (l *Ledger) AddExpense(amount float64, categoryID string) (model.Record, error) {
	if !l.registry.Has(categoryID) {
		return model.Record{}, ErrNotFound
	}
	rec, err := l.store.Create(amount, categoryID)
	if err != nil {
		return model.Record{}, err
	}
	l.saveRecords()
	return rec, nil
}

// EditRecord mutates a record directly. A nil field is left untouched.
// An explicit zero amount deletes the record instead of persisting a
// zero; the returned bool reports that case.
func (l *Ledger) EditRecord(id string, amount *float64, categoryID *string) (model.Record, bool, error) {
	if categoryID != nil && !l.registry.Has(*categoryID) {
		return model.Record{}, false, ErrNotFound
	}
	if amount != nil && *amount == 0 {
		rec, ok := l.store.Get(id)
		if !ok {
			return model.Record{}, false, ErrNotFound
		}
		l.store.Delete(id)
		l.saveRecords()
		return rec, true, nil
	}
	rec, err := l.store.Update(id, amount, categoryID)
	if err != nil {
		return model.Record{}, false, err
	}
	l.saveRecords()
	return rec, false, nil
}

// DeleteRecord removes a record. Unknown ids are silently absorbed.
func (l *Ledger) DeleteRecord(id string) {
	l.store.Delete(id)
	l.saveRecords()
}

// AddCategory registers a new category.
func (l *Ledger) AddCategory(c model.Category) error {
	if err := l.registry.Add(c); err != nil {
		return err
	}
	l.saveCategories()
	return nil
}

// UpdateCategory edits an existing category's display metadata. The id
// only identifies the target.
func (l *Ledger) UpdateCategory(c model.Category) error {
	if err := l.registry.Update(c); err != nil {
		return err
	}
	l.saveCategories()
	return nil
}

// RemoveCategory deletes a category and resolves its records in the
// same action: cascade deletes them, otherwise they are reassigned to
// the fallback category. The fallback category itself is protected.
func (l *Ledger) RemoveCategory(id string, cascade bool) error {
	if err := l.registry.Remove(id); err != nil {
		return err
	}
	if cascade {
		l.store.DeleteByCategory(id)
	} else {
		l.store.ReassignCategory(id, model.FallbackCategoryID)
	}
	l.saveCategories()
	l.saveRecords()
	return nil
}
