package tui

import (
	"testing"

	"tally/internal/config"
	"tally/internal/ledger"
	"tally/internal/model"
)

func pressLedger(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.updateLedgerTab(k)
		a = m.(App)
	}
	return a
}

func TestFilterRecords(t *testing.T) {
	cats := []model.Category{
		{ID: "food", Name: "Food"},
		{ID: "transport", Name: "Transport"},
	}
	records := []model.Record{
		{ID: "1", Amount: 12.5, CategoryID: "food"},
		{ID: "2", Amount: 40, CategoryID: "transport"},
		{ID: "3", Amount: 3.75, CategoryID: "food"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query keeps all", "", []string{"1", "2", "3"}},
		{"category id", "trans", []string{"2"}},
		{"category name case-insensitive", "FOOD", []string{"1", "3"}},
		{"amount text", "12.5", []string{"1"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterRecords(records, cats, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("filterRecords(%q) returned %d records, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, rec := range got {
				if rec.ID != tt.wantIDs[i] {
					t.Errorf("result[%d].ID = %q, want %q", i, rec.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestPickerCursorSurvivesCategoryRemoval(t *testing.T) {
	led := ledger.New(nil, nil)
	a := NewApp(led, config.DefaultConfig())

	a = pressLedger(t, a, "5", "enter")
	if led.State() != ledger.StateSelecting {
		t.Fatalf("state = %v, want selecting", led.State())
	}

	// Walk the cursor to the last category.
	for i := 0; i < len(led.Categories())-1; i++ {
		a = pressLedger(t, a, "j")
	}

	// A category vanishes while the pick is pending, as the delete form
	// on the categories tab can make happen.
	if err := led.RemoveCategory("food", false); err != nil {
		t.Fatalf("RemoveCategory() error = %v", err)
	}

	a = pressLedger(t, a, "enter")

	if led.State() != ledger.StateIdle {
		t.Fatalf("state = %v, want idle after commit", led.State())
	}
	recs := led.Records()
	if len(recs) != 1 || recs[0].Amount != 5 {
		t.Fatalf("records = %+v, want one 5.00 expense", recs)
	}
}

func TestIconGlyph(t *testing.T) {
	if got := IconGlyph("restaurant"); got == "·" || got == "" {
		t.Fatalf("IconGlyph(restaurant) = %q, want a real glyph", got)
	}
	if got := IconGlyph("no-such-icon"); got != "·" {
		t.Fatalf("IconGlyph(no-such-icon) = %q, want fallback", got)
	}
}
